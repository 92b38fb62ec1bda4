package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorRegistry_FirstSeenWins(t *testing.T) {
	reg := NewColorRegistry()

	first := reg.ColorFor("Dev", KindCategory)
	second := reg.ColorFor("QA", KindCategory)

	assert.NotEqual(t, first, second)
	// Re-asking never reassigns.
	assert.Equal(t, first, reg.ColorFor("Dev", KindCategory))
	assert.Equal(t, second, reg.ColorFor("QA", KindCategory))
}

func TestColorRegistry_KindsAreIndependent(t *testing.T) {
	reg := NewColorRegistry()

	reg.ColorFor("Dev", KindCategory)
	reg.ColorFor("QA", KindCategory)

	// The activity table starts over at the head of the palette.
	assert.Equal(t, basePalette[0], reg.ColorFor("Coding", KindActivity))
}

func TestColorRegistry_Deterministic(t *testing.T) {
	labels := []string{"Dev", "QA", "Docs", "Dev"}

	a := NewColorRegistry().ColorsFor(labels, KindCategory)
	b := NewColorRegistry().ColorsFor(labels, KindCategory)

	assert.Equal(t, a, b)
	assert.Equal(t, a[0], a[3])
}

func TestColorRegistry_CyclesPastPalette(t *testing.T) {
	reg := NewColorRegistry()

	for i := 0; i < len(basePalette); i++ {
		reg.ColorFor(string(rune('a'+i)), KindActivity)
	}

	assert.Equal(t, basePalette[0], reg.ColorFor("overflow", KindActivity))
}
