package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestResolver(t *testing.T) *NameResolver {
	t.Helper()
	path := writeRoster(t, `Email,Andrew ID,Preferred/First Name,Last Name
asmith@andrew.cmu.edu,asmith,Alice,Smith
bjones@andrew.cmu.edu,bjones,Bob,Jones
outside@example.com,,Carol,Nope
`)
	resolver, err := NewNameResolver(path, zerolog.Nop())
	require.NoError(t, err)
	return resolver
}

func TestNameResolver_ResolvesAndrewID(t *testing.T) {
	nr := newTestResolver(t)

	assert.Equal(t, "Alice Smith", nr.Resolve("asmith", ""))
	assert.Equal(t, "Alice Smith", nr.Resolve("ASmith", ""))
}

func TestNameResolver_ResolvesFromEmailField(t *testing.T) {
	nr := newTestResolver(t)

	assert.Equal(t, "Bob Jones", nr.Resolve("someone", "bjones@andrew.cmu.edu"))
}

func TestNameResolver_FullNamePassthrough(t *testing.T) {
	nr := newTestResolver(t)

	// Already-resolved names match the roster case-insensitively.
	assert.Equal(t, "Alice Smith", nr.Resolve("alice smith", ""))
	// Proper-looking names outside the roster pass through untouched.
	assert.Equal(t, "Dana Who", nr.Resolve("Dana Who", ""))
}

func TestNameResolver_FallbackToRawUser(t *testing.T) {
	nr := newTestResolver(t)

	assert.Equal(t, "ghost", nr.Resolve("ghost", "ghost@example.com"))
}

func TestNameResolver_NonAndrewEmailsIgnored(t *testing.T) {
	nr := newTestResolver(t)

	names, rosterEntries := nr.Stats()
	assert.Equal(t, 3, rosterEntries)
	// Only the two andrew.cmu.edu rows resolve; email ID and Andrew ID
	// collapse to the same key.
	assert.Equal(t, 2, names)
}

func TestNameResolver_ContinuesPastStructuralErrors(t *testing.T) {
	path := writeRoster(t, `Email,Andrew ID,Preferred/First Name,Last Name
asmith@andrew.cmu.edu,asmith,Alice,Smith
bad"row,,Broken,Line
bjones@andrew.cmu.edu,bjones,Bob,Jones
`)

	resolver, err := NewNameResolver(path, zerolog.Nop())

	require.NoError(t, err)
	// Rows after the unparseable one still resolve.
	assert.Equal(t, "Bob Jones", resolver.Resolve("bjones", ""))
	assert.Equal(t, "Alice Smith", resolver.Resolve("asmith", ""))
}

func TestNewNameResolver_MissingFile(t *testing.T) {
	_, err := NewNameResolver(filepath.Join(t.TempDir(), "nope.csv"), zerolog.Nop())
	assert.Error(t, err)
}
