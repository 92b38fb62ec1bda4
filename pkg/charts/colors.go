package charts

// Kind selects which color table a chart draws from, so that the same
// category keeps the same color in every pie chart of a run while activity
// colors are assigned independently.
type Kind string

const (
	KindCategory Kind = "category"
	KindActivity Kind = "activity"
)

// Colorblind-friendly palette based on Paul Tol's scheme; cycled when a run
// sees more labels than colors.
var basePalette = []string{
	"1f77b4", // blue
	"ff7f0e", // orange
	"2ca02c", // green
	"d62728", // red
	"9467bd", // purple
	"8c564b", // brown
	"e377c2", // pink
	"7f7f7f", // gray
	"bcbd22", // olive
	"17becf", // cyan
	"aec7e8", // light blue
	"ffbb78", // light orange
	"98df8a", // light green
	"ff9896", // light red
	"c5b0d5", // light purple
}

// ColorRegistry assigns palette colors to labels first-seen-wins. It is an
// explicit per-run value threaded into every chart call rather than a
// process-wide table; a run that processes entries in a fixed order gets
// deterministic colors. It is not safe for concurrent use.
type ColorRegistry struct {
	tables map[Kind]map[string]string
}

func NewColorRegistry() *ColorRegistry {
	return &ColorRegistry{tables: map[Kind]map[string]string{
		KindCategory: {},
		KindActivity: {},
	}}
}

// ColorFor returns the hex color for a label, assigning the next palette
// color on first sight.
func (r *ColorRegistry) ColorFor(label string, kind Kind) string {
	table := r.tables[kind]
	if c, ok := table[label]; ok {
		return c
	}
	c := basePalette[len(table)%len(basePalette)]
	table[label] = c
	return c
}

// ColorsFor resolves colors for a slice of labels in order.
func (r *ColorRegistry) ColorsFor(labels []string, kind Kind) []string {
	colors := make([]string, len(labels))
	for i, label := range labels {
		colors[i] = r.ColorFor(label, kind)
	}
	return colors
}
