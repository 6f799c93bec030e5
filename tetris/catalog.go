// Package tetris implements the falling-block simulation: the shape catalog,
// the playfield board, the active piece and the engine that moves, rotates,
// locks and clears.
package tetris

// Color tags a block for display. It carries no behavior.
type Color uint8

const (
	Cyan Color = iota
	Yellow
	Green
	Red
	Blue
	Orange
	Purple
)

var colorNames = [...]string{
	Cyan:   "cyan",
	Yellow: "yellow",
	Green:  "green",
	Red:    "red",
	Blue:   "blue",
	Orange: "orange",
	Purple: "purple",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Offset is a cell position relative to a piece origin.
type Offset struct {
	DX, DY int
}

// ShapeTemplate is one tetromino in its spawn orientation.
type ShapeTemplate struct {
	Color   Color
	Offsets [4]Offset
}

var templates = [...]ShapeTemplate{
	{Cyan, [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
	{Yellow, [4]Offset{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
	{Green, [4]Offset{{-1, -1}, {0, -1}, {0, 0}, {1, 0}}},
	{Red, [4]Offset{{-1, 0}, {0, 0}, {0, -1}, {1, -1}}},
	{Blue, [4]Offset{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}}},
	{Orange, [4]Offset{{-1, -1}, {0, -1}, {1, -1}, {1, 0}}},
	{Purple, [4]Offset{{-1, -1}, {0, -1}, {1, -1}, {0, 0}}},
}

// Rand is the random source used for piece selection. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Templates returns a copy of the seven shape templates.
func Templates() []ShapeTemplate {
	out := make([]ShapeTemplate, len(templates))
	copy(out, templates[:])
	return out
}

// TemplateFor returns the template tagged with the given color.
func TemplateFor(c Color) (ShapeTemplate, bool) {
	for _, t := range templates {
		if t.Color == c {
			return t, true
		}
	}
	return ShapeTemplate{}, false
}

// RandomTemplate picks one of the seven templates uniformly.
func RandomTemplate(r Rand) ShapeTemplate {
	return templates[r.IntN(len(templates))]
}
