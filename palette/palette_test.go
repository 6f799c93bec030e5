package palette_test

import (
	"testing"

	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestEveryColorHasABlock(t *testing.T) {
	seen := map[[4]uint8]bool{}
	for _, tmpl := range tetris.Templates() {
		c := palette.Block(tmpl.Color)
		assert.NotEqual(t, palette.Text, c, tmpl.Color.String())
		seen[[4]uint8{c.R, c.G, c.B, c.A}] = true
	}
	assert.Len(t, seen, 7)
}

func TestVec(t *testing.T) {
	r, g, b, a := palette.Vec(tetris.Orange)
	assert.InDelta(t, 1.0, r, 0.001)
	assert.InDelta(t, 165.0/255, g, 0.001)
	assert.InDelta(t, 0, b, 0.001)
	assert.InDelta(t, 1.0, a, 0.001)
}
