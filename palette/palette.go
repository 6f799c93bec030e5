// Package palette maps block colors to screen colors.
package palette

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var (
	Background = color.NRGBA{R: 20, G: 20, B: 28, A: 255}
	Well       = color.NRGBA{R: 40, G: 40, B: 52, A: 255}
	Grid       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Ghost      = color.NRGBA{R: 255, G: 255, B: 255, A: 60}
	Text       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

var blocks = map[tetris.Color]color.NRGBA{
	tetris.Cyan:   {R: 0, G: 220, B: 220, A: 255},
	tetris.Yellow: {R: 255, G: 220, B: 0, A: 255},
	tetris.Green:  {R: 0, G: 200, B: 0, A: 255},
	tetris.Red:    {R: 220, G: 0, B: 0, A: 255},
	tetris.Blue:   {R: 0, G: 60, B: 230, A: 255},
	tetris.Orange: {R: 255, G: 165, B: 0, A: 255},
	tetris.Purple: {R: 150, G: 0, B: 150, A: 255},
}

// Block returns the fill color for a block.
func Block(c tetris.Color) color.NRGBA {
	if rgba, ok := blocks[c]; ok {
		return rgba
	}
	return Text
}

// Vec returns the block color as normalized RGBA components.
func Vec(c tetris.Color) (r, g, b, a float32) {
	n := Block(c)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}
