package tetris_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

var colorLetters = map[rune]tetris.Color{
	'c': tetris.Cyan,
	'y': tetris.Yellow,
	'g': tetris.Green,
	'r': tetris.Red,
	'b': tetris.Blue,
	'o': tetris.Orange,
	'p': tetris.Purple,
}

// sequenceRand returns the given indexes in order, wrapping around.
type sequenceRand struct {
	seq []int
	pos int
}

func (r *sequenceRand) IntN(n int) int {
	v := r.seq[r.pos%len(r.seq)] % n
	r.pos++
	return v
}

func templateIndex(c tetris.Color) int {
	for i, t := range tetris.Templates() {
		if t.Color == c {
			return i
		}
	}
	return -1
}

// parseBoard reads a drawing with the top row first. '.' is empty, lower-case
// letters are settled blocks and upper-case letters are cells of the active
// piece, whose origin is its first cell in reading order.
func parseBoard(t *testing.T, drawing string) (*tetris.Board, *tetris.Piece) {
	t.Helper()

	lines := strings.Fields(drawing)
	require.NotEmpty(t, lines)

	height := len(lines)
	width := len(lines[0])
	board := tetris.NewBoard(width, height)

	var piece *tetris.Piece
	for row, line := range lines {
		require.Len(t, line, width, "row %d", row)
		y := height - 1 - row
		for x, ch := range line {
			if ch == '.' {
				continue
			}
			color, ok := colorLetters[unicode.ToLower(ch)]
			require.True(t, ok, "unknown cell %q", ch)
			if unicode.IsLower(ch) {
				board.Set(x, y, color)
				continue
			}
			if piece == nil {
				piece = &tetris.Piece{X: x, Y: y}
			}
			piece.Cells = append(piece.Cells, tetris.Block{DX: x - piece.X, DY: y - piece.Y, Color: color})
		}
	}
	return board, piece
}

func drawBoard(b *tetris.Board) string {
	var sb strings.Builder
	for y := b.Height() - 1; y >= 0; y-- {
		for x := 0; x < b.Width(); x++ {
			cell := b.At(x, y)
			if !cell.Filled {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(cell.Color.String()[0])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
