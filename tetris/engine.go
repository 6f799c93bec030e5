package tetris

import "math/rand/v2"

const (
	DefaultWidth  = 10
	DefaultHeight = 25
	SpawnX        = 5
	SpawnY        = 20
)

// Engine owns the board, the active piece and the score. Every move, rotate,
// spawn and lock decision goes through ValidPlacement.
type Engine struct {
	board  *Board
	active *Piece
	score  int
	spawnX int
	spawnY int
	rng    Rand

	// OnLock, when set, is called after a piece locks with the piece and the
	// number of rows that lock cleared.
	OnLock func(piece Piece, cleared int)
}

type EngineOption func(*Engine)

// WithSize sets the board dimensions. It replaces any board set earlier.
func WithSize(width, height int) EngineOption {
	return func(e *Engine) {
		e.board = NewBoard(width, height)
	}
}

// WithSpawn sets the coordinate new pieces appear at.
func WithSpawn(x, y int) EngineOption {
	return func(e *Engine) {
		e.spawnX = x
		e.spawnY = y
	}
}

// WithRand sets the random source used to pick templates.
func WithRand(r Rand) EngineOption {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithBoard starts the engine from an existing board. The board is owned by
// the engine afterwards.
func WithBoard(b *Board) EngineOption {
	return func(e *Engine) {
		e.board = b
	}
}

// NewEngine creates an engine with an empty 10x25 board, no active piece and a
// zero score, unless options say otherwise.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		spawnX: SpawnX,
		spawnY: SpawnY,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.board == nil {
		e.board = NewBoard(DefaultWidth, DefaultHeight)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

func (e *Engine) Width() int  { return e.board.Width() }
func (e *Engine) Height() int { return e.board.Height() }
func (e *Engine) Score() int  { return e.score }

// Board returns a copy of the playfield.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Active returns a copy of the active piece, if any.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return e.active.Clone(), true
}

// ValidPlacement reports whether every cell of p is on the board and empty.
func (e *Engine) ValidPlacement(p Piece) bool {
	for _, c := range p.Cells {
		if e.board.Occupied(p.X+c.DX, p.Y+c.DY) {
			return false
		}
	}
	return true
}

// Spawn creates a random piece at the spawn coordinate when none is active.
// The returned bool is false when the new piece collides, which is the
// game-over signal. With a piece already active it is left untouched.
func (e *Engine) Spawn() (Piece, bool) {
	if e.active != nil {
		return e.active.Clone(), e.ValidPlacement(*e.active)
	}
	p := NewPiece(RandomTemplate(e.rng), e.spawnX, e.spawnY)
	e.active = &p
	return p.Clone(), e.ValidPlacement(p)
}

// commit replaces the active piece with candidate if it is placeable.
func (e *Engine) commit(candidate Piece) bool {
	if !e.ValidPlacement(candidate) {
		return false
	}
	e.active = &candidate
	return true
}

// Place makes p the active piece if it fits, replacing any current one.
func (e *Engine) Place(p Piece) bool {
	return e.commit(p.Clone())
}

// Translate shifts the active piece by (dx, dy). A blocked move is a no-op.
func (e *Engine) Translate(dx, dy int) bool {
	if e.active == nil {
		return false
	}
	return e.commit(e.active.Translated(dx, dy))
}

func (e *Engine) MoveLeft() bool  { return e.Translate(-1, 0) }
func (e *Engine) MoveRight() bool { return e.Translate(1, 0) }
func (e *Engine) SoftDrop() bool  { return e.Translate(0, -1) }

// Rotate turns the active piece a quarter turn without wall kicks.
func (e *Engine) Rotate() bool {
	if e.active == nil {
		return false
	}
	return e.commit(e.active.Rotated())
}

// Resting reports whether the active piece is placed validly and cannot fall
// any further.
func (e *Engine) Resting() bool {
	if e.active == nil {
		return false
	}
	return e.ValidPlacement(*e.active) && !e.ValidPlacement(e.active.Translated(0, -1))
}

// DropDistance is the number of rows the active piece can still fall.
func (e *Engine) DropDistance() int {
	if e.active == nil || !e.ValidPlacement(*e.active) {
		return 0
	}
	n := 0
	for e.ValidPlacement(e.active.Translated(0, -(n + 1))) {
		n++
	}
	return n
}

// LockAndClear writes a resting piece into the board, drops it, clears full
// rows and adds them to the score. Nothing happens unless the piece is resting.
func (e *Engine) LockAndClear() (cleared int, locked bool) {
	if !e.Resting() {
		return 0, false
	}

	piece := *e.active
	for _, c := range piece.Cells {
		e.board.Set(piece.X+c.DX, piece.Y+c.DY, c.Color)
	}
	e.active = nil

	cleared = e.board.clearFullRows()
	e.score += cleared

	if e.OnLock != nil {
		e.OnLock(piece.Clone(), cleared)
	}
	return cleared, true
}

// Step runs one gravity step: lock the piece if it rests, otherwise move it
// down one row. It never spawns.
func (e *Engine) Step() {
	if _, locked := e.LockAndClear(); locked {
		return
	}
	e.SoftDrop()
}
