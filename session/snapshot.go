package session

import "github.com/plus3/blockfall/tetris"

// Snapshot is a copy of what a renderer needs for one frame. Nothing in it
// aliases session state.
type Snapshot struct {
	Phase Phase
	// Board is indexed [y][x] with row 0 at the bottom. Nil outside Playing.
	Board  [][]tetris.Cell
	Active *tetris.Piece
	// Ghost is how many rows the active piece can still fall.
	Ghost int
	Score int
}

func (s *Session) Snapshot() Snapshot {
	switch st := s.state.(type) {
	case *startState:
		return Snapshot{Phase: PhaseStart}
	case *playingState:
		snap := Snapshot{
			Phase: PhasePlaying,
			Board: st.engine.Board().Rows(),
			Score: st.engine.Score(),
		}
		if p, ok := st.engine.Active(); ok {
			snap.Active = &p
			snap.Ghost = st.engine.DropDistance()
		}
		return snap
	case *endState:
		return Snapshot{Phase: PhaseEnd, Score: st.score}
	}
	panic("session: unknown state")
}
