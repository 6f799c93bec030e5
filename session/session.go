// Package session drives a tetris engine through the Start, Playing and End
// states, turning key edges and clock ticks into engine calls.
package session

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// GravityInterval is how often the active piece falls one row.
const GravityInterval = 400 * time.Millisecond

// Clock supplies the time read on every tick.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TransitionFunc observes state changes after they happen.
type TransitionFunc func(from, to Phase, score int)

// Session owns the current state. It is not safe for concurrent use; the
// driving loop must serialize Input, Tick and Snapshot.
type Session struct {
	state        state
	router       *Router
	clock        Clock
	interval     time.Duration
	newEngine    func() *tetris.Engine
	onTransition TransitionFunc
}

type Option func(*Session)

func WithClock(c Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithEngineFactory sets how the Playing state builds its engine.
func WithEngineFactory(fn func() *tetris.Engine) Option {
	return func(s *Session) {
		s.newEngine = fn
	}
}

func WithGravityInterval(d time.Duration) Option {
	return func(s *Session) {
		s.interval = d
	}
}

func WithTransitionHook(fn TransitionFunc) Option {
	return func(s *Session) {
		s.onTransition = fn
	}
}

// New returns a session in the Start state.
func New(opts ...Option) *Session {
	s := &Session{
		state:    &startState{},
		router:   NewRouter(),
		clock:    systemClock{},
		interval: GravityInterval,
		newEngine: func() *tetris.Engine {
			return tetris.NewEngine()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Phase() Phase {
	return s.state.phase()
}

// Router exposes the key state, mostly for debugging views.
func (s *Session) Router() *Router {
	return s.router
}

// Input feeds one key transition. Only fresh presses reach the state.
func (s *Session) Input(ev Event) {
	action, ok := s.router.Route(ev)
	if !ok {
		return
	}

	switch st := s.state.(type) {
	case *startState:
		if action == ActionConfirm {
			s.swap(&playingState{engine: s.newEngine()})
		}
	case *playingState:
		st.apply(action)
	case *endState:
	}
}

// Tick reads the clock and advances time-driven behavior.
func (s *Session) Tick() {
	switch st := s.state.(type) {
	case *startState:
	case *playingState:
		if next := st.tick(s.clock.Now(), s.interval); next != nil {
			s.swap(next)
		}
	case *endState:
	}
}

func (s *Session) swap(next state) {
	from := s.state.phase()
	s.state = next
	if s.onTransition != nil {
		s.onTransition(from, next.phase(), s.score())
	}
}

func (s *Session) score() int {
	switch st := s.state.(type) {
	case *playingState:
		return st.engine.Score()
	case *endState:
		return st.score
	}
	return 0
}
