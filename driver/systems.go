package driver

import (
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
)

// EventSource yields the key transitions observed since the last poll.
type EventSource interface {
	Poll() []session.Event
}

// InputSystem forwards polled events to the live session.
type InputSystem struct {
	Game   *Game
	Source EventSource
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	for _, ev := range s.Source.Poll() {
		s.Game.Session.Input(ev)
	}
}

// TickSystem ticks the live session once per frame.
type TickSystem struct {
	Game *Game
}

func (s *TickSystem) Execute(frame *loop.Frame) {
	s.Game.Session.Tick()
}

// RestartSystem replaces an ended session when Requested says so.
type RestartSystem struct {
	Game      *Game
	Requested func() bool
}

func (s *RestartSystem) Execute(frame *loop.Frame) {
	if s.Game.Session.Phase() != session.PhaseEnd {
		return
	}
	if s.Requested == nil || s.Requested() {
		s.Game.Restart()
	}
}

// SnapshotSystem captures the session view at the end of the frame.
type SnapshotSystem struct {
	Game   *Game
	latest session.Snapshot
}

func (s *SnapshotSystem) Execute(frame *loop.Frame) {
	s.latest = s.Game.Session.Snapshot()
}

// Latest returns the snapshot taken by the most recent frame.
func (s *SnapshotSystem) Latest() session.Snapshot {
	return s.latest
}

// FrameClock is a session clock that advances by each frame's delta time,
// so simulated runs do not depend on wall time.
type FrameClock struct {
	now time.Time
}

func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{now: start}
}

func (c *FrameClock) Now() time.Time { return c.now }

func (c *FrameClock) Execute(frame *loop.Frame) {
	c.now = c.now.Add(time.Duration(frame.DeltaTime * float64(time.Second)))
}
