package session

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Phase names the live session state.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseEnd:
		return "end"
	}
	return "unknown"
}

// state is the closed set of session states. Only the types in this file
// implement it.
type state interface {
	phase() Phase
}

type startState struct{}

type playingState struct {
	engine *tetris.Engine
	// lastFire is the zero time until gravity first fires.
	lastFire time.Time
}

type endState struct {
	score int
}

func (*startState) phase() Phase   { return PhaseStart }
func (*playingState) phase() Phase { return PhasePlaying }
func (*endState) phase() Phase     { return PhaseEnd }

// due reports whether gravity should fire at now.
func (p *playingState) due(now time.Time, interval time.Duration) bool {
	return p.lastFire.IsZero() || now.Sub(p.lastFire) > interval
}

// tick runs one gravity firing and returns the state that should replace p,
// or nil to stay.
func (p *playingState) tick(now time.Time, interval time.Duration) state {
	if !p.due(now, interval) {
		return nil
	}

	p.engine.Step()
	if _, has := p.engine.Active(); !has {
		if _, ok := p.engine.Spawn(); !ok {
			return &endState{score: p.engine.Score()}
		}
	}

	p.lastFire = now
	return nil
}

func (p *playingState) apply(action Action) {
	switch action {
	case ActionRotate:
		p.engine.Rotate()
	case ActionSoftDrop:
		p.engine.SoftDrop()
	case ActionMoveLeft:
		p.engine.MoveLeft()
	case ActionMoveRight:
		p.engine.MoveRight()
	}
}
