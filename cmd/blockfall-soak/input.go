package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/session"
)

var soakKeys = []session.Key{
	session.KeyConfirm,
	session.KeyRotate,
	session.KeyLeft,
	session.KeyRight,
	session.KeyDown,
}

// RandomSource presses a random key with probability pressRate each poll and
// releases it on the following poll.
type RandomSource struct {
	rng       *rand.Rand
	pressRate float64
	held      []session.Key
	events    []session.Event
}

func NewRandomSource(seed uint64, pressRate float64) *RandomSource {
	return &RandomSource{
		rng:       rand.New(rand.NewPCG(seed, ^seed)),
		pressRate: pressRate,
	}
}

func (r *RandomSource) Poll() []session.Event {
	r.events = r.events[:0]
	for _, k := range r.held {
		r.events = append(r.events, session.Event{Key: k, Edge: session.Released})
	}
	r.held = r.held[:0]

	if r.rng.Float64() < r.pressRate {
		k := soakKeys[r.rng.IntN(len(soakKeys))]
		r.held = append(r.held, k)
		r.events = append(r.events, session.Event{Key: k, Edge: session.Pressed})
	}
	return r.events
}
