package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/session"
)

var bindings = []struct {
	key ebiten.Key
	to  session.Key
}{
	{ebiten.KeyEnter, session.KeyConfirm},
	{ebiten.KeyUp, session.KeyRotate},
	{ebiten.KeyLeft, session.KeyLeft},
	{ebiten.KeyRight, session.KeyRight},
	{ebiten.KeyDown, session.KeyDown},
}

// KeyboardSource turns ebiten key edges into session events. Releases are
// always delivered so the router never keeps a stale held key.
type KeyboardSource struct {
	// Captured reports whether another consumer owns the keyboard this frame.
	Captured func() bool

	events []session.Event
}

func (k *KeyboardSource) Poll() []session.Event {
	k.events = k.events[:0]
	captured := k.Captured != nil && k.Captured()

	for _, b := range bindings {
		if !captured && inpututil.IsKeyJustPressed(b.key) {
			k.events = append(k.events, session.Event{Key: b.to, Edge: session.Pressed})
		}
		if inpututil.IsKeyJustReleased(b.key) {
			k.events = append(k.events, session.Event{Key: b.to, Edge: session.Released})
		}
	}
	return k.events
}

func (k *KeyboardSource) RestartRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
