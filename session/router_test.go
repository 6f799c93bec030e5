package session_test

import (
	"testing"

	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	t.Run("maps every key to its action", func(t *testing.T) {
		want := map[session.Key]session.Action{
			session.KeyConfirm: session.ActionConfirm,
			session.KeyRotate:  session.ActionRotate,
			session.KeyLeft:    session.ActionMoveLeft,
			session.KeyRight:   session.ActionMoveRight,
			session.KeyDown:    session.ActionSoftDrop,
		}
		r := session.NewRouter()
		for key, action := range want {
			got, ok := r.Route(session.Event{Key: key, Edge: session.Pressed})
			assert.True(t, ok, key.String())
			assert.Equal(t, action, got, key.String())
		}
		assert.Equal(t, len(want), r.HeldCount())
	})

	t.Run("held key does not repeat", func(t *testing.T) {
		r := session.NewRouter()
		press := session.Event{Key: session.KeyLeft, Edge: session.Pressed}

		_, ok := r.Route(press)
		assert.True(t, ok)
		for range 5 {
			_, ok = r.Route(press)
			assert.False(t, ok)
		}
		assert.True(t, r.Held(session.KeyLeft))
	})

	t.Run("release re-arms the key", func(t *testing.T) {
		r := session.NewRouter()
		press := session.Event{Key: session.KeyRotate, Edge: session.Pressed}
		release := session.Event{Key: session.KeyRotate, Edge: session.Released}

		r.Route(press)
		action, ok := r.Route(release)
		assert.False(t, ok)
		assert.Equal(t, session.ActionNone, action)
		assert.False(t, r.Held(session.KeyRotate))

		_, ok = r.Route(press)
		assert.True(t, ok)
	})

	t.Run("release of an idle key is ignored", func(t *testing.T) {
		r := session.NewRouter()
		_, ok := r.Route(session.Event{Key: session.KeyDown, Edge: session.Released})
		assert.False(t, ok)
		assert.Zero(t, r.HeldCount())
	})

	t.Run("unknown key has no action", func(t *testing.T) {
		r := session.NewRouter()
		_, ok := r.Route(session.Event{Key: session.Key(42), Edge: session.Pressed})
		assert.False(t, ok)
		assert.Equal(t, "unknown", session.Key(42).String())
	})
}
