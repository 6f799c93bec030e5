package session

import "github.com/kamstrup/intmap"

// Key is a semantic input key delivered by the host.
type Key uint8

const (
	KeyConfirm Key = iota
	KeyRotate
	KeyLeft
	KeyRight
	KeyDown
)

var keyNames = [...]string{
	KeyConfirm: "confirm",
	KeyRotate:  "rotate",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyDown:    "down",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Edge is the direction of a key transition.
type Edge uint8

const (
	Pressed Edge = iota
	Released
)

// Event is one physical key transition.
type Event struct {
	Key  Key
	Edge Edge
}

// Action is what a key press asks the current state to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionConfirm
	ActionRotate
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionConfirm:   "confirm",
	ActionRotate:    "rotate",
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionSoftDrop:  "soft-drop",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

var keyActions = map[Key]Action{
	KeyConfirm: ActionConfirm,
	KeyRotate:  ActionRotate,
	KeyLeft:    ActionMoveLeft,
	KeyRight:   ActionMoveRight,
	KeyDown:    ActionSoftDrop,
}

// Router turns key transitions into actions, firing once per press. A key
// that is already held produces nothing until it is released.
type Router struct {
	held *intmap.Map[Key, struct{}]
}

func NewRouter() *Router {
	return &Router{
		held: intmap.New[Key, struct{}](len(keyActions)),
	}
}

// Route records the transition and returns the action for a fresh press.
func (r *Router) Route(ev Event) (Action, bool) {
	switch ev.Edge {
	case Pressed:
		if _, down := r.held.Get(ev.Key); down {
			return ActionNone, false
		}
		r.held.Put(ev.Key, struct{}{})
		action, ok := keyActions[ev.Key]
		return action, ok
	case Released:
		r.held.Del(ev.Key)
	}
	return ActionNone, false
}

// Held reports whether k is currently down.
func (r *Router) Held(k Key) bool {
	_, down := r.held.Get(k)
	return down
}

// HeldCount is the number of keys currently down.
func (r *Router) HeldCount() int {
	return r.held.Len()
}
