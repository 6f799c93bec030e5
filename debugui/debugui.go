// Package debugui draws Dear ImGui debug windows over a running game. Panels
// are queued by ImguiSystem and rendered once every other system has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Panel renders one Dear ImGui window.
type Panel interface {
	Render()
}

// PanelFunc adapts a plain function to Panel.
type PanelFunc func()

func (f PanelFunc) Render() { f() }

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every panel's Render to the end of the frame and keeps
// InputState current.
type ImguiSystem struct {
	Panels     []Panel
	InputState ImguiInputState
}

func (i *ImguiSystem) Add(p Panel) {
	i.Panels = append(i.Panels, p)
}

// Execute updates input state and queues all panels for rendering.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, panel := range i.Panels {
		frame.Commands.Defer(panel.Render)
	}
}
