// Package input turns tcell key and mouse events into per-tick button edges.
//
// Terminals report mouse buttons as a mask on every mouse event and keys only
// as presses, so keys are treated as momentary: a key press is visible as
// PressedThisFrame for one tick and released on the next.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/splat/game"
	"github.com/lixenwraith/splat/render"
)

// Button is a logical control
type Button uint8

const (
	ButtonQuit Button = iota
	ButtonJump
	ButtonMute
	ButtonLeftMouse
	ButtonRightMouse
	buttonCount
)

var buttonNames = [...]string{
	ButtonQuit:       "quit",
	ButtonJump:       "jump",
	ButtonMute:       "mute",
	ButtonLeftMouse:  "left_mouse",
	ButtonRightMouse: "right_mouse",
}

func (b Button) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return "unknown"
}

// ButtonState is the edge-aware state of one button, zero value is Released
type ButtonState uint8

const (
	Released ButtonState = iota
	PressedThisFrame
	Pressed
	ReleasedThisFrame
)

// Input accumulates events between ticks
// Not safe for concurrent use; feed it from the goroutine that runs the tick loop
type Input struct {
	state   [buttonCount]ButtonState
	pending [buttonCount]bool
	mask    tcell.ButtonMask
	col     int
	row     int
}

// New creates an input with every button released
func New() *Input {
	return &Input{}
}

// HandleEvent folds one tcell event into the button states
func (in *Input) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if b, ok := keyButton(ev); ok {
			in.press(b)
			in.release(b)
		}

	case *tcell.EventMouse:
		in.col, in.row = ev.Position()
		mask := ev.Buttons()
		in.mouseEdge(ButtonLeftMouse, tcell.Button1, mask)
		in.mouseEdge(ButtonRightMouse, tcell.Button2, mask)
		in.mask = mask
	}
}

func keyButton(ev *tcell.EventKey) (Button, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ButtonQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return ButtonJump, true
		case 'q':
			return ButtonQuit, true
		case 'm':
			return ButtonMute, true
		}
	}
	return 0, false
}

func (in *Input) mouseEdge(b Button, bit, mask tcell.ButtonMask) {
	was := in.mask&bit != 0
	is := mask&bit != 0
	switch {
	case is && !was:
		in.press(b)
	case was && !is:
		in.release(b)
	}
}

func (in *Input) press(b Button) {
	in.state[b] = PressedThisFrame
	in.pending[b] = false
}

// release defers when the press has not been seen by a tick yet
func (in *Input) release(b Button) {
	switch in.state[b] {
	case PressedThisFrame:
		in.pending[b] = true
	case Pressed:
		in.state[b] = ReleasedThisFrame
	}
}

// Advance ages the edges after a tick has consumed them
func (in *Input) Advance() {
	for b := range in.state {
		switch in.state[b] {
		case PressedThisFrame:
			if in.pending[b] {
				in.state[b] = ReleasedThisFrame
				in.pending[b] = false
			} else {
				in.state[b] = Pressed
			}
		case ReleasedThisFrame:
			in.state[b] = Released
		}
	}
}

// State returns a button's state
func (in *Input) State(b Button) ButtonState {
	return in.state[b]
}

// Pressed reports a held button, including its first tick
func (in *Input) Pressed(b Button) bool {
	s := in.state[b]
	return s == PressedThisFrame || s == Pressed
}

// PressedThisFrame reports the press edge
func (in *Input) PressedThisFrame(b Button) bool {
	return in.state[b] == PressedThisFrame
}

// ReleasedThisFrame reports the release edge
func (in *Input) ReleasedThisFrame(b Button) bool {
	return in.state[b] == ReleasedThisFrame
}

// Mouse returns the last pointer position in screen cells
func (in *Input) Mouse() (col, row int) {
	return in.col, in.row
}

// Intent snapshots the current edges for the player, the pointer mapped through cam
func (in *Input) Intent(cam *render.Camera) game.Intent {
	return game.Intent{
		Launch:  in.PressedThisFrame(ButtonRightMouse) || in.PressedThisFrame(ButtonJump),
		Throw:   in.PressedThisFrame(ButtonLeftMouse),
		Release: in.ReleasedThisFrame(ButtonLeftMouse),
		Target:  cam.ScreenToWorld(in.col, in.row),
	}
}
