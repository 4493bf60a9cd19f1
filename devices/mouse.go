// This file is part of Stagehand.
//
// Stagehand is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stagehand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stagehand.  If not, see <https://www.gnu.org/licenses/>.

package devices

import (
	"image"

	"github.com/jetsetilly/stagehand/events"
)

// Target is an area of the screen that receives MOUSEENTER and MOUSEEXIT
// events.
type Target interface {
	TargetName() string
	Bounds() image.Rectangle
}

// TargetSource supplies the current list of targets. Normally the active
// scene.
type TargetSource interface {
	Targets() []Target
}

type press struct {
	start    image.Point
	dragging bool
}

// Mouse manager tracks the pointer position and button state and derives
// crossing, drag and scroll events.
//
// Buttons 4 and 5 are scroll buttons. A button 4 down is a MOUSESCROLLUP and a
// button 5 down is a MOUSESCROLLDOWN. The button up for button 5 is swallowed
// but the button up for button 4 is forwarded as a plain MOUSEBUTTONUP.
type Mouse struct {
	manager
	cl *events.Classifier

	pos     image.Point
	pressed map[events.MouseButton]*press

	targets TargetSource
	inside  map[string]bool
}

// NewMouse is the preferred method of initialisation for the Mouse type.
func NewMouse(cl *events.Classifier) *Mouse {
	if cl == nil {
		cl = events.NewClassifier(events.HostCodes)
	}
	return &Mouse{
		cl:      cl,
		pressed: make(map[events.MouseButton]*press),
		inside:  make(map[string]bool),
	}
}

// SetTargets changes the source of mouse targets. The record of which targets
// the pointer is inside is reset.
func (m *Mouse) SetTargets(src TargetSource) {
	m.targets = src
	clear(m.inside)
}

// Position returns the last known pointer position.
func (m *Mouse) Position() image.Point {
	return m.pos
}

// IsPressed returns true if the button is currently down.
func (m *Mouse) IsPressed(b events.MouseButton) bool {
	_, ok := m.pressed[b]
	return ok
}

// Process implements the Processor interface.
func (m *Mouse) Process(env events.Envelope) error {
	if env.Synthesized {
		return m.forward(env)
	}

	switch ev := env.Payload.(type) {
	case events.MouseMotionEvent:
		return m.motion(env, ev)
	case events.MouseButtonEvent:
		m.pos = image.Pt(ev.X, ev.Y)
		if env.Code == events.MouseButtonDown {
			return m.buttonDown(env, ev)
		}
		return m.buttonUp(env, ev)
	case events.MouseWheelEvent:
		return m.wheel(env, ev)
	}

	return m.forward(env)
}

func (m *Mouse) motion(env events.Envelope, ev events.MouseMotionEvent) error {
	m.pos = image.Pt(ev.X, ev.Y)
	out := []events.Envelope{env}

	for b, p := range m.pressed {
		p.dragging = true
		out = append(out, m.cl.Synthesize(events.MouseDrag, events.MouseDragEvent{
			Button: b,
			X:      ev.X, Y: ev.Y,
			RelX: ev.RelX, RelY: ev.RelY,
			StartX: p.start.X, StartY: p.start.Y,
		}))
	}

	out = append(out, m.crossings()...)

	return m.forwardAll(out...)
}

// crossings returns the MOUSEEXIT and MOUSEENTER events for the current
// pointer position. Exits are returned before enters.
func (m *Mouse) crossings() []events.Envelope {
	if m.targets == nil {
		return nil
	}

	var exits, enters []events.Envelope

	seen := make(map[string]bool)
	for _, t := range m.targets.Targets() {
		name := t.TargetName()
		seen[name] = true

		in := m.pos.In(t.Bounds())
		if in == m.inside[name] {
			continue
		}

		m.inside[name] = in
		cross := events.MouseCrossing{Target: name, X: m.pos.X, Y: m.pos.Y}
		if in {
			enters = append(enters, m.cl.Synthesize(events.MouseEnter, cross))
		} else {
			exits = append(exits, m.cl.Synthesize(events.MouseExit, cross))
		}
	}

	// targets that have disappeared are forgotten without an exit event
	for name := range m.inside {
		if !seen[name] {
			delete(m.inside, name)
		}
	}

	return append(exits, enters...)
}

func (m *Mouse) buttonDown(env events.Envelope, ev events.MouseButtonEvent) error {
	switch ev.Button {
	case events.MouseButton4:
		return m.forward(m.cl.Synthesize(events.MouseScrollUp, events.MouseScroll{X: ev.X, Y: ev.Y, Amount: 1}))
	case events.MouseButton5:
		return m.forward(m.cl.Synthesize(events.MouseScrollDown, events.MouseScroll{X: ev.X, Y: ev.Y, Amount: 1}))
	}

	m.pressed[ev.Button] = &press{start: m.pos}
	return m.forward(env)
}

func (m *Mouse) buttonUp(env events.Envelope, ev events.MouseButtonEvent) error {
	switch ev.Button {
	case events.MouseButton5:
		return nil
	case events.MouseButton4:
		return m.forward(env)
	}

	p, ok := m.pressed[ev.Button]
	delete(m.pressed, ev.Button)

	if !ok || !p.dragging {
		return m.forward(env)
	}

	end := m.cl.Synthesize(events.MouseDragEnd, events.MouseDragEvent{
		Button: ev.Button,
		X:      ev.X, Y: ev.Y,
		StartX: p.start.X, StartY: p.start.Y,
	})
	return m.forwardAll(env, end)
}

func (m *Mouse) wheel(env events.Envelope, ev events.MouseWheelEvent) error {
	switch {
	case ev.Y > 0:
		return m.forwardAll(env, m.cl.Synthesize(events.MouseScrollUp, events.MouseScroll{X: m.pos.X, Y: m.pos.Y, Amount: ev.Y}))
	case ev.Y < 0:
		return m.forwardAll(env, m.cl.Synthesize(events.MouseScrollDown, events.MouseScroll{X: m.pos.X, Y: m.pos.Y, Amount: -ev.Y}))
	}
	return m.forward(env)
}
