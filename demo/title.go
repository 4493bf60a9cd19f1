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

package demo

import (
	"image"
	"image/color"

	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// colours used by both scenes
var (
	colText      = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	colHighlight = color.RGBA{R: 0xff, G: 0xc0, B: 0x40, A: 0xff}
	colBox       = color.RGBA{R: 0x40, G: 0x90, B: 0xff, A: 0xff}
	colTitleBG   = color.RGBA{R: 0x10, G: 0x10, B: 0x30, A: 0xff}
	colPlayBG    = color.RGBA{R: 0x08, G: 0x20, B: 0x10, A: 0xff}
)

// amount and duration of the pulse of the start prompt
const (
	pulseHeight   = 6
	pulseDuration = 0.6
)

// Title is the first scene of the demo.
type Title struct {
	*scene.Base

	demo   *Demo
	bounds image.Rectangle

	heading *scene.Node
	start   *scene.Node

	// resting position of the start prompt
	startY int

	pulse *gween.Tween
	down  bool
}

func newTitle(d *Demo, bounds image.Rectangle) *Title {
	t := &Title{
		Base:   scene.NewBase("Title", "v1", 30),
		demo:   d,
		bounds: bounds,
	}
	t.SetBackground(image.NewUniform(colTitleBG))

	t.HandleCode(events.KeyDown, t.keyDown)
	t.HandleCode(events.MouseButtonDown, t.mouseDown)
	t.HandleCode(events.MouseEnter, t.mouseCrossing(colHighlight))
	t.HandleCode(events.MouseExit, t.mouseCrossing(colText))

	return t
}

// Setup implements the scene.Scene interface. The scene graph is rebuilt
// every time the scene is activated.
func (t *Title) Setup() error {
	headingFace, err := t.demo.fonts.Font(fonts.Config{Name: "gobold", Size: 32})
	if err != nil {
		return err
	}
	promptFace, err := t.demo.fonts.Font(fonts.Config{Name: "goregular", Size: 16})
	if err != nil {
		return err
	}

	for _, n := range t.Root().Children() {
		t.Root().RemoveChild(n)
	}

	const heading = "Stagehand"
	const prompt = "press return to start"

	y := t.bounds.Min.Y + t.bounds.Dy()/3
	t.heading = newText("heading", headingFace, centred(headingFace, t.bounds, y, heading), heading, colText)

	t.startY = y + 80
	t.start = newText("start", promptFace, centred(promptFace, t.bounds, t.startY, prompt), prompt, colText)
	t.start.Interactable = true

	t.Add(t.heading, t.start)

	t.pulse = gween.New(0, pulseHeight, pulseDuration, ease.InOutSine)
	t.down = true

	return nil
}

// Update implements the scene.Scene interface.
func (t *Title) Update() {
	if t.pulse != nil {
		v, finished := t.pulse.Update(float32(t.Dt()))
		if finished {
			// reverse direction
			if t.down {
				t.pulse = gween.New(pulseHeight, 0, pulseDuration, ease.InOutSine)
			} else {
				t.pulse = gween.New(0, pulseHeight, pulseDuration, ease.InOutSine)
			}
			t.down = !t.down
		}
		r := t.start.Rect
		t.start.SetRect(r.Add(image.Pt(0, t.startY+int(v)-r.Min.Y)))
	}
	t.Base.Update()
}

func (t *Title) keyDown(env events.Envelope) error {
	k := env.Payload.(events.Key)
	switch k.Key {
	case "Return", "Space":
		t.SetNext(t.demo.Play)
	case "Escape", "Q":
		t.Terminate()
	}
	return nil
}

func (t *Title) mouseDown(env events.Envelope) error {
	b := env.Payload.(events.MouseButtonEvent)
	if b.Button == events.MouseButtonLeft && t.start != nil && image.Pt(b.X, b.Y).In(t.start.Rect) {
		t.SetNext(t.demo.Play)
	}
	return nil
}

func (t *Title) mouseCrossing(col color.Color) func(events.Envelope) error {
	return func(env events.Envelope) error {
		c := env.Payload.(events.MouseCrossing)
		if t.start != nil && c.Target == t.start.Name {
			setColor(t.start, col)
		}
		return nil
	}
}
