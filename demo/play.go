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
	"fmt"
	"image"
	"image/draw"

	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// movement of the box in the Play scene
const (
	boxStep     = 40
	boxSize     = 32
	boxMinSize  = 8
	boxMaxSize  = 128
	boxDuration = 0.25
)

// joystick hat values
const (
	hatUp    = 0x01
	hatRight = 0x02
	hatDown  = 0x04
	hatLeft  = 0x08
)

// Play is the second scene of the demo.
type Play struct {
	*scene.Base

	demo   *Demo
	bounds image.Rectangle

	box    *scene.Node
	status *scene.Node

	// position and size the box is moving towards
	target image.Point
	size   int

	tweenX *gween.Tween
	tweenY *gween.Tween
}

func newPlay(d *Demo, bounds image.Rectangle) *Play {
	p := &Play{
		Base:   scene.NewBase("Play", "v1", 0),
		demo:   d,
		bounds: bounds,
	}
	p.SetBackground(image.NewUniform(colPlayBG))

	p.HandleCode(events.KeyDown, p.keyDown)
	p.HandleCode(events.MouseScrollUp, p.scroll(1))
	p.HandleCode(events.MouseScrollDown, p.scroll(-1))
	p.HandleCode(events.JoyHatMotion, p.hat)

	return p
}

// Setup implements the scene.Scene interface. The box is returned to the
// centre of the screen every time the scene is activated.
func (p *Play) Setup() error {
	face, err := p.demo.fonts.Font(fonts.Config{Name: "gomono", Size: 12})
	if err != nil {
		return err
	}

	for _, n := range p.Root().Children() {
		p.Root().RemoveChild(n)
	}

	p.size = boxSize
	p.target = image.Pt(p.bounds.Min.X+(p.bounds.Dx()-p.size)/2, p.bounds.Min.Y+(p.bounds.Dy()-p.size)/2)
	p.tweenX = nil
	p.tweenY = nil

	p.box = scene.NewNode("box", image.Rectangle{Min: p.target, Max: p.target.Add(image.Pt(p.size, p.size))})
	p.box.Interactable = true
	p.box.OnDraw = func(n *scene.Node, dst draw.Image) {
		draw.Draw(dst, n.Rect, image.NewUniform(colBox), image.Point{}, draw.Src)
	}

	p.status = newText("status", face, p.bounds.Min.Add(image.Pt(8, 8)), p.statusText(), colText)

	p.Add(p.box, p.status)

	return nil
}

func (p *Play) statusText() string {
	return fmt.Sprintf("box %d,%d size %d", p.target.X, p.target.Y, p.size)
}

// Position returns the position the box is at or moving towards.
func (p *Play) Position() image.Point {
	return p.target
}

// Size returns the size of the box.
func (p *Play) Size() int {
	return p.size
}

// Update implements the scene.Scene interface.
func (p *Play) Update() {
	if p.box != nil {
		// the box is at the target position unless it is being tweened
		pos := p.target
		dt := float32(p.Dt())
		if p.tweenX != nil {
			v, finished := p.tweenX.Update(dt)
			pos.X = int(v)
			if finished {
				p.tweenX = nil
			}
		}
		if p.tweenY != nil {
			v, finished := p.tweenY.Update(dt)
			pos.Y = int(v)
			if finished {
				p.tweenY = nil
			}
		}
		p.box.SetRect(image.Rectangle{Min: pos, Max: pos.Add(image.Pt(p.size, p.size))})
		setText(p.status, p.statusText())
	}
	p.Base.Update()
}

// move the box by the number of steps in each direction. the box never leaves
// the screen
func (p *Play) move(dx, dy int) {
	if p.box == nil {
		return
	}

	to := p.target.Add(image.Pt(dx*boxStep, dy*boxStep))
	to.X = min(max(to.X, p.bounds.Min.X), p.bounds.Max.X-p.size)
	to.Y = min(max(to.Y, p.bounds.Min.Y), p.bounds.Max.Y-p.size)
	if to == p.target {
		return
	}

	from := p.box.Rect.Min
	if to.X != from.X {
		p.tweenX = gween.New(float32(from.X), float32(to.X), boxDuration, ease.OutCubic)
	}
	if to.Y != from.Y {
		p.tweenY = gween.New(float32(from.Y), float32(to.Y), boxDuration, ease.OutCubic)
	}
	p.target = to
}

func (p *Play) resize(delta int) {
	p.size = min(max(p.size+delta*boxMinSize, boxMinSize), boxMaxSize)
	p.target.X = min(p.target.X, p.bounds.Max.X-p.size)
	p.target.Y = min(p.target.Y, p.bounds.Max.Y-p.size)
}

func (p *Play) keyDown(env events.Envelope) error {
	k := env.Payload.(events.Key)
	switch k.Key {
	case "Up":
		p.move(0, -1)
	case "Down":
		p.move(0, 1)
	case "Left":
		p.move(-1, 0)
	case "Right":
		p.move(1, 0)
	case "Escape", "Backspace":
		p.SetNext(p.demo.Title)
	case "Q":
		p.Terminate()
	}
	return nil
}

func (p *Play) scroll(dir int) func(events.Envelope) error {
	return func(env events.Envelope) error {
		s := env.Payload.(events.MouseScroll)
		p.resize(dir * s.Amount)
		return nil
	}
}

func (p *Play) hat(env events.Envelope) error {
	h := env.Payload.(events.JoyHat)
	var dx, dy int
	if h.Value&hatUp == hatUp {
		dy--
	}
	if h.Value&hatDown == hatDown {
		dy++
	}
	if h.Value&hatLeft == hatLeft {
		dx--
	}
	if h.Value&hatRight == hatRight {
		dx++
	}
	p.move(dx, dy)
	return nil
}
