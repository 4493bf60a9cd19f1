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

package scene_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/scene"
	"github.com/jetsetilly/stagehand/test"
)

var red = color.RGBA{R: 255, A: 255}

func fill(col color.Color) func(n *scene.Node, dst draw.Image) {
	return func(n *scene.Node, dst draw.Image) {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	}
}

func frame(s scene.Scene, dst draw.Image) []image.Rectangle {
	s.DtTick(1.0 / 60)
	s.Update()
	return s.Render(dst)
}

func TestFullRedrawOnActivation(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := scene.NewBase("test", "1.0", 0)

	n := scene.NewNode("box", image.Rect(10, 10, 20, 20))
	n.OnDraw = fill(red)
	b.Add(n)

	changed := frame(b, dst)
	test.DemandEquality(t, len(changed), 1)
	test.ExpectEquality(t, changed[0], dst.Bounds())
	test.ExpectEquality(t, dst.RGBAAt(15, 15), red)
	test.ExpectEquality(t, dst.RGBAAt(0, 0), color.RGBA{A: 255})

	// nothing has changed
	changed = frame(b, dst)
	test.ExpectEquality(t, len(changed), 0)

	// reactivation
	b.MarkDirty()
	changed = frame(b, dst)
	test.DemandEquality(t, len(changed), 1)
	test.ExpectEquality(t, changed[0], dst.Bounds())
}

func TestMovedNode(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := scene.NewBase("test", "1.0", 0)

	n := scene.NewNode("box", image.Rect(10, 10, 20, 20))
	n.OnDraw = fill(red)
	b.Add(n)
	frame(b, dst)

	n.SetRect(image.Rect(50, 50, 60, 60))
	changed := frame(b, dst)
	test.ExpectEquality(t, len(changed), 2)
	test.ExpectEquality(t, dst.RGBAAt(15, 15), color.RGBA{A: 255})
	test.ExpectEquality(t, dst.RGBAAt(55, 55), red)
}

func TestOverlappingNodeRedrawn(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := scene.NewBase("test", "1.0", 0)

	blue := color.RGBA{B: 255, A: 255}

	under := scene.NewNode("under", image.Rect(0, 0, 50, 50))
	under.OnDraw = fill(blue)
	over := scene.NewNode("over", image.Rect(20, 20, 30, 30))
	over.OnDraw = fill(red)
	b.Add(under, over)
	frame(b, dst)

	// hiding the top node reveals the node underneath, which is clean but
	// must be drawn again
	over.SetVisible(false)
	changed := frame(b, dst)
	test.DemandEquality(t, len(changed), 1)
	test.ExpectEquality(t, changed[0], image.Rect(20, 20, 30, 30))
	test.ExpectEquality(t, dst.RGBAAt(25, 25), blue)
	test.ExpectEquality(t, under.Dirty, scene.Clean)
}

func TestRemovedChild(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := scene.NewBase("test", "1.0", 0)

	n := scene.NewNode("box", image.Rect(10, 10, 20, 20))
	n.OnDraw = fill(red)
	b.Add(n)
	frame(b, dst)

	b.Root().RemoveChild(n)
	changed := frame(b, dst)
	test.DemandEquality(t, len(changed), 1)
	test.ExpectEquality(t, changed[0], image.Rect(10, 10, 20, 20))
	test.ExpectEquality(t, dst.RGBAAt(15, 15), color.RGBA{A: 255})
	test.ExpectEquality(t, len(b.Root().Children()), 0)
}

func TestDirtyLevels(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := scene.NewBase("test", "1.0", 0)

	var always, once int

	a := scene.NewNode("always", image.Rect(0, 0, 10, 10))
	a.Dirty = scene.DirtyAlways
	a.OnUpdate = func(_ *scene.Node, _ float64) { always++ }

	o := scene.NewNode("once", image.Rect(50, 50, 60, 60))
	o.OnUpdate = func(_ *scene.Node, _ float64) { once++ }

	b.Add(a, o)
	for range 5 {
		frame(b, dst)
	}
	test.ExpectEquality(t, always, 5)
	test.ExpectEquality(t, once, 1)
	test.ExpectEquality(t, a.Dirty, scene.DirtyAlways)
	test.ExpectEquality(t, o.Dirty, scene.Clean)
}

func TestDirtyPropagation(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	b := scene.NewBase("test", "1.0", 0)

	var order []string
	record := func(n *scene.Node, _ float64) {
		order = append(order, n.Name)
	}

	parent := scene.NewNode("parent", image.Rect(0, 0, 50, 50))
	parent.OnUpdate = record
	child := scene.NewNode("child", image.Rect(10, 10, 20, 20))
	child.OnUpdate = record
	parent.AddChild(child)
	b.Add(parent)

	frame(b, dst)
	order = order[:0]

	frame(b, dst)
	test.ExpectEquality(t, len(order), 0)

	// a dirty parent makes the child dirty
	parent.MarkDirty()
	frame(b, dst)
	test.DemandEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], "parent")
	test.ExpectEquality(t, order[1], "child")
	test.ExpectEquality(t, child.Dirty, scene.Clean)
	test.ExpectEquality(t, child.Parent(), parent)
}

func TestDeltaTime(t *testing.T) {
	b := scene.NewBase("test", "1.0", 30)
	b.DtTick(0.5)
	b.DtTick(0.25)
	test.ExpectApproximate(t, b.Dt(), 0.25, 0.0001)
	test.ExpectApproximate(t, b.Elapsed(), 0.75, 0.0001)
	test.ExpectEquality(t, b.Frames(), 2)
	b.ResetDt()
	test.ExpectEquality(t, b.Elapsed(), 0.0)
	test.ExpectEquality(t, b.Frames(), 0)

	test.ExpectEquality(t, b.RequestedFPS(), 30)
	b.SetTargetFPS(60)
	test.ExpectEquality(t, b.TargetFPS(), 60)
	test.ExpectEquality(t, b.RequestedFPS(), 30)
}

func TestNext(t *testing.T) {
	a := scene.NewBase("a", "1.0", 0)
	b := scene.NewBase("b", "1.0", 0)

	_, ok := a.Next()
	test.ExpectFailure(t, ok)

	a.SetNext(b)
	n, ok := a.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n.Name(), "b")

	// the request is consumed
	_, ok = a.Next()
	test.ExpectFailure(t, ok)

	a.Terminate()
	n, ok = a.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, n == nil)
}

func TestHandlersAndTargets(t *testing.T) {
	b := scene.NewBase("test", "1.0", 0)

	var handled bool
	b.HandleCode(events.KeyDown, func(_ events.Envelope) error {
		handled = true
		return nil
	})

	h, ok := b.Resolve("KEYDOWN")
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, h(events.Envelope{Code: events.KeyDown}))
	test.ExpectSuccess(t, handled)

	_, ok = b.Resolve("KEYUP")
	test.ExpectFailure(t, ok)

	button := scene.NewNode("button", image.Rect(0, 0, 10, 10))
	button.Interactable = true
	hidden := scene.NewNode("hidden", image.Rect(0, 0, 10, 10))
	hidden.Interactable = true
	hidden.Visible = false
	b.Add(button, hidden, scene.NewNode("label", image.Rect(0, 0, 10, 10)))

	targets := b.Targets()
	test.DemandEquality(t, len(targets), 1)
	test.ExpectEquality(t, targets[0].TargetName(), "button")
}
