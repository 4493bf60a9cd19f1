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

package scene

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jetsetilly/stagehand/devices"
	"github.com/jetsetilly/stagehand/display"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/registry"
)

// Scene is implemented by every scene. Most scenes embed Base and override
// the methods they need.
type Scene interface {
	registry.Proxy
	devices.TargetSource

	Name() string
	Version() string

	// Setup is called when the scene is activated. Cleanup is called when it
	// is deactivated
	Setup() error
	Cleanup()

	// DtTick is called at the start of every frame with the delta time for
	// the frame
	DtTick(dt float64)
	ResetDt()

	Update()
	Render(dst draw.Image) []image.Rectangle
	Background() image.Image

	// RequestedFPS is the frame rate requested by the scene. zero means the
	// scene will use the global default
	RequestedFPS() int
	TargetFPS() int
	SetTargetFPS(fps int)

	// Next returns the scene that should replace this one. If ok is false
	// the scene should stay active. A nil scene means the application should
	// terminate
	Next() (next Scene, ok bool)
	SetNext(next Scene)

	// MarkDirty causes the next frame to be a full redraw
	MarkDirty()
}

// Base implements the Scene interface.
type Base struct {
	name    string
	version string

	requestedFPS int
	targetFPS    int

	root       *Node
	background image.Image

	handlers registry.Handlers
	chain    registry.ProxyChain

	next    Scene
	hasNext bool

	dt      float64
	elapsed float64
	frames  int

	dirty bool
}

// NewBase is the preferred method of initialisation for the Base type. A fps
// value of zero means that the scene will use the global default frame rate.
func NewBase(name string, version string, fps int) *Base {
	return &Base{
		name:         name,
		version:      version,
		requestedFPS: fps,
		targetFPS:    fps,
		root:         &Node{Name: "root", Visible: true},
		background:   image.NewUniform(color.Black),
		handlers:     make(registry.Handlers),
		dirty:        true,
	}
}

// Name implements the Scene interface.
func (b *Base) Name() string {
	return b.name
}

// Version implements the Scene interface.
func (b *Base) Version() string {
	return b.version
}

// Setup implements the Scene interface.
func (b *Base) Setup() error {
	return nil
}

// Cleanup implements the Scene interface.
func (b *Base) Cleanup() {
}

// Root returns the root node of the scene graph.
func (b *Base) Root() *Node {
	return b.root
}

// Add nodes to the root of the scene graph.
func (b *Base) Add(nodes ...*Node) {
	for _, n := range nodes {
		b.root.AddChild(n)
	}
}

// Handle adds a handler for the named event. The name is the name of the
// event code (eg. "KEYDOWN").
func (b *Base) Handle(name string, h registry.Handler) {
	b.handlers[name] = h
}

// HandleCode is like Handle but takes an event code.
func (b *Base) HandleCode(code events.Code, h registry.Handler) {
	b.Handle(code.String(), h)
}

// Chain returns the proxy chain that is consulted for events the scene does
// not handle itself.
func (b *Base) Chain() *registry.ProxyChain {
	return &b.chain
}

// Resolve implements the registry.Proxy interface.
func (b *Base) Resolve(name string) (registry.Handler, bool) {
	if h, ok := b.handlers[name]; ok {
		return h, true
	}
	return b.chain.Resolve(name)
}

// Targets implements the devices.TargetSource interface. Visible nodes marked
// as Interactable are targets.
func (b *Base) Targets() []devices.Target {
	var t []devices.Target
	b.root.walk(func(n *Node) {
		if n != b.root && n.Visible && n.Interactable {
			t = append(t, n)
		}
	})
	return t
}

// DtTick implements the Scene interface.
func (b *Base) DtTick(dt float64) {
	b.dt = dt
	b.elapsed += dt
	b.frames++
}

// ResetDt implements the Scene interface.
func (b *Base) ResetDt() {
	b.dt = 0
	b.elapsed = 0
	b.frames = 0
}

// Dt returns the delta time for the current frame.
func (b *Base) Dt() float64 {
	return b.dt
}

// Elapsed returns the sum of delta times since the last call to ResetDt().
func (b *Base) Elapsed() float64 {
	return b.elapsed
}

// Frames returns the number of frames since the last call to ResetDt().
func (b *Base) Frames() int {
	return b.frames
}

// RequestedFPS implements the Scene interface.
func (b *Base) RequestedFPS() int {
	return b.requestedFPS
}

// TargetFPS implements the Scene interface.
func (b *Base) TargetFPS() int {
	return b.targetFPS
}

// SetTargetFPS implements the Scene interface.
func (b *Base) SetTargetFPS(fps int) {
	b.targetFPS = fps
}

// Next implements the Scene interface. The request is consumed.
func (b *Base) Next() (Scene, bool) {
	if !b.hasNext {
		return nil, false
	}
	n := b.next
	b.next = nil
	b.hasNext = false
	return n, true
}

// SetNext implements the Scene interface.
func (b *Base) SetNext(next Scene) {
	b.next = next
	b.hasNext = true
}

// Terminate is the same as SetNext(nil).
func (b *Base) Terminate() {
	b.SetNext(nil)
}

// MarkDirty implements the Scene interface.
func (b *Base) MarkDirty() {
	b.dirty = true
}

// Background implements the Scene interface.
func (b *Base) Background() image.Image {
	return b.background
}

// SetBackground changes the background. The scene is redrawn in full on the
// next frame.
func (b *Base) SetBackground(bg image.Image) {
	b.background = bg
	b.dirty = true
}

// Update implements the Scene interface.
func (b *Base) Update() {
	if b.dirty {
		b.root.walk(func(n *Node) {
			n.MarkDirty()
		})
	}
	b.root.update(b.dt)
}

// Render implements the Scene interface.
func (b *Base) Render(dst draw.Image) []image.Rectangle {
	bounds := dst.Bounds()

	var regions []image.Rectangle
	if b.dirty {
		regions = []image.Rectangle{bounds}
		b.dirty = false
		b.root.walk(func(n *Node) {
			n.stale = n.stale[:0]
		})
	} else {
		b.root.walk(func(n *Node) {
			regions = append(regions, n.stale...)
			n.stale = n.stale[:0]
			if n == b.root || n.Dirty == Clean {
				return
			}
			if !n.drawn.Empty() {
				regions = append(regions, n.drawn)
			}
			if n.Visible {
				regions = append(regions, n.Rect)
			}
		})
		regions = display.MergeRects(regions, bounds)
	}

	for _, r := range regions {
		draw.Draw(dst, r, b.background, r.Min, draw.Src)
	}

	// draw every visible node that overlaps a changed region. all dirty nodes
	// overlap a changed region by definition
	b.root.walk(func(n *Node) {
		if n == b.root {
			if n.Dirty == DirtyOnce {
				n.Dirty = Clean
			}
			return
		}

		if n.Dirty != Clean {
			n.drawn = image.Rectangle{}
		}

		if !n.Visible || n.OnDraw == nil {
			if n.Dirty == DirtyOnce {
				n.Dirty = Clean
			}
			return
		}

		for _, r := range regions {
			if c := n.Rect.Intersect(r); !c.Empty() {
				n.OnDraw(n, display.Clip(dst, c))
			}
		}

		n.drawn = n.Rect.Intersect(bounds)
		if n.Dirty == DirtyOnce {
			n.Dirty = Clean
		}
	})

	return regions
}
