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
	"image/draw"
	"slices"
)

// Dirty is the dirty level of a Node.
type Dirty int

// List of valid dirty levels.
const (
	Clean Dirty = iota
	DirtyOnce
	DirtyAlways
)

// Node is an element of the scene graph.
type Node struct {
	Name string

	// area of the surface occupied by the node
	Rect image.Rectangle

	Visible      bool
	Interactable bool

	Dirty Dirty

	// OnUpdate is called once per frame while the node is dirty
	OnUpdate func(n *Node, dt float64)

	// OnDraw draws the node. The draw.Image is clipped to the area being
	// redrawn, which may be smaller than Rect
	OnDraw func(n *Node, dst draw.Image)

	UserData any

	parent   *Node
	children []*Node

	// the area the node occupied when it was last drawn
	drawn image.Rectangle

	// areas occupied by removed children
	stale []image.Rectangle
}

// NewNode is the preferred method of initialisation for the Node type. The
// node is visible and will be drawn on the next frame.
func NewNode(name string, rect image.Rectangle) *Node {
	return &Node{
		Name:    name,
		Rect:    rect,
		Visible: true,
		Dirty:   DirtyOnce,
	}
}

// AddChild adds a child to the end of the list of children. The child is
// removed from its previous parent.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	child.MarkDirty()
}

// RemoveChild removes the child from the node. The area it occupied will be
// repainted on the next frame.
func (n *Node) RemoveChild(child *Node) {
	i := slices.Index(n.children, child)
	if i == -1 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	child.walk(func(c *Node) {
		if !c.drawn.Empty() {
			n.stale = append(n.stale, c.drawn)
			c.drawn = image.Rectangle{}
		}
		c.MarkDirty()
	})
	n.MarkDirty()
}

// Children returns a copy of the list of children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Parent returns the parent of the node or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// MarkDirty makes the node dirty for the next frame. A node that is
// DirtyAlways is unchanged.
func (n *Node) MarkDirty() {
	if n.Dirty == Clean {
		n.Dirty = DirtyOnce
	}
}

// SetRect moves or resizes the node.
func (n *Node) SetRect(r image.Rectangle) {
	if r != n.Rect {
		n.Rect = r
		n.MarkDirty()
	}
}

// SetVisible shows or hides the node.
func (n *Node) SetVisible(v bool) {
	if v != n.Visible {
		n.Visible = v
		n.MarkDirty()
	}
}

// TargetName implements the devices.Target interface.
func (n *Node) TargetName() string {
	return n.Name
}

// Bounds implements the devices.Target interface.
func (n *Node) Bounds() image.Rectangle {
	return n.Rect
}

// walk calls f for the node and all its descendants, parents first.
func (n *Node) walk(f func(*Node)) {
	f(n)
	for _, c := range n.children {
		c.walk(f)
	}
}

// update the node and its descendants. dirtiness is propagated to the
// children before the node's OnUpdate is called.
func (n *Node) update(dt float64) {
	if n.Dirty != Clean {
		for _, c := range n.children {
			c.MarkDirty()
		}
		if n.OnUpdate != nil {
			n.OnUpdate(n, dt)
		}
	}
	for _, c := range n.children {
		c.update(dt)
	}
}
