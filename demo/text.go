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
	"image/draw"

	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/scene"
	"golang.org/x/image/font"
)

// label is the UserData of a text node
type label struct {
	face font.Face
	text string
	col  color.Color
}

func textRect(face font.Face, pt image.Point, s string) image.Rectangle {
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	return image.Rect(pt.X, pt.Y, pt.X+w, pt.Y+m.Ascent.Ceil()+m.Descent.Ceil())
}

func newText(name string, face font.Face, pt image.Point, s string, col color.Color) *scene.Node {
	n := scene.NewNode(name, textRect(face, pt, s))
	n.UserData = &label{face: face, text: s, col: col}
	n.OnDraw = func(n *scene.Node, dst draw.Image) {
		l := n.UserData.(*label)
		fonts.Draw(dst, l.face, n.Rect.Min, l.text, l.col)
	}
	return n
}

// setText changes the text of a node created with newText. The node is only
// made dirty if the text has changed.
func setText(n *scene.Node, s string) {
	l := n.UserData.(*label)
	if l.text == s {
		return
	}
	l.text = s
	n.SetRect(textRect(l.face, n.Rect.Min, s))
	n.MarkDirty()
}

// setColor changes the colour of a node created with newText.
func setColor(n *scene.Node, col color.Color) {
	l := n.UserData.(*label)
	if l.col == col {
		return
	}
	l.col = col
	n.MarkDirty()
}

// centred returns the point at which text should be drawn so that it is
// horizontally centred in bounds.
func centred(face font.Face, bounds image.Rectangle, y int, s string) image.Point {
	w := font.MeasureString(face, s).Ceil()
	return image.Pt(bounds.Min.X+(bounds.Dx()-w)/2, y)
}
