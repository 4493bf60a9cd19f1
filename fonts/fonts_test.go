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

package fonts_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/resources"
	"github.com/jetsetilly/stagehand/test"
	"golang.org/x/image/font/basicfont"
)

func TestBuiltin(t *testing.T) {
	var b fonts.Builtin

	face, err := b.Font(fonts.Config{Name: "gomono", Size: 16})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, face.Metrics().Height.Ceil() > 0)

	// zero config is the default font
	face, err = b.Font(fonts.Config{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, face != nil)

	face, err = b.Font(fonts.Config{Name: "basic"})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, face == basicfont.Face7x13)
}

func TestFallback(t *testing.T) {
	b := fonts.Builtin{Resources: resources.Dir{Root: t.TempDir()}}

	// missing font files fall back to the default font
	face, err := b.Font(fonts.Config{Name: "missing.ttf", Size: 10})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, face != nil)
}

func TestDraw(t *testing.T) {
	var b fonts.Builtin
	face, err := b.Font(fonts.Config{Name: "basic"})
	test.DemandSuccess(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	r := fonts.Draw(img, face, image.Pt(2, 2), "hello", color.White)
	test.ExpectSuccess(t, !r.Empty())
	test.ExpectSuccess(t, r.In(img.Bounds()))

	// at least one pixel in the drawn area has been set
	var set bool
	for y := r.Min.Y; y < r.Max.Y && !set; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				set = true
				break
			}
		}
	}
	test.ExpectSuccess(t, set)

	m := fonts.Measure(face, "hello")
	test.ExpectEquality(t, m.Dx(), r.Dx())
}
