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

package display

import (
	"image"
	"image/draw"

	"github.com/jetsetilly/stagehand/events"
)

// Provider is implemented by anything that can show the rendered frame.
type Provider interface {
	// CurrentSurface returns the image that the scene renders to
	CurrentSurface() draw.Image

	// Present the changed areas of the surface. An empty list means there is
	// nothing to present
	Present(changed []image.Rectangle) error

	SetTitle(title string)
	Close() error
}

// Input is implemented by anything that produces raw events.
type Input interface {
	// PollEvents returns all pending events. Must not block
	PollEvents() []events.RawEvent
}

// clipped is a draw.Image that can only be drawn to inside the clip rectangle
type clipped struct {
	draw.Image
	clip image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.clip
}

// Clip returns a draw.Image that only allows drawing inside r.
func Clip(dst draw.Image, r image.Rectangle) draw.Image {
	r = r.Intersect(dst.Bounds())

	// use SubImage if available. it's faster than the clipped type because
	// the draw package has fast paths for the standard image types
	if s, ok := dst.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		if d, ok := s.SubImage(r).(draw.Image); ok {
			return d
		}
	}

	return clipped{Image: dst, clip: r}
}
