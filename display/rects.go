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

import "image"

// if there are more than maxRects rectangles after merging then the union of
// all rectangles is used instead
const maxRects = 32

// touches returns true if the rectangles overlap or share an edge.
func touches(a, b image.Rectangle) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// MergeRects clips the rectangles to bounds, removes empty rectangles and
// merges rectangles that overlap or touch.
func MergeRects(rects []image.Rectangle, bounds image.Rectangle) []image.Rectangle {
	merged := make([]image.Rectangle, 0, len(rects))
	for _, r := range rects {
		r = r.Intersect(bounds)
		if !r.Empty() {
			merged = append(merged, r)
		}
	}

	// merging two rectangles can cause the result to touch a rectangle that
	// was already checked so repeat until nothing changes
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(merged); i++ {
			for j := i + 1; j < len(merged); j++ {
				if touches(merged[i], merged[j]) {
					merged[i] = merged[i].Union(merged[j])
					merged = append(merged[:j], merged[j+1:]...)
					changed = true
					j--
				}
			}
		}
	}

	if len(merged) > maxRects {
		u := merged[0]
		for _, r := range merged[1:] {
			u = u.Union(r)
		}
		return []image.Rectangle{u}
	}

	return merged
}
