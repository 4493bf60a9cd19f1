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

package performance

// window is a bounded list of samples. when the window is full the oldest
// sample is evicted to make room.
type window struct {
	buf   []float64
	start int
	limit int
}

func newWindow(limit int) window {
	return window{limit: limit}
}

func (w *window) push(v float64) {
	if len(w.buf) < w.limit {
		w.buf = append(w.buf, v)
		return
	}
	w.buf[w.start] = v
	w.start = (w.start + 1) % w.limit
}

func (w *window) len() int {
	return len(w.buf)
}

// values in the order they were pushed
func (w *window) values() []float64 {
	v := make([]float64, 0, len(w.buf))
	v = append(v, w.buf[w.start:]...)
	v = append(v, w.buf[:w.start]...)
	return v
}

func (w *window) mean() float64 {
	if len(w.buf) == 0 {
		return 0
	}
	var t float64
	for _, v := range w.buf {
		t += v
	}
	return t / float64(len(w.buf))
}
