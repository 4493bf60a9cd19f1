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
	"sync"

	"github.com/jetsetilly/stagehand/events"
)

// Headless implements the Provider and Input interfaces without a window.
// Events can be scripted with Script() and further Input sources attached with
// Attach().
type Headless struct {
	crit sync.Mutex

	surface *image.RGBA
	title   string
	closed  bool

	// number of calls to Present() and the area of the most recent call
	presents    int
	lastPresent []image.Rectangle

	// scripted events. each entry is returned by a single call to PollEvents()
	script [][]events.RawEvent

	inputs []Input
}

// NewHeadless is the preferred method of initialisation for the Headless type.
func NewHeadless(width, height int) *Headless {
	return &Headless{
		surface: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// CurrentSurface implements the Provider interface.
func (h *Headless) CurrentSurface() draw.Image {
	return h.surface
}

// Present implements the Provider interface.
func (h *Headless) Present(changed []image.Rectangle) error {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.presents++
	h.lastPresent = append(h.lastPresent[:0], changed...)
	return nil
}

// SetTitle implements the Provider interface.
func (h *Headless) SetTitle(title string) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.title = title
}

// Close implements the Provider interface.
func (h *Headless) Close() error {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.closed = true
	return nil
}

// Title returns the most recent title set with SetTitle().
func (h *Headless) Title() string {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.title
}

// Presents returns the number of calls to Present() and the rectangles from
// the most recent call.
func (h *Headless) Presents() (int, []image.Rectangle) {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.presents, append([]image.Rectangle(nil), h.lastPresent...)
}

// Closed returns true if Close() has been called.
func (h *Headless) Closed() bool {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.closed
}

// Script queues events to be returned by a single future call to
// PollEvents(). Each call to Script() is a separate batch.
func (h *Headless) Script(evs ...events.RawEvent) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.script = append(h.script, evs)
}

// Attach an Input source. Events from attached sources follow any scripted
// events.
func (h *Headless) Attach(in Input) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.inputs = append(h.inputs, in)
}

// PollEvents implements the Input interface.
func (h *Headless) PollEvents() []events.RawEvent {
	h.crit.Lock()
	var evs []events.RawEvent
	if len(h.script) > 0 {
		evs = h.script[0]
		h.script = h.script[1:]
	}
	inputs := h.inputs
	h.crit.Unlock()

	for _, in := range inputs {
		evs = append(evs, in.PollEvents()...)
	}

	return evs
}
