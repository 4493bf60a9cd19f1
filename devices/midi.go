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

package devices

import (
	"maps"

	"github.com/jetsetilly/stagehand/events"
)

// Midi manager forwards MIDI messages and counts them by status byte.
type Midi struct {
	manager
	counts map[uint8]int
}

// NewMidi is the preferred method of initialisation for the Midi type.
func NewMidi() *Midi {
	return &Midi{
		counts: make(map[uint8]int),
	}
}

// Process implements the Processor interface.
func (md *Midi) Process(env events.Envelope) error {
	if ev, ok := env.Payload.(events.Midi); ok {
		md.counts[ev.Status]++
	}
	return md.forward(env)
}

// Counts returns the number of messages seen for each status byte.
func (md *Midi) Counts() map[uint8]int {
	return maps.Clone(md.counts)
}
