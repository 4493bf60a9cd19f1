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
	"cmp"
	"slices"

	"github.com/jetsetilly/stagehand/events"
)

// Keyboard manager tracks which keys are held and derives KEYCHORD events.
// Text events are also sent to the Keyboard manager.
type Keyboard struct {
	manager
	cl *events.Classifier

	// every key seen since the last Reset(). the value is true if the key is
	// currently down
	keys map[events.ChordKey]bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard(cl *events.Classifier) *Keyboard {
	if cl == nil {
		cl = events.NewClassifier(events.HostCodes)
	}
	return &Keyboard{
		cl:   cl,
		keys: make(map[events.ChordKey]bool),
	}
}

// Canonical returns the ChordKey for a key event. Only the fields shared by
// the down and up events are kept.
func Canonical(k events.Key) events.ChordKey {
	return events.ChordKey{Key: k.Key, Mod: k.Mod}
}

// Process implements the Processor interface.
func (kb *Keyboard) Process(env events.Envelope) error {
	if env.Synthesized {
		return kb.forward(env)
	}

	switch env.Code {
	case events.KeyDown, events.KeyUp:
		k, ok := env.Payload.(events.Key)
		if !ok || k.Repeat {
			return kb.forward(env)
		}

		kb.keys[Canonical(k)] = env.Code == events.KeyDown

		chord := kb.cl.Synthesize(events.KeyChord, events.Chord{Keys: kb.Held()})
		return kb.forwardAll(env, chord)
	}

	return kb.forward(env)
}

// Held returns the keys that are currently down, in sorted order.
func (kb *Keyboard) Held() []events.ChordKey {
	held := make([]events.ChordKey, 0, len(kb.keys))
	for k, down := range kb.keys {
		if down {
			held = append(held, k)
		}
	}
	slices.SortFunc(held, func(a, b events.ChordKey) int {
		if c := cmp.Compare(a.Key, b.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Mod, b.Mod)
	})
	return held
}

// IsHeld returns true if the key is currently down.
func (kb *Keyboard) IsHeld(key events.ChordKey) bool {
	return kb.keys[key]
}

// Reset forgets all held keys. Called when the window loses focus because key
// up events will not be received.
func (kb *Keyboard) Reset() {
	clear(kb.keys)
}
