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

package termkeys_test

import (
	"testing"

	"github.com/jetsetilly/stagehand/display/termkeys"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/test"
)

func keys(evs []events.RawEvent, code events.Code) []events.Key {
	var k []events.Key
	for _, ev := range evs {
		if ev.Code == code {
			k = append(k, ev.Payload.(events.Key))
		}
	}
	return k
}

func TestDecodeLetters(t *testing.T) {
	evs, rest := termkeys.Decode([]byte("aB"))
	test.ExpectEquality(t, len(rest), 0)

	down := keys(evs, events.KeyDown)
	up := keys(evs, events.KeyUp)
	test.DemandEquality(t, len(down), 2)
	test.DemandEquality(t, len(up), 2)

	test.ExpectEquality(t, down[0].Key, "A")
	test.ExpectEquality(t, down[0].Mod, events.KeyModNone)
	test.ExpectEquality(t, down[0].Text, "a")
	test.ExpectEquality(t, up[0].Text, "")

	test.ExpectEquality(t, down[1].Key, "B")
	test.ExpectEquality(t, down[1].Mod, events.KeyModShift)

	// every press is a down followed by an up
	test.ExpectEquality(t, evs[0].Code, events.KeyDown)
	test.ExpectEquality(t, evs[1].Code, events.KeyUp)
	test.ExpectEquality(t, evs[2].Code, events.TextInput)
}

func TestDecodeControl(t *testing.T) {
	evs, _ := termkeys.Decode([]byte{3, 13, 9, 127, 1})
	test.DemandEquality(t, len(evs) > 0, true)
	test.ExpectEquality(t, evs[0].Code, events.Quit)

	down := keys(evs, events.KeyDown)
	test.DemandEquality(t, len(down), 4)
	test.ExpectEquality(t, down[0].Key, "Return")
	test.ExpectEquality(t, down[1].Key, "Tab")
	test.ExpectEquality(t, down[2].Key, "Backspace")
	test.ExpectEquality(t, down[3].Key, "A")
	test.ExpectEquality(t, down[3].Mod, events.KeyModCtrl)
}

func TestDecodeEscapeSequences(t *testing.T) {
	evs, rest := termkeys.Decode([]byte("\x1b[A\x1b[D\x1b"))
	test.ExpectEquality(t, len(rest), 0)

	down := keys(evs, events.KeyDown)
	test.DemandEquality(t, len(down), 3)
	test.ExpectEquality(t, down[0].Key, "Up")
	test.ExpectEquality(t, down[1].Key, "Left")
	test.ExpectEquality(t, down[2].Key, "Escape")
}

func TestDecodePartialSequence(t *testing.T) {
	evs, rest := termkeys.Decode([]byte("x\x1b["))
	test.ExpectEquality(t, len(keys(evs, events.KeyDown)), 1)
	test.ExpectEquality(t, string(rest), "\x1b[")

	evs, rest = termkeys.Decode(append(rest, 'B'))
	test.ExpectEquality(t, len(rest), 0)
	down := keys(evs, events.KeyDown)
	test.DemandEquality(t, len(down), 1)
	test.ExpectEquality(t, down[0].Key, "Down")
}
