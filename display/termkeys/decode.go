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

package termkeys

import (
	"strings"

	"github.com/jetsetilly/stagehand/events"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt = 3
	keyBackspace = 8
	keyTab       = 9
	keyReturn    = 13
	keyEsc       = 27
	keyDelete    = 127
)

// characters that can follow the ESC [ sequence
var cursorKeys = map[byte]string{
	'A': "Up",
	'B': "Down",
	'C': "Right",
	'D': "Left",
	'H': "Home",
	'F': "End",
}

// Decode the bytes read from a raw terminal into key events. Bytes at the end
// of the input that might be the start of an escape sequence are returned so
// that they can be prepended to the next read.
//
// Ctrl-C produces a Quit event.
func Decode(b []byte) ([]events.RawEvent, []byte) {
	var evs []events.RawEvent

	press := func(key string, mod events.KeyMod, text string) {
		k := events.Key{Key: key, Mod: mod}
		down := k
		down.Text = text
		evs = append(evs,
			events.RawEvent{Code: events.KeyDown, Payload: down},
			events.RawEvent{Code: events.KeyUp, Payload: k},
		)
		if text != "" {
			evs = append(evs, events.RawEvent{Code: events.TextInput, Payload: events.Text{Text: text}})
		}
	}

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == keyInterrupt:
			evs = append(evs, events.RawEvent{Code: events.Quit})

		case c == keyEsc:
			if i+1 >= len(b) {
				// a lone ESC at the end of the read is the escape key. an
				// escape sequence always arrives in a single read
				press("Escape", events.KeyModNone, "")
				continue
			}
			if b[i+1] != '[' {
				press("Escape", events.KeyModNone, "")
				continue
			}
			if i+2 >= len(b) {
				return evs, b[i:]
			}
			if key, ok := cursorKeys[b[i+2]]; ok {
				press(key, events.KeyModNone, "")
			}
			i += 2

		case c == keyReturn || c == '\n':
			press("Return", events.KeyModNone, "")

		case c == keyTab:
			press("Tab", events.KeyModNone, "")

		case c == keyBackspace || c == keyDelete:
			press("Backspace", events.KeyModNone, "")

		case c == ' ':
			press("Space", events.KeyModNone, " ")

		case c >= 1 && c <= 26:
			press(string(rune('A'+c-1)), events.KeyModCtrl, "")

		case c >= 'a' && c <= 'z':
			press(strings.ToUpper(string(rune(c))), events.KeyModNone, string(rune(c)))

		case c >= 'A' && c <= 'Z':
			press(string(rune(c)), events.KeyModShift, string(rune(c)))

		case c > ' ' && c < keyDelete:
			press(string(rune(c)), events.KeyModNone, string(rune(c)))
		}
	}

	return evs, nil
}
