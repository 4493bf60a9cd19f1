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

package events

import "strings"

// Category is the classification of an event. Each category is routed to
// exactly one device manager.
type Category int

// List of valid categories.
const (
	CategoryGame Category = iota
	CategoryAudio
	CategoryJoystick
	CategoryKeyboard
	CategoryMidi
	CategoryMouse
	CategoryText
	CategoryWindow
)

func (c Category) String() string {
	switch c {
	case CategoryAudio:
		return "audio"
	case CategoryJoystick:
		return "joystick"
	case CategoryKeyboard:
		return "keyboard"
	case CategoryMidi:
		return "midi"
	case CategoryMouse:
		return "mouse"
	case CategoryText:
		return "text"
	case CategoryWindow:
		return "window"
	}
	return "game"
}

// the order of the prefixes doesn't matter because no prefix is the prefix
// of another
var prefixes = []struct {
	prefix   string
	category Category
}{
	{"AUDIO", CategoryAudio},
	{"JOY", CategoryJoystick},
	{"KEY", CategoryKeyboard},
	{"MIDI", CategoryMidi},
	{"MOUSE", CategoryMouse},
	{"TEXT", CategoryText},
	{"WINDOW", CategoryWindow},
}

// the three synthetic codes that are always in the game category
var gameCodes = []Code{FrameTick, GameEvent, MenuSelection}

func categoryByName(name string) Category {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return CategoryGame
}
