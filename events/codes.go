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

// Code identifies the type of an event.
type Code int

// List of event codes. The first group corresponds to the events a host
// windowing library produces.
const (
	NoEvent Code = iota

	AudioDeviceAdded
	AudioDeviceRemoved

	JoyAxisMotion
	JoyBallMotion
	JoyHatMotion
	JoyButtonDown
	JoyButtonUp
	JoyDeviceAdded
	JoyDeviceRemoved

	KeyDown
	KeyUp

	MidiIn
	MidiOut

	MouseMotion
	MouseButtonDown
	MouseButtonUp
	MouseWheel

	TextInput
	TextEditing

	WindowShown
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowFocusGained
	WindowFocusLost
	WindowEnter
	WindowLeave
	WindowClose

	Quit
	UserEvent
	ClipboardUpdate
	DropFile

	// well-known synthetic codes. always in CategoryGame
	FrameTick
	GameEvent
	MenuSelection

	// codes derived by device managers
	KeyChord
	MouseEnter
	MouseExit
	MouseDrag
	MouseDragEnd
	MouseScrollUp
	MouseScrollDown

	numCodes
)

var codeNames = [numCodes]string{
	NoEvent:            "NOEVENT",
	AudioDeviceAdded:   "AUDIODEVICEADDED",
	AudioDeviceRemoved: "AUDIODEVICEREMOVED",
	JoyAxisMotion:      "JOYAXISMOTION",
	JoyBallMotion:      "JOYBALLMOTION",
	JoyHatMotion:       "JOYHATMOTION",
	JoyButtonDown:      "JOYBUTTONDOWN",
	JoyButtonUp:        "JOYBUTTONUP",
	JoyDeviceAdded:     "JOYDEVICEADDED",
	JoyDeviceRemoved:   "JOYDEVICEREMOVED",
	KeyDown:            "KEYDOWN",
	KeyUp:              "KEYUP",
	MidiIn:             "MIDIIN",
	MidiOut:            "MIDIOUT",
	MouseMotion:        "MOUSEMOTION",
	MouseButtonDown:    "MOUSEBUTTONDOWN",
	MouseButtonUp:      "MOUSEBUTTONUP",
	MouseWheel:         "MOUSEWHEEL",
	TextInput:          "TEXTINPUT",
	TextEditing:        "TEXTEDITING",
	WindowShown:        "WINDOWSHOWN",
	WindowHidden:       "WINDOWHIDDEN",
	WindowExposed:      "WINDOWEXPOSED",
	WindowMoved:        "WINDOWMOVED",
	WindowResized:      "WINDOWRESIZED",
	WindowFocusGained:  "WINDOWFOCUSGAINED",
	WindowFocusLost:    "WINDOWFOCUSLOST",
	WindowEnter:        "WINDOWENTER",
	WindowLeave:        "WINDOWLEAVE",
	WindowClose:        "WINDOWCLOSE",
	Quit:               "QUIT",
	UserEvent:          "USEREVENT",
	ClipboardUpdate:    "CLIPBOARDUPDATE",
	DropFile:           "DROPFILE",
	FrameTick:          "FRAMETICK",
	GameEvent:          "GAMEEVENT",
	MenuSelection:      "MENUSELECTION",
	KeyChord:           "KEYCHORD",
	MouseEnter:         "MOUSEENTER",
	MouseExit:          "MOUSEEXIT",
	MouseDrag:          "MOUSEDRAG",
	MouseDragEnd:       "MOUSEDRAGEND",
	MouseScrollUp:      "MOUSESCROLLUP",
	MouseScrollDown:    "MOUSESCROLLDOWN",
}

// String returns the name of the code. The name is also the name that proxy
// handlers are registered with.
func (c Code) String() string {
	if c < 0 || c >= numCodes {
		return "UNKNOWN"
	}
	return codeNames[c]
}

// Named is an entry in a table of named codes.
type Named struct {
	Name string
	Code Code
}

// HostCodes is the table of codes produced by input sources. It mirrors the
// event names of the SDL library and is the table normally given to
// NewClassifier().
var HostCodes []Named

// DerivedCodes is the table of codes created by device managers.
var DerivedCodes = []Named{
	{"KEYCHORD", KeyChord},
	{"MOUSEENTER", MouseEnter},
	{"MOUSEEXIT", MouseExit},
	{"MOUSEDRAG", MouseDrag},
	{"MOUSEDRAGEND", MouseDragEnd},
	{"MOUSESCROLLUP", MouseScrollUp},
	{"MOUSESCROLLDOWN", MouseScrollDown},
}

func init() {
	for c := AudioDeviceAdded; c < FrameTick; c++ {
		HostCodes = append(HostCodes, Named{Name: c.String(), Code: c})
	}
}
