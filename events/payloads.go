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

import (
	"fmt"
	"strings"
)

// KeyMod is a bitmask of keyboard modifiers.
type KeyMod int

// List of key modifiers.
const (
	KeyModNone  KeyMod = 0
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
	KeyModGUI
)

func (m KeyMod) String() string {
	if m == KeyModNone {
		return ""
	}
	var s []string
	if m&KeyModCtrl == KeyModCtrl {
		s = append(s, "Ctrl")
	}
	if m&KeyModAlt == KeyModAlt {
		s = append(s, "Alt")
	}
	if m&KeyModShift == KeyModShift {
		s = append(s, "Shift")
	}
	if m&KeyModGUI == KeyModGUI {
		s = append(s, "GUI")
	}
	return strings.Join(s, "+")
}

// Key is the payload for KeyDown and KeyUp. The Text field is only ever set
// for KeyDown events.
type Key struct {
	Key      string
	Mod      KeyMod
	ScanCode int
	Repeat   bool
	Text     string
}

// ChordKey is the canonical form of a Key event. It contains only the fields
// that are shared by the down and up events of the same key.
type ChordKey struct {
	Key string
	Mod KeyMod
}

func (k ChordKey) String() string {
	if k.Mod == KeyModNone {
		return k.Key
	}
	return fmt.Sprintf("%s+%s", k.Mod, k.Key)
}

// Chord is the payload for KeyChord. The keys are those currently held, in
// sorted order.
type Chord struct {
	Keys []ChordKey
}

func (c Chord) String() string {
	s := make([]string, len(c.Keys))
	for i := range c.Keys {
		s[i] = c.Keys[i].String()
	}
	return strings.Join(s, " ")
}

// Text is the payload for TextInput.
type Text struct {
	Text string
}

// TextEdit is the payload for TextEditing.
type TextEdit struct {
	Text   string
	Start  int
	Length int
}

// MouseButton identifies a button on a mouse.
type MouseButton int

// List of mouse buttons. Buttons 4 and 5 are the scroll wheel on most
// systems.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButton4
	MouseButton5
)

// MouseMotionEvent is the payload for MouseMotion.
type MouseMotionEvent struct {
	X, Y       int
	RelX, RelY int
}

// MouseButtonEvent is the payload for MouseButtonDown and MouseButtonUp.
type MouseButtonEvent struct {
	X, Y   int
	Button MouseButton
	Clicks int
}

// MouseWheelEvent is the payload for MouseWheel. A positive Y is a scroll up.
type MouseWheelEvent struct {
	X, Y int
}

// MouseCrossing is the payload for MouseEnter and MouseExit.
type MouseCrossing struct {
	Target string
	X, Y   int
}

// MouseDragEvent is the payload for MouseDrag and MouseDragEnd.
type MouseDragEvent struct {
	Button         MouseButton
	X, Y           int
	RelX, RelY     int
	StartX, StartY int
}

// MouseScroll is the payload for MouseScrollUp and MouseScrollDown.
type MouseScroll struct {
	X, Y   int
	Amount int
}

// JoyAxis is the payload for JoyAxisMotion.
type JoyAxis struct {
	Which int
	Axis  int
	Value int16
}

// JoyBall is the payload for JoyBallMotion.
type JoyBall struct {
	Which      int
	Ball       int
	RelX, RelY int16
}

// JoyHat is the payload for JoyHatMotion.
type JoyHat struct {
	Which int
	Hat   int
	Value uint8
}

// JoyButton is the payload for JoyButtonDown and JoyButtonUp.
type JoyButton struct {
	Which  int
	Button int
}

// JoyDevice is the payload for JoyDeviceAdded and JoyDeviceRemoved.
type JoyDevice struct {
	Which int
}

// AudioDevice is the payload for AudioDeviceAdded and AudioDeviceRemoved.
type AudioDevice struct {
	Which   int
	Capture bool
}

// Midi is the payload for MidiIn and MidiOut.
type Midi struct {
	Device int
	Status uint8
	Data1  uint8
	Data2  uint8
}

// Window is the payload for the Window category.
type Window struct {
	Data1, Data2 int
}

// FrameTickEvent is the payload for FrameTick.
type FrameTickEvent struct {
	Scene string
	FPS   float64
}

// Game is the payload for GameEvent and UserEvent.
type Game struct {
	Name string
	Data any
}

// Menu is the payload for MenuSelection.
type Menu struct {
	Menu string
	Item string
}
