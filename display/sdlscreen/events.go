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

package sdlscreen

import (
	"strings"

	"github.com/jetsetilly/stagehand/events"
	"github.com/veandco/go-sdl2/sdl"
)

// PollEvents implements the display.Input interface.
func (scr *Screen) PollEvents() []events.RawEvent {
	if scr.closed {
		return nil
	}

	var evs []events.RawEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if raw, ok := scr.translate(ev); ok {
			evs = append(evs, raw)
		}
	}

	return evs
}

func (scr *Screen) translate(ev sdl.Event) (events.RawEvent, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return events.RawEvent{Code: events.Quit}, true

	case *sdl.WindowEvent:
		return scr.windowEvent(ev)

	case *sdl.KeyboardEvent:
		k := events.Key{
			Key:      sdl.GetKeyName(ev.Keysym.Sym),
			Mod:      keyMod(ev.Keysym.Mod),
			ScanCode: int(ev.Keysym.Scancode),
			Repeat:   ev.Repeat != 0,
		}
		if ev.Type == sdl.KEYDOWN {
			return events.RawEvent{Code: events.KeyDown, Payload: k}, true
		}
		return events.RawEvent{Code: events.KeyUp, Payload: k}, true

	case *sdl.TextInputEvent:
		return events.RawEvent{Code: events.TextInput, Payload: events.Text{Text: cstring(ev.Text[:])}}, true

	case *sdl.TextEditingEvent:
		return events.RawEvent{Code: events.TextEditing, Payload: events.TextEdit{
			Text:   cstring(ev.Text[:]),
			Start:  int(ev.Start),
			Length: int(ev.Length),
		}}, true

	case *sdl.MouseMotionEvent:
		return events.RawEvent{Code: events.MouseMotion, Payload: events.MouseMotionEvent{
			X: int(ev.X), Y: int(ev.Y),
			RelX: int(ev.XRel), RelY: int(ev.YRel),
		}}, true

	case *sdl.MouseButtonEvent:
		b := events.MouseButtonEvent{
			X:      int(ev.X),
			Y:      int(ev.Y),
			Button: mouseButton(ev.Button),
			Clicks: int(ev.Clicks),
		}
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return events.RawEvent{Code: events.MouseButtonDown, Payload: b}, true
		}
		return events.RawEvent{Code: events.MouseButtonUp, Payload: b}, true

	case *sdl.MouseWheelEvent:
		w := events.MouseWheelEvent{X: int(ev.X), Y: int(ev.Y)}
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			w.X, w.Y = -w.X, -w.Y
		}
		return events.RawEvent{Code: events.MouseWheel, Payload: w}, true

	case *sdl.JoyAxisEvent:
		return events.RawEvent{Code: events.JoyAxisMotion, Payload: events.JoyAxis{
			Which: scr.deviceIndex(ev.Which),
			Axis:  int(ev.Axis),
			Value: ev.Value,
		}}, true

	case *sdl.JoyBallEvent:
		return events.RawEvent{Code: events.JoyBallMotion, Payload: events.JoyBall{
			Which: scr.deviceIndex(ev.Which),
			Ball:  int(ev.Ball),
			RelX:  ev.XRel,
			RelY:  ev.YRel,
		}}, true

	case *sdl.JoyHatEvent:
		return events.RawEvent{Code: events.JoyHatMotion, Payload: events.JoyHat{
			Which: scr.deviceIndex(ev.Which),
			Hat:   int(ev.Hat),
			Value: ev.Value,
		}}, true

	case *sdl.JoyButtonEvent:
		b := events.JoyButton{Which: scr.deviceIndex(ev.Which), Button: int(ev.Button)}
		if ev.State == sdl.PRESSED {
			return events.RawEvent{Code: events.JoyButtonDown, Payload: b}, true
		}
		return events.RawEvent{Code: events.JoyButtonUp, Payload: b}, true

	case *sdl.JoyDeviceAddedEvent:
		// the Which field of an added event is the device index
		return events.RawEvent{Code: events.JoyDeviceAdded, Payload: events.JoyDevice{Which: int(ev.Which)}}, true

	case *sdl.JoyDeviceRemovedEvent:
		return events.RawEvent{Code: events.JoyDeviceRemoved, Payload: events.JoyDevice{Which: scr.forget(ev.Which)}}, true

	case *sdl.AudioDeviceEvent:
		a := events.AudioDevice{Which: int(ev.Which), Capture: ev.IsCapture != 0}
		if ev.Type == sdl.AUDIODEVICEADDED {
			return events.RawEvent{Code: events.AudioDeviceAdded, Payload: a}, true
		}
		return events.RawEvent{Code: events.AudioDeviceRemoved, Payload: a}, true

	case *sdl.DropEvent:
		if ev.Type == sdl.DROPFILE {
			return events.RawEvent{Code: events.DropFile, Payload: ev.File}, true
		}

	case *sdl.ClipboardEvent:
		return events.RawEvent{Code: events.ClipboardUpdate}, true

	case *sdl.UserEvent:
		return events.RawEvent{Code: events.UserEvent, Payload: events.Game{Name: "sdl", Data: ev.Code}}, true
	}

	return events.RawEvent{}, false
}

func (scr *Screen) windowEvent(ev *sdl.WindowEvent) (events.RawEvent, bool) {
	w := events.Window{Data1: int(ev.Data1), Data2: int(ev.Data2)}

	var c events.Code

	switch ev.Event {
	case sdl.WINDOWEVENT_SHOWN:
		c = events.WindowShown
	case sdl.WINDOWEVENT_HIDDEN:
		c = events.WindowHidden
	case sdl.WINDOWEVENT_EXPOSED:
		scr.exposed = true
		c = events.WindowExposed
	case sdl.WINDOWEVENT_MOVED:
		c = events.WindowMoved
	case sdl.WINDOWEVENT_RESIZED:
		scr.exposed = true
		c = events.WindowResized
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		c = events.WindowFocusGained
	case sdl.WINDOWEVENT_FOCUS_LOST:
		c = events.WindowFocusLost
	case sdl.WINDOWEVENT_ENTER:
		c = events.WindowEnter
	case sdl.WINDOWEVENT_LEAVE:
		c = events.WindowLeave
	case sdl.WINDOWEVENT_CLOSE:
		c = events.WindowClose
	default:
		return events.RawEvent{}, false
	}

	return events.RawEvent{Code: c, Payload: w}, true
}

func keyMod(mod uint16) events.KeyMod {
	m := int(mod)
	var km events.KeyMod
	if m&int(sdl.KMOD_SHIFT) != 0 {
		km |= events.KeyModShift
	}
	if m&int(sdl.KMOD_CTRL) != 0 {
		km |= events.KeyModCtrl
	}
	if m&int(sdl.KMOD_ALT) != 0 {
		km |= events.KeyModAlt
	}
	if m&int(sdl.KMOD_GUI) != 0 {
		km |= events.KeyModGUI
	}
	return km
}

func mouseButton(b uint8) events.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return events.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return events.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return events.MouseButtonRight
	}

	// the extra buttons are not the scroll wheel buttons 4 and 5. the wheel is
	// reported with MouseWheelEvent
	return events.MouseButtonNone
}

// cstring converts a null terminated byte array into a string
func cstring(b []byte) string {
	s, _, _ := strings.Cut(string(b), "\x00")
	return s
}
