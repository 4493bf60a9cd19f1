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
	"fmt"

	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/registry"
)

// List of manager handles.
const (
	KeyboardHandle registry.Handle = "keyboard"
	MouseHandle    registry.Handle = "mouse"
	JoystickHandle registry.Handle = "joystick"
	MidiHandle     registry.Handle = "midi"
	FontHandle     registry.Handle = "font"
	AudioHandle    registry.Handle = "audio"
)

// arg returns the numbered constructor argument as type T. A missing argument
// is the zero value of T.
func arg[T any](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) || args[i] == nil {
		return zero, nil
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("argument %d: expected %T, got %T", i, zero, args[i])
	}
	return v, nil
}

// Define the constructors for every device manager. The constructor
// arguments, as passed to the first call to registry.Get(), are:
//
//	KeyboardHandle    *events.Classifier
//	MouseHandle       *events.Classifier
//	JoystickHandle    *events.Classifier, JoystickInfo
//	MidiHandle        none
//	FontHandle        fonts.Provider
//	AudioHandle       none
func Define(reg *registry.Registry) error {
	defs := []struct {
		handle    registry.Handle
		construct registry.Constructor
	}{
		{KeyboardHandle, func(args ...any) (registry.Manager, error) {
			cl, err := arg[*events.Classifier](args, 0)
			if err != nil {
				return nil, err
			}
			return NewKeyboard(cl), nil
		}},
		{MouseHandle, func(args ...any) (registry.Manager, error) {
			cl, err := arg[*events.Classifier](args, 0)
			if err != nil {
				return nil, err
			}
			return NewMouse(cl), nil
		}},
		{JoystickHandle, func(args ...any) (registry.Manager, error) {
			cl, err := arg[*events.Classifier](args, 0)
			if err != nil {
				return nil, err
			}
			info, err := arg[JoystickInfo](args, 1)
			if err != nil {
				return nil, err
			}
			return NewJoysticks(cl, info), nil
		}},
		{MidiHandle, func(args ...any) (registry.Manager, error) {
			return NewMidi(), nil
		}},
		{FontHandle, func(args ...any) (registry.Manager, error) {
			prov, err := arg[fonts.Provider](args, 0)
			if err != nil {
				return nil, err
			}
			return NewFonts(prov), nil
		}},
		{AudioHandle, func(args ...any) (registry.Manager, error) {
			return NewAudio(), nil
		}},
	}

	for _, d := range defs {
		if err := reg.Define(d.handle, d.construct); err != nil {
			return err
		}
	}

	return nil
}
