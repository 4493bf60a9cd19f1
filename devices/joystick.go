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
	"slices"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/logger"
)

// JoystickProperties are the slow-to-query properties of a joystick.
type JoystickProperties struct {
	Name    string
	Axes    int
	Balls   int
	Buttons int
	Hats    int
}

// JoystickInfo is implemented by anything that can look up the properties of a
// joystick by device index.
type JoystickInfo interface {
	JoystickInfo(which int) (JoystickProperties, error)
}

// StaticJoystickInfo implements the JoystickInfo interface with a fixed table.
type StaticJoystickInfo map[int]JoystickProperties

// JoystickInfo implements the JoystickInfo interface.
func (s StaticJoystickInfo) JoystickInfo(which int) (JoystickProperties, error) {
	if p, ok := s[which]; ok {
		return p, nil
	}
	return JoystickProperties{}, fmt.Errorf("no joystick at index %d", which)
}

// Ball is the accumulated relative motion of a trackball.
type Ball struct {
	X, Y int
}

// Joystick is the shadow state of a single joystick.
type Joystick struct {
	Which int
	JoystickProperties

	AxisValues   []int16
	BallValues   []Ball
	ButtonValues []bool
	HatValues    []uint8
}

func newJoystick(which int, p JoystickProperties) *Joystick {
	return &Joystick{
		Which:              which,
		JoystickProperties: p,
		AxisValues:         make([]int16, p.Axes),
		BallValues:         make([]Ball, p.Balls),
		ButtonValues:       make([]bool, p.Buttons),
		HatValues:          make([]uint8, p.Hats),
	}
}

func (j *Joystick) String() string {
	return fmt.Sprintf("%d: %s", j.Which, j.Name)
}

// Joysticks manager keeps one Joystick per device index. A Joystick is created
// the first time an event for its index is seen.
type Joysticks struct {
	manager
	cl   *events.Classifier
	info JoystickInfo

	devices     map[int]*Joystick
	unavailable map[int]bool
}

// NewJoysticks is the preferred method of initialisation for the Joysticks
// type. If info is nil then all joysticks will be unavailable.
func NewJoysticks(cl *events.Classifier, info JoystickInfo) *Joysticks {
	if cl == nil {
		cl = events.NewClassifier(events.HostCodes)
	}
	return &Joysticks{
		cl:          cl,
		info:        info,
		devices:     make(map[int]*Joystick),
		unavailable: make(map[int]bool),
	}
}

// Joystick returns the shadow state for the device index.
func (js *Joysticks) Joystick(which int) (*Joystick, bool) {
	j, ok := js.devices[which]
	return j, ok
}

// Devices returns the indexes of the known joysticks in order.
func (js *Joysticks) Devices() []int {
	d := make([]int, 0, len(js.devices))
	for w := range js.devices {
		d = append(d, w)
	}
	slices.Sort(d)
	return d
}

// Unavailable returns true if the device index failed to initialise.
func (js *Joysticks) Unavailable(which int) bool {
	return js.unavailable[which]
}

func (js *Joysticks) lookup(which int) *Joystick {
	if j, ok := js.devices[which]; ok {
		return j
	}
	if js.unavailable[which] {
		return nil
	}

	var p JoystickProperties
	var err error
	if js.info == nil {
		err = fmt.Errorf("no joystick information")
	} else {
		p, err = js.info.JoystickInfo(which)
	}
	if err != nil {
		js.unavailable[which] = true
		logger.Log(logger.Allow, "joystick", curated.Errorf(DeviceInitFailure, fmt.Sprintf("joystick %d", which), err))
		return nil
	}

	j := newJoystick(which, p)
	js.devices[which] = j
	logger.Logf(logger.Allow, "joystick", "found %s", j)

	return j
}

// Process implements the Processor interface.
func (js *Joysticks) Process(env events.Envelope) error {
	if env.Synthesized {
		return js.forward(env)
	}

	switch ev := env.Payload.(type) {
	case events.JoyAxis:
		if j := js.lookup(ev.Which); j != nil && ev.Axis >= 0 && ev.Axis < len(j.AxisValues) {
			j.AxisValues[ev.Axis] = ev.Value
		}
	case events.JoyBall:
		if j := js.lookup(ev.Which); j != nil && ev.Ball >= 0 && ev.Ball < len(j.BallValues) {
			j.BallValues[ev.Ball].X += int(ev.RelX)
			j.BallValues[ev.Ball].Y += int(ev.RelY)
		}
	case events.JoyButton:
		if j := js.lookup(ev.Which); j != nil && ev.Button >= 0 && ev.Button < len(j.ButtonValues) {
			j.ButtonValues[ev.Button] = env.Code == events.JoyButtonDown
		}
	case events.JoyHat:
		if j := js.lookup(ev.Which); j != nil && ev.Hat >= 0 && ev.Hat < len(j.HatValues) {
			j.HatValues[ev.Hat] = ev.Value
		}
	case events.JoyDevice:
		switch env.Code {
		case events.JoyDeviceAdded:
			js.lookup(ev.Which)
		case events.JoyDeviceRemoved:
			if j, ok := js.devices[ev.Which]; ok {
				logger.Logf(logger.Allow, "joystick", "removed %s", j)
			}
			delete(js.devices, ev.Which)
			delete(js.unavailable, ev.Which)
		}
	}

	return js.forward(env)
}
