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

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/logger"
)

// Audio manager tracks the audio devices that have been added and removed. If
// the audio subsystem fails to initialise it is marked unavailable and the
// engine continues without it.
type Audio struct {
	manager
	devices     map[events.AudioDevice]bool
	unavailable error
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		devices: make(map[events.AudioDevice]bool),
	}
}

// MarkUnavailable records that the named audio subsystem (eg. "capture")
// failed to initialise.
func (au *Audio) MarkUnavailable(subsystem string, err error) {
	au.unavailable = curated.Errorf(DeviceInitFailure, subsystem, err)
	logger.Log(logger.Allow, "audio", au.unavailable)
}

// Unavailable returns the DeviceInitFailure error if the audio subsystem
// failed to initialise, or nil.
func (au *Audio) Unavailable() error {
	return au.unavailable
}

// Devices returns the currently added audio devices.
func (au *Audio) Devices() map[events.AudioDevice]bool {
	return maps.Clone(au.devices)
}

// Process implements the Processor interface.
func (au *Audio) Process(env events.Envelope) error {
	if ev, ok := env.Payload.(events.AudioDevice); ok {
		switch env.Code {
		case events.AudioDeviceAdded:
			au.devices[ev] = true
		case events.AudioDeviceRemoved:
			delete(au.devices, ev)
		}
	}
	return au.forward(env)
}
