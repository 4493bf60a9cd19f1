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

package notifications

// Notice describes events that somehow change the presentation of the
// application. These notifications can be used to present additional
// information to the user.
type Notice string

// List of defined notifications.
const (
	// the active scene has changed. the detail is the name of the new scene
	NotifySceneSwitch Notice = "NotifySceneSwitch"

	// a snapshot of the outgoing scene has been saved. the detail is the
	// filename
	NotifySnapshot Notice = "NotifySnapshot"

	// the frame loop has ended and the engine is shutting down
	NotifyShutdown Notice = "NotifyShutdown"

	// voice command has been recognised. the detail is the phrase
	NotifyVoiceCommand Notice = "NotifyVoiceCommand"

	// a device subsystem could not be initialised and has been marked
	// unavailable. the detail is the name of the subsystem
	NotifyDeviceUnavailable Notice = "NotifyDeviceUnavailable"
)

// Notify is implemented by anything that wants to be told about notices.
type Notify interface {
	Notify(notice Notice, detail string) error
}
