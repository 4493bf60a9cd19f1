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

// Package voice listens for spoken commands.
//
// A Listener opens a capture device with a capture.Backend and runs a
// recognition worker on its own goroutine. The capture device writes chunks of
// audio to a Ring and the worker reads them back, splitting the audio into
// utterances by comparing the energy of each chunk against the ambient noise
// level measured when the worker starts.
//
// Utterances are transcribed by a Recognizer and the transcript is compared
// against the registered phrases with ProcessCommand(). Errors from the
// Recognizer never stop the worker. Failures of the recognition service cause
// the worker to pause for a short time before listening again.
//
// Phrases can be bound to named actions with a YAML bindings file. See
// LoadBindings().
package voice
