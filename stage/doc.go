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

// Package stage implements the scene manager and the frame loop.
//
// A Stage owns the display, the input source and the device managers. Only one
// scene is active at a time. SwitchTo() changes the active scene immediately
// and RequestSwitch() changes it at the end of the current frame.
//
// Run() repeats the following until there is no active scene, Quit() is
// called or the context is cancelled:
//
//  1. give the scene the (adaptive) delta time for the frame
//  2. run functions sent on the dispatch channel and then classify and
//     dispatch every pending event
//  3. update the scene
//  4. render the scene
//  5. present the changed areas of the surface
//  6. wait for the remainder of the frame period
//  7. inject a FRAMETICK event if the telemetry interval has elapsed
//  8. switch scene if a switch has been requested
//
// Events are dispatched to the device manager for their category. Events not
// handled by the device manager are passed to the stage's handlers and then to
// the active scene. Events that nobody handles are logged, unless the stage is
// in strict mode, in which case the frame loop ends with an UnhandledEvent
// error.
package stage
