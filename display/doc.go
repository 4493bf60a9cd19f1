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

// Package display defines the interfaces between the engine and the thing
// that shows the rendered frame, and the interface to the source of raw input
// events.
//
// The Headless type implements both interfaces without a window. It is used
// for tests and for running the engine in a terminal. Scripted events can be
// queued on a Headless instance and other Input sources (the termkeys
// package for example) can be attached to it.
//
// The sdlscreen sub-package implements the interfaces with an SDL window.
package display
