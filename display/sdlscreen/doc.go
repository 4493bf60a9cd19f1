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

// Package sdlscreen implements the display.Provider and display.Input
// interfaces with an SDL window. It also implements the
// devices.JoystickInfo interface so that the Joysticks manager can query the
// properties of connected devices.
//
// All functions must be called from the main thread. The caller should use
// runtime.LockOSThread() before creating the Screen.
package sdlscreen
