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

// Package demo contains two scenes that exercise the engine. The Title scene
// waits for the player to start. The Play scene has a box that can be moved
// with the keyboard, the mouse wheel or a joystick hat.
//
// The scenes can also be controlled by voice. VoiceActions() returns the
// "next", "back" and "quit" actions that a voice.Bindings can refer to.
package demo
