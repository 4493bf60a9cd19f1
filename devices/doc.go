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

// Package devices contains the device managers and the Router that sends
// each classified event to exactly one of them.
//
// Each manager keeps the state for its type of device and forwards the events
// it receives to its proxy chain. The managers also derive new events from
// the raw events:
//
//	Keyboard  KEYCHORD on every key down and key up
//	Mouse     MOUSEENTER, MOUSEEXIT, MOUSEDRAG, MOUSEDRAGEND,
//	          MOUSESCROLLUP and MOUSESCROLLDOWN
//
// Derived events are never fed back into the rule that created them.
//
// The Joystick manager keeps shadow copies of the axis, ball, button and hat
// values of every joystick it has seen. The shadow values are updated before
// the event is forwarded so a handler that queries the Joystick manager sees
// the new value.
//
// Managers are constructed through the registry. Define() adds the
// constructors for all managers in this package to a registry.
package devices
