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

// Package registry holds the process-wide set of resource managers and the
// proxy chains that route unhandled events between them.
//
// Managers are identified by a Handle. A constructor for each handle is
// defined at startup with Define() and the manager is created by the first
// call to Get(). Every later call returns the same instance:
//
//	registry.Default.Define(devices.KeyboardHandle, devices.NewKeyboard)
//	kb, err := registry.Default.Get(devices.KeyboardHandle, classifier)
//
// The arguments given to the first call of Get() are the arguments used to
// construct the manager. Later calls with different arguments are ignored and
// logged. If the registry is strict then a later call with different
// arguments is a ConfigurationError instead.
//
// Every manager has a ProxyChain. A ProxyChain is an ordered list of Proxy
// instances. When a manager cannot handle an event itself the chain is
// consulted front to back and the first proxy that resolves the event name
// handles the event. If no proxy resolves the name the result is an
// UnhandledEvent error.
//
// The registry and all proxy chains must only be used from the main thread.
package registry
