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
	"errors"

	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/registry"
)

// Processor is implemented by all device managers.
type Processor interface {
	Process(env events.Envelope) error
}

// manager is embedded by every device manager.
type manager struct {
	chain registry.ProxyChain
}

// Chain implements the registry.Manager interface.
func (m *manager) Chain() *registry.ProxyChain {
	return &m.chain
}

// Resolve implements the registry.Proxy interface. Resolution is delegated to
// the proxy chain.
func (m *manager) Resolve(name string) (registry.Handler, bool) {
	return m.chain.Resolve(name)
}

// forward the envelope to the proxy chain.
func (m *manager) forward(env events.Envelope) error {
	return m.chain.Dispatch(env)
}

// forwardAll forwards every envelope to the chain. All envelopes are forwarded
// even if an earlier one results in an error.
func (m *manager) forwardAll(envs ...events.Envelope) error {
	var errs []error
	for _, env := range envs {
		if err := m.forward(env); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
