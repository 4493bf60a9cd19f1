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
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/registry"
)

// Router sends each envelope to exactly one Processor, chosen by the category
// of the envelope. Categories without a Processor are sent to the fallback
// proxy.
type Router struct {
	processors map[events.Category]Processor
	fallback   registry.ProxyChain
}

// NewRouter is the preferred method of initialisation for the Router type.
func NewRouter() *Router {
	return &Router{
		processors: make(map[events.Category]Processor),
	}
}

// Route envelopes of the categories to the Processor.
func (rt *Router) Route(p Processor, cats ...events.Category) {
	for _, c := range cats {
		rt.processors[c] = p
	}
}

// SetFallback sets the proxy for categories that have no Processor.
func (rt *Router) SetFallback(proxy registry.Proxy) {
	rt.fallback.Set(proxy)
}

// Dispatch the envelope.
func (rt *Router) Dispatch(env events.Envelope) error {
	if p, ok := rt.processors[env.Category]; ok {
		return p.Process(env)
	}
	return rt.fallback.Dispatch(env)
}
