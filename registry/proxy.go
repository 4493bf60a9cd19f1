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

package registry

import (
	"slices"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/events"
)

// Handler is the function that handles an event.
type Handler func(env events.Envelope) error

// Proxy is implemented by anything that can be placed in a ProxyChain.
type Proxy interface {
	// Resolve returns the handler for the event name. The event name is the
	// name of the event code (eg. "KEYDOWN").
	Resolve(name string) (Handler, bool)
}

// Handlers is the simplest implementation of the Proxy interface.
type Handlers map[string]Handler

// Resolve implements the Proxy interface.
func (h Handlers) Resolve(name string) (Handler, bool) {
	f, ok := h[name]
	return f, ok
}

// ProxyChain is an ordered list of proxies. The zero value is an empty chain
// ready to use.
type ProxyChain struct {
	proxies []Proxy
}

// Set replaces the chain with the supplied proxies. Nil proxies are ignored.
func (pc *ProxyChain) Set(proxies ...Proxy) {
	pc.proxies = pc.proxies[:0]
	pc.Append(proxies...)
}

// Prepend proxies to the front of the chain. Proxies at the front take
// priority.
func (pc *ProxyChain) Prepend(proxies ...Proxy) {
	p := slices.DeleteFunc(slices.Clone(proxies), func(p Proxy) bool { return p == nil })
	pc.proxies = append(p, pc.proxies...)
}

// Append proxies to the end of the chain.
func (pc *ProxyChain) Append(proxies ...Proxy) {
	for _, p := range proxies {
		if p != nil {
			pc.proxies = append(pc.proxies, p)
		}
	}
}

// Remove every instance of the proxy from the chain. Returns true if the proxy
// was in the chain.
//
// Proxies are compared with the == operator so types that are not comparable
// (eg. the Handlers map type) must be wrapped in a pointer if they are to be
// removed.
func (pc *ProxyChain) Remove(proxy Proxy) bool {
	n := len(pc.proxies)
	pc.proxies = slices.DeleteFunc(pc.proxies, func(p Proxy) bool {
		return sameProxy(p, proxy)
	})
	return len(pc.proxies) != n
}

func sameProxy(a, b Proxy) (same bool) {
	// comparing interfaces holding uncomparable types panics
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// Len returns the number of proxies in the chain.
func (pc *ProxyChain) Len() int {
	return len(pc.proxies)
}

// Proxies returns a copy of the chain.
func (pc *ProxyChain) Proxies() []Proxy {
	return slices.Clone(pc.proxies)
}

// Resolve implements the Proxy interface. A ProxyChain can therefore be a
// member of another ProxyChain.
func (pc *ProxyChain) Resolve(name string) (Handler, bool) {
	for _, p := range pc.proxies {
		if h, ok := p.Resolve(name); ok && h != nil {
			return h, true
		}
	}
	return nil, false
}

// Lookup is like Resolve but returns an UnhandledEvent error if no proxy in the
// chain resolves the name.
func (pc *ProxyChain) Lookup(name string) (Handler, error) {
	if h, ok := pc.Resolve(name); ok {
		return h, nil
	}
	return nil, curated.Errorf(UnhandledEvent, name)
}

// Dispatch the envelope to the first proxy that handles it.
func (pc *ProxyChain) Dispatch(env events.Envelope) error {
	h, err := pc.Lookup(env.Name())
	if err != nil {
		return err
	}
	return h(env)
}
