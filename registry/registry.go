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
	"fmt"
	"io"
	"reflect"
	"slices"
	"sync"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/logger"
)

// Handle identifies a manager type.
type Handle string

// Manager is implemented by every resource manager.
type Manager interface {
	Proxy

	// Chain returns the proxy chain owned by the manager. The chain is
	// consulted for events the manager does not handle itself.
	Chain() *ProxyChain
}

// Constructor creates a new manager from the arguments given to the first
// call of Get().
type Constructor func(args ...any) (Manager, error)

type entry struct {
	construct Constructor
	instance  Manager
	args      []any
}

// Registry maps handles to manager instances.
type Registry struct {
	crit sync.Mutex

	entries map[Handle]*entry

	// handles in the order the managers were constructed
	order []Handle

	// if strict is true then calls to Get() with arguments that differ from
	// the first call are an error
	strict bool
}

// Default is the registry used by the engine.
var Default = NewRegistry()

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[Handle]*entry),
	}
}

// SetStrict changes how calls to Get() with differing arguments are treated.
func (reg *Registry) SetStrict(strict bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	reg.strict = strict
}

// Define the constructor for a handle. Defining a handle for a second time
// replaces the constructor but only if the manager has not yet been
// constructed.
func (reg *Registry) Define(handle Handle, construct Constructor) error {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	if e, ok := reg.entries[handle]; ok && e.instance != nil {
		return curated.Errorf(ConfigurationError, fmt.Errorf("%s already constructed", handle))
	}
	reg.entries[handle] = &entry{construct: construct}
	return nil
}

// Get returns the manager for the handle, constructing it with args if this is
// the first call for the handle.
func (reg *Registry) Get(handle Handle, args ...any) (Manager, error) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	e, ok := reg.entries[handle]
	if !ok {
		return nil, curated.Errorf(ConfigurationError, fmt.Errorf("undefined manager %s", handle))
	}

	if e.instance != nil {
		if len(args) > 0 && !reflect.DeepEqual(args, e.args) {
			if reg.strict {
				return nil, curated.Errorf(ConfigurationError, fmt.Errorf("%s constructed with different arguments", handle))
			}
			logger.Logf(logger.Allow, "registry", "%s: arguments ignored: manager already constructed", handle)
		}
		return e.instance, nil
	}

	m, err := e.construct(args...)
	if err != nil {
		return nil, curated.Errorf(ConfigurationError, err)
	}
	e.instance = m
	e.args = args
	reg.order = append(reg.order, handle)

	return m, nil
}

// Handles returns the handles of the constructed managers in the order they
// were constructed.
func (reg *Registry) Handles() []Handle {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return slices.Clone(reg.order)
}

// Memviz writes a graphviz representation of the constructed managers and
// everything reachable from them.
func (reg *Registry) Memviz(w io.Writer) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	m := make(map[Handle]Manager)
	for _, h := range reg.order {
		m[h] = reg.entries[h].instance
	}
	memviz.Map(w, &m)
}
