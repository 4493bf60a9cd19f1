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

package registry_test

import (
	"testing"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/registry"
	"github.com/jetsetilly/stagehand/test"
)

// named records its name each time it handles an event
type named struct {
	name    string
	handles []string
	called  *[]string
}

func (n *named) Resolve(event string) (registry.Handler, bool) {
	for _, h := range n.handles {
		if h == event {
			return func(env events.Envelope) error {
				*n.called = append(*n.called, n.name)
				return nil
			}, true
		}
	}
	return nil, false
}

func TestChainOrder(t *testing.T) {
	var called []string

	a := &named{name: "a", handles: []string{"KEYDOWN"}, called: &called}
	b := &named{name: "b", handles: []string{"KEYDOWN", "KEYUP"}, called: &called}

	var pc registry.ProxyChain
	pc.Set(a, b)
	test.ExpectEquality(t, pc.Len(), 2)

	// front of chain takes priority
	test.ExpectSuccess(t, pc.Dispatch(events.Envelope{Code: events.KeyDown}))
	test.ExpectSuccess(t, pc.Dispatch(events.Envelope{Code: events.KeyUp}))
	test.DemandEquality(t, len(called), 2)
	test.ExpectEquality(t, called[0], "a")
	test.ExpectEquality(t, called[1], "b")

	// prepending b means b handles KEYDOWN now
	called = called[:0]
	pc.Set(a)
	pc.Prepend(b)
	test.ExpectSuccess(t, pc.Dispatch(events.Envelope{Code: events.KeyDown}))
	test.DemandEquality(t, len(called), 1)
	test.ExpectEquality(t, called[0], "b")

	test.ExpectSuccess(t, pc.Remove(b))
	test.ExpectFailure(t, pc.Remove(b))
	test.ExpectEquality(t, pc.Len(), 1)
	test.ExpectEquality(t, pc.Proxies()[0].(*named), a)
}

func TestUnhandled(t *testing.T) {
	var pc registry.ProxyChain

	err := pc.Dispatch(events.Envelope{Code: events.MidiIn})
	test.ExpectSuccess(t, curated.Is(err, registry.UnhandledEvent))
	test.ExpectEquality(t, err.Error(), "unhandled event: MIDIIN")

	pc.Append(registry.Handlers{
		"MIDIIN": func(env events.Envelope) error { return nil },
	})
	test.ExpectSuccess(t, pc.Dispatch(events.Envelope{Code: events.MidiIn}))

	_, err = pc.Lookup("MIDIOUT")
	test.ExpectFailure(t, err)
}

func TestNestedChains(t *testing.T) {
	var called []string

	var inner registry.ProxyChain
	inner.Set(&named{name: "inner", handles: []string{"QUIT"}, called: &called})

	var outer registry.ProxyChain
	outer.Set(nil, &inner)
	test.ExpectEquality(t, outer.Len(), 1)

	test.ExpectSuccess(t, outer.Dispatch(events.Envelope{Code: events.Quit}))
	test.DemandEquality(t, len(called), 1)
	test.ExpectEquality(t, called[0], "inner")
}

func TestRemoveUncomparable(t *testing.T) {
	var pc registry.ProxyChain
	h := registry.Handlers{}
	pc.Set(h)

	// Handlers is a map and so can't be found with Remove()
	test.ExpectFailure(t, pc.Remove(h))
	test.ExpectEquality(t, pc.Len(), 1)
}
