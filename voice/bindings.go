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

package voice

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Binding associates a phrase with a named action.
type Binding struct {
	Phrase string `yaml:"phrase"`
	Action string `yaml:"action"`
}

// Bindings is the content of a bindings file. For example:
//
//	commands:
//	  - phrase: next scene
//	    action: next
//	  - phrase: go back
//	    action: back
type Bindings struct {
	Commands []Binding `yaml:"commands"`
}

// LoadBindings parses YAML data.
func LoadBindings(data []byte) (Bindings, error) {
	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bindings{}, fmt.Errorf("bindings: %w", err)
	}

	for i, c := range b.Commands {
		if strings.TrimSpace(c.Phrase) == "" {
			return Bindings{}, fmt.Errorf("bindings: command %d: no phrase", i)
		}
		if strings.TrimSpace(c.Action) == "" {
			return Bindings{}, fmt.Errorf("bindings: command %d: no action", i)
		}
	}

	return b, nil
}

// Apply registers every binding with the listener. The action names are
// looked up in the actions map. It is an error for a binding to name an
// action that does not exist.
func (b Bindings) Apply(l *Listener, actions map[string]Callback) error {
	for _, c := range b.Commands {
		cb, ok := actions[strings.TrimSpace(c.Action)]
		if !ok {
			return fmt.Errorf("bindings: unknown action: %s", c.Action)
		}
		l.RegisterCommand(c.Phrase, cb)
	}
	return nil
}
