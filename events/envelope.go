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

package events

import "fmt"

// RawEvent is produced by an input source.
type RawEvent struct {
	Code    Code
	Payload any
}

// Envelope is a classified event.
type Envelope struct {
	Category    Category
	Code        Code
	Payload     any
	Synthesized bool
}

// Name returns the handler name for the envelope.
func (env Envelope) Name() string {
	return env.Code.String()
}

func (env Envelope) String() string {
	if env.Synthesized {
		return fmt.Sprintf("%s/%s (synthesized)", env.Category, env.Code)
	}
	return fmt.Sprintf("%s/%s", env.Category, env.Code)
}
