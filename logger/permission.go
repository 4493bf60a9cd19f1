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

package logger

import "time"

// Permission is consulted by Log() and Logf() before an entry is made. The
// caller can veto its own entries by returning false.
type Permission interface {
	AllowLogging() bool
}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Allow permits every entry. The logger does not consult it.
var Allow Permission = always{}

// Throttle is a Permission that allows at most one entry for every Interval.
// It is for callers that would otherwise log on every frame.
//
// Throttle is not safe for concurrent use. The owner is expected to hold its
// own lock while logging.
type Throttle struct {
	Interval time.Duration

	// the clock used to time the interval. time.Now() if nil
	Now func() time.Time

	last time.Time
}

// AllowLogging implements the Permission interface.
func (t *Throttle) AllowLogging() bool {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}

	n := now()
	if !t.last.IsZero() && n.Sub(t.last) < t.Interval {
		return false
	}
	t.last = n
	return true
}

// Reset the throttle so that the next entry is allowed.
func (t *Throttle) Reset() {
	t.last = time.Time{}
}
