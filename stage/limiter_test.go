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

package stage

import (
	"testing"
	"time"

	"github.com/jetsetilly/stagehand/test"
)

func TestLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var sleeps []time.Duration

	lim := NewLimiter()
	lim.now = func() time.Time { return now }
	lim.sleep = func(d time.Duration) {
		sleeps = append(sleeps, d)

		// every sleep overruns by one millisecond
		now = now.Add(d + time.Millisecond)
	}

	// the first call never sleeps
	lim.Wait(100)
	test.ExpectEquality(t, len(sleeps), 0)

	now = now.Add(4 * time.Millisecond)
	lim.Wait(100)
	test.DemandEquality(t, len(sleeps), 1)
	test.ExpectEquality(t, sleeps[0], 6*time.Millisecond)

	// the overrun is deducted from the next sleep
	now = now.Add(4 * time.Millisecond)
	lim.Wait(100)
	test.DemandEquality(t, len(sleeps), 2)
	test.ExpectEquality(t, sleeps[1], 5*time.Millisecond)

	// a frame longer than the period does not sleep
	now = now.Add(20 * time.Millisecond)
	lim.Wait(100)
	test.ExpectEquality(t, len(sleeps), 2)
}

func TestLimiterUnconstrained(t *testing.T) {
	var slept bool
	lim := NewLimiter()
	lim.sleep = func(_ time.Duration) { slept = true }
	for range 10 {
		lim.Wait(0)
	}
	test.ExpectFailure(t, slept)
}
