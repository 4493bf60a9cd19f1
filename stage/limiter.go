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

import "time"

// Limiter limits the rate at which the frame loop runs. The time spent
// sleeping is adjusted by the amount the previous sleep overran.
type Limiter struct {
	now   func() time.Time
	sleep func(time.Duration)

	last   time.Time
	adjust time.Duration
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter() *Limiter {
	return &Limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Wait until a frame at the specified rate has elapsed since the previous
// call to Wait(). A rate of zero never waits.
func (lim *Limiter) Wait(fps int) {
	now := lim.now()

	if fps <= 0 || lim.last.IsZero() {
		lim.last = now
		lim.adjust = 0
		return
	}

	period := time.Second / time.Duration(fps)
	remaining := period - now.Sub(lim.last) + lim.adjust
	if remaining <= 0 {
		// the frame took longer than the period
		lim.last = now
		lim.adjust = 0
		return
	}

	lim.sleep(remaining)
	after := lim.now()

	lim.adjust = remaining - after.Sub(now)
	if lim.adjust < -period {
		lim.adjust = -period
	}
	lim.last = after
}
