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

package performance

import (
	"fmt"
	"math"
	"time"
)

// SpareTime describes how much of the frame budget is unused.
type SpareTime struct {
	// Applicable is false if the frame rate is unconstrained or if there are
	// no samples. All other fields are zero in that case
	Applicable bool

	TargetFrameTime  time.Duration
	AverageFrameTime time.Duration
	AverageSpareTime time.Duration

	// spare time as a percentage of the target frame time
	SpareCapacity float64

	// the number of frames that could be processed in the time of one target
	// frame
	TicksPerTarget float64
}

func (st SpareTime) String() string {
	if !st.Applicable {
		return "spare time: not applicable"
	}
	return fmt.Sprintf("frame time %.2fms of %.2fms (%.1f%% spare, %.1fx)",
		float64(st.AverageFrameTime.Microseconds())/1000,
		float64(st.TargetFrameTime.Microseconds())/1000,
		st.SpareCapacity, st.TicksPerTarget)
}

// SpareTimeStats returns the spare time for the named scene. An empty name
// returns the spare time for all scenes.
func (m *Monitor) SpareTimeStats(scene string) SpareTime {
	m.crit.Lock()
	defer m.crit.Unlock()

	h := m.lookup(scene)
	if h == nil || h.target <= 0 || h.frameTimes.len() == 0 {
		return SpareTime{}
	}

	target := 1.0 / float64(h.target)
	avg := h.frameTimes.mean()

	st := SpareTime{
		Applicable:       true,
		TargetFrameTime:  seconds(target),
		AverageFrameTime: seconds(avg),
		AverageSpareTime: seconds(target - avg),
		SpareCapacity:    (target - avg) / target * 100,
	}
	if avg > 0 {
		st.TicksPerTarget = target / avg
	}
	return st
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
