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

// Grade is a qualitative description of the achieved frame rate.
type Grade int

// List of valid Grade values.
const (
	VeryPoor Grade = iota
	Poor
	Fair
	Good
	VeryGood
	Excellent
)

func (g Grade) String() string {
	switch g {
	case VeryPoor:
		return "Very Poor"
	case Poor:
		return "Poor"
	case Fair:
		return "Fair"
	case Good:
		return "Good"
	case VeryGood:
		return "Very Good"
	case Excellent:
		return "Excellent"
	}
	return "Unknown"
}

// unconstrained frame rates are graded by absolute value
var absoluteTiers = []struct {
	fps   float64
	grade Grade
}{
	{120, Excellent},
	{60, VeryGood},
	{45, Good},
	{30, Fair},
	{15, Poor},
}

// constrained frame rates are graded by the ratio of achieved to target
var ratioTiers = []struct {
	ratio float64
	grade Grade
}{
	{0.95, Excellent},
	{0.85, VeryGood},
	{0.70, Good},
	{0.50, Fair},
	{0.25, Poor},
}

// GradeFPS grades a frame rate. If target is zero the frame rate is graded by
// its absolute value, otherwise it is graded by how close it is to the target.
func GradeFPS(fps float64, target int) Grade {
	if target <= 0 {
		for _, t := range absoluteTiers {
			if fps >= t.fps {
				return t.grade
			}
		}
		return VeryPoor
	}

	r := fps / float64(target)
	for _, t := range ratioTiers {
		if r >= t.ratio {
			return t.grade
		}
	}
	return VeryPoor
}

// PerformanceGrade grades the median of the samples against the current
// target frame rate. An empty list of samples is graded VeryPoor.
func (m *Monitor) PerformanceGrade(samples []float64) Grade {
	m.crit.Lock()
	target := m.targetFPS
	m.crit.Unlock()

	if len(samples) == 0 {
		return VeryPoor
	}
	return GradeFPS(median(trim(samples)), target)
}
