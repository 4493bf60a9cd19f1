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
	"io"
	"slices"
	"strings"
)

// trimming is only applied if there are at least this many samples
const minTrimSamples = 20

// the fraction of samples removed from each end of the sorted samples
const trimFraction = 0.05

// trim returns a sorted copy of the samples with the outliers removed.
func trim(samples []float64) []float64 {
	s := slices.Clone(samples)
	slices.Sort(s)
	if len(s) < minTrimSamples {
		return s
	}
	n := int(float64(len(s)) * trimFraction)
	return s[n : len(s)-n]
}

// median of sorted samples.
func median(sorted []float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	m := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[m-1] + sorted[m]) / 2
	}
	return sorted[m]
}

// Report summarises the frame rate of a scene or of the whole session.
type Report struct {
	Scene   string
	Target  int
	Samples int

	Min     float64
	Max     float64
	Median  float64
	Average float64

	Grade Grade
}

func (r Report) String() string {
	if r.Samples == 0 {
		return fmt.Sprintf("%s: no samples", r.Scene)
	}

	target := "unconstrained"
	if r.Target > 0 {
		target = fmt.Sprintf("target %d", r.Target)
	}

	return fmt.Sprintf("%s: %d samples (%s) min %.1f max %.1f median %.1f average %.1f: %s",
		r.Scene, r.Samples, target, r.Min, r.Max, r.Median, r.Average, r.Grade)
}

func (h *history) report(name string) Report {
	r := Report{
		Scene:   name,
		Target:  h.target,
		Samples: h.fps.len(),
	}
	if r.Samples == 0 {
		return r
	}

	v := h.fps.values()
	r.Min = slices.Min(v)
	r.Max = slices.Max(v)
	r.Average = h.fps.mean()
	r.Median = median(trim(v))
	r.Grade = GradeFPS(r.Median, h.target)

	return r
}

// ShutdownReport summarises the frame rate across all scenes.
func (m *Monitor) ShutdownReport() Report {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.global.report("All scenes")
}

// PerSceneReport summarises the frame rate of each scene in the order the
// scenes were first seen. Scenes with no samples are not included and nor
// is the UnknownScene.
func (m *Monitor) PerSceneReport() []Report {
	m.crit.Lock()
	defer m.crit.Unlock()

	var reps []Report
	for _, name := range m.order {
		if name == UnknownScene {
			continue
		}
		h := m.scenes[name]
		if h.fps.len() == 0 {
			continue
		}
		reps = append(reps, h.report(name))
	}
	return reps
}

// WriteReport writes the shutdown report followed by the per scene reports
// and the spare time of each constrained scene.
func (m *Monitor) WriteReport(w io.Writer) error {
	var b strings.Builder

	b.WriteString(m.ShutdownReport().String())
	b.WriteString("\n")
	for _, r := range m.PerSceneReport() {
		b.WriteString("  ")
		b.WriteString(r.String())
		b.WriteString("\n")
		if st := m.SpareTimeStats(r.Scene); st.Applicable {
			b.WriteString("    ")
			b.WriteString(st.String())
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
