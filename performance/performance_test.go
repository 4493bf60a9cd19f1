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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/stagehand/performance"
	"github.com/jetsetilly/stagehand/test"
)

func track(m *performance.Monitor, n int, fps float64, frameTime time.Duration) {
	for range n {
		m.TrackSample(fps, frameTime)
	}
}

func TestAdaptiveDeltaPassthrough(t *testing.T) {
	m := performance.NewMonitor()
	m.SetScene("title", 60)

	// no samples
	test.ExpectEquality(t, m.AdaptiveDelta(0.1), 0.1)

	track(m, performance.MinAdaptiveSamples-1, 60, time.Millisecond)
	for _, dt := range []float64{0.1, 0.0, 1.0 / 60, 0.0333333} {
		test.ExpectEquality(t, m.AdaptiveDelta(dt), dt)
	}
}

func TestAdaptiveDelta(t *testing.T) {
	m := performance.NewMonitor()
	m.SetScene("title", 60)
	track(m, performance.MinAdaptiveSamples, 60, time.Millisecond)

	// blended towards the target frame time but not clamped to it
	dt := m.AdaptiveDelta(0.1)
	test.ExpectApproximate(t, dt, 0.075, 0.0001)

	dt = m.AdaptiveDelta(1.0 / 60)
	test.ExpectApproximate(t, dt, 1.0/60, 0.0001)

	// samples are per scene
	m.SetScene("play", 60)
	test.ExpectEquality(t, m.AdaptiveDelta(0.1), 0.1)
}

func TestAdaptiveDeltaUnconstrained(t *testing.T) {
	m := performance.NewMonitor()
	m.SetScene("title", 0)
	track(m, 100, 500, time.Millisecond)
	test.ExpectEquality(t, m.AdaptiveDelta(0.1), 0.1)
}

func TestSpareTimeNotApplicable(t *testing.T) {
	m := performance.NewMonitor()

	m.SetScene("title", 60)
	test.ExpectFailure(t, m.SpareTimeStats("title").Applicable)
	test.ExpectFailure(t, m.SpareTimeStats("").Applicable)
	test.ExpectFailure(t, m.SpareTimeStats("missing").Applicable)

	m.SetScene("unconstrained", 0)
	for _, n := range []int{0, 1, 50, 2000} {
		track(m, n, 200, 5*time.Millisecond)
		st := m.SpareTimeStats("unconstrained")
		test.ExpectFailure(t, st.Applicable, n)
		test.ExpectEquality(t, st, performance.SpareTime{}, n)
	}
}

func TestSpareTime(t *testing.T) {
	m := performance.NewMonitor()
	m.SetScene("title", 50)
	track(m, 10, 50, 10*time.Millisecond)

	st := m.SpareTimeStats("title")
	test.DemandSuccess(t, st.Applicable)
	test.ExpectEquality(t, st.TargetFrameTime, 20*time.Millisecond)
	test.ExpectEquality(t, st.AverageFrameTime, 10*time.Millisecond)
	test.ExpectEquality(t, st.AverageSpareTime, 10*time.Millisecond)
	test.ExpectApproximate(t, st.SpareCapacity, 50.0, 0.01)
	test.ExpectApproximate(t, st.TicksPerTarget, 2.0, 0.01)

	global := m.SpareTimeStats("")
	test.ExpectSuccess(t, global.Applicable)
}

func TestGrades(t *testing.T) {
	test.ExpectEquality(t, performance.GradeFPS(120, 0), performance.Excellent)
	test.ExpectEquality(t, performance.GradeFPS(60, 0), performance.VeryGood)
	test.ExpectEquality(t, performance.GradeFPS(59, 0), performance.Good)
	test.ExpectEquality(t, performance.GradeFPS(30, 0), performance.Fair)
	test.ExpectEquality(t, performance.GradeFPS(20, 0), performance.Poor)
	test.ExpectEquality(t, performance.GradeFPS(10, 0), performance.VeryPoor)

	// 30fps is excellent if that is what was requested
	test.ExpectEquality(t, performance.GradeFPS(30, 30), performance.Excellent)
	test.ExpectEquality(t, performance.GradeFPS(30, 60), performance.Fair)
	test.ExpectEquality(t, performance.GradeFPS(54, 60), performance.VeryGood)
	test.ExpectEquality(t, performance.GradeFPS(10, 60), performance.VeryPoor)

	test.ExpectEquality(t, performance.Excellent.String(), "Excellent")
	test.ExpectEquality(t, performance.VeryPoor.String(), "Very Poor")

	m := performance.NewMonitor()
	m.SetScene("title", 30)
	test.ExpectEquality(t, m.PerformanceGrade([]float64{29, 30, 30, 31}), performance.Excellent)
	test.ExpectEquality(t, m.PerformanceGrade(nil), performance.VeryPoor)
}

func TestReports(t *testing.T) {
	m := performance.NewMonitor()

	// samples tracked before a scene is active
	track(m, 5, 10, time.Millisecond)

	m.SetScene("title", 60)
	track(m, 19, 60, time.Millisecond)

	// an extreme outlier does not affect the median
	m.TrackSample(1000, time.Millisecond)

	m.SetScene("play", 30)
	track(m, 3, 30, time.Millisecond)

	reps := m.PerSceneReport()
	test.DemandEquality(t, len(reps), 2)

	test.ExpectEquality(t, reps[0].Scene, "title")
	test.ExpectEquality(t, reps[0].Samples, 20)
	test.ExpectEquality(t, reps[0].Min, 60.0)
	test.ExpectEquality(t, reps[0].Max, 1000.0)
	test.ExpectEquality(t, reps[0].Median, 60.0)
	test.ExpectApproximate(t, reps[0].Average, 107.0, 0.01)
	test.ExpectEquality(t, reps[0].Grade, performance.Excellent)

	test.ExpectEquality(t, reps[1].Scene, "play")
	test.ExpectEquality(t, reps[1].Target, 30)
	test.ExpectEquality(t, reps[1].Grade, performance.Excellent)

	all := m.ShutdownReport()
	test.ExpectEquality(t, all.Samples, 28)
	test.ExpectEquality(t, all.Min, 10.0)

	w := &strings.Builder{}
	test.ExpectSuccess(t, m.WriteReport(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "title: 20 samples"))
	test.ExpectFailure(t, strings.Contains(w.String(), performance.UnknownScene))

	m.Reset()
	test.ExpectEquality(t, len(m.PerSceneReport()), 0)
	test.ExpectEquality(t, m.Samples(""), 0)
	test.ExpectEquality(t, m.Scene(), performance.UnknownScene)
}

func TestHistogram(t *testing.T) {
	m := performance.NewMonitor()
	m.SetScene("title", 60)
	m.TrackSample(59.6, time.Millisecond)
	m.TrackSample(60.4, time.Millisecond)
	m.TrackSample(30.1, time.Millisecond)

	h := m.Histogram("title")
	test.ExpectEquality(t, h[60], 2)
	test.ExpectEquality(t, h[30], 1)
	test.ExpectEquality(t, len(m.Histogram("missing")), 0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)

	var ran bool
	err = performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}
