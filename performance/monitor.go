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
	"math"
	"sync"
	"time"

	"github.com/jetsetilly/stagehand/logger"
)

// Limits on the number of samples kept for each scene.
const (
	MaxFPSSamples       = 100000
	MaxFrameTimeSamples = 1000
)

// MinAdaptiveSamples is the number of samples required before AdaptiveDelta()
// will adjust the delta time.
const MinAdaptiveSamples = 10

// UnknownScene is the name used for samples tracked when no scene is active.
// Samples for this scene are not included in PerSceneReport().
const UnknownScene = "Unknown"

const (
	// the amount the raw delta time moves towards the target frame time
	blendFactor = 0.3

	// adjustments smaller than this are not logged
	logThreshold = 0.001

	// how often adjustments are logged when no telemetry interval has been
	// specified
	defaultLogInterval = time.Second
)

type history struct {
	fps        window
	frameTimes window

	// number of samples for each rounded frame rate
	histogram map[int]int

	// the target frame rate most recently set for the scene
	target int
}

func newHistory() *history {
	return &history{
		fps:        newWindow(MaxFPSSamples),
		frameTimes: newWindow(MaxFrameTimeSamples),
		histogram:  make(map[int]int),
	}
}

func (h *history) track(fps float64, frameTime time.Duration, target int) {
	h.fps.push(fps)
	h.histogram[int(math.Round(fps))]++

	// spare time is meaningless when the frame rate is unconstrained
	if target > 0 {
		h.frameTimes.push(frameTime.Seconds())
	}
}

// Monitor tracks frame pacing. The zero value is not usable. Use NewMonitor()
// or the shared instance returned by Pacing().
type Monitor struct {
	crit sync.Mutex

	scene     string
	targetFPS int

	global *history
	scenes map[string]*history

	// scenes in the order they were first seen
	order []string

	// limits the log entries made by AdaptiveDelta()
	gate logger.Throttle
}

var pacing = NewMonitor()

// Pacing returns the Monitor used by the engine.
func Pacing() *Monitor {
	return pacing
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor() *Monitor {
	m := &Monitor{gate: logger.Throttle{Interval: defaultLogInterval}}
	m.Reset()
	return m
}

// Reset forgets all samples.
func (m *Monitor) Reset() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.scene = UnknownScene
	m.global = newHistory()
	m.scenes = make(map[string]*history)
	m.order = m.order[:0]
	m.gate.Reset()
}

// SetScene changes the scene that samples are tracked against.
func (m *Monitor) SetScene(name string, targetFPS int) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.scene = name
	m.targetFPS = targetFPS
	m.current().target = targetFPS
	m.global.target = targetFPS
}

// Scene returns the name of the scene samples are tracked against.
func (m *Monitor) Scene() string {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.scene
}

// SetTelemetryInterval sets the minimum period between log entries about
// delta time adjustments.
func (m *Monitor) SetTelemetryInterval(interval time.Duration) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if interval <= 0 {
		interval = defaultLogInterval
	}
	m.gate.Interval = interval
}

// current must be called with the lock held.
func (m *Monitor) current() *history {
	h, ok := m.scenes[m.scene]
	if !ok {
		h = newHistory()
		h.target = m.targetFPS
		m.scenes[m.scene] = h
		m.order = append(m.order, m.scene)
	}
	return h
}

// lookup must be called with the lock held. an empty name returns the global
// history.
func (m *Monitor) lookup(scene string) *history {
	if scene == "" {
		return m.global
	}
	return m.scenes[scene]
}

// TrackSample adds the measured frame rate and frame processing time to the
// history of the current scene.
func (m *Monitor) TrackSample(fps float64, frameTime time.Duration) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.current().track(fps, frameTime, m.targetFPS)
	m.global.track(fps, frameTime, m.targetFPS)
}

// Samples returns the number of frame rate samples for the named scene. An
// empty name returns the number of samples for all scenes.
func (m *Monitor) Samples(scene string) int {
	m.crit.Lock()
	defer m.crit.Unlock()
	h := m.lookup(scene)
	if h == nil {
		return 0
	}
	return h.fps.len()
}

// Histogram returns a copy of the frame rate histogram for the named scene.
// Frame rates are rounded to the nearest integer. An empty name returns the
// histogram for all scenes.
func (m *Monitor) Histogram(scene string) map[int]int {
	m.crit.Lock()
	defer m.crit.Unlock()
	c := make(map[int]int)
	if h := m.lookup(scene); h != nil {
		for k, v := range h.histogram {
			c[k] = v
		}
	}
	return c
}

// AdaptiveDelta blends the raw delta time towards the frame time of the
// target frame rate. The raw value is returned unchanged if the frame rate is
// unconstrained or if there are too few samples for the current scene.
func (m *Monitor) AdaptiveDelta(rawDt float64) float64 {
	m.crit.Lock()
	defer m.crit.Unlock()

	h := m.scenes[m.scene]
	if h == nil || h.fps.len() < MinAdaptiveSamples || m.targetFPS <= 0 {
		return rawDt
	}

	target := 1.0 / float64(m.targetFPS)
	dt := rawDt + (target-rawDt)*blendFactor

	if math.Abs(dt-rawDt) > logThreshold {
		logger.Logf(&m.gate, "pacing", "%s: delta adjusted from %.4f to %.4f", m.scene, rawDt, dt)
	}

	return dt
}
