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
	"context"
	"fmt"
	"image"
	"image/draw"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/devices"
	"github.com/jetsetilly/stagehand/display"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/logger"
	"github.com/jetsetilly/stagehand/notifications"
	"github.com/jetsetilly/stagehand/performance"
	"github.com/jetsetilly/stagehand/registry"
	"github.com/jetsetilly/stagehand/resources"
	"github.com/jetsetilly/stagehand/scene"
)

// Config collates the collaborators of a Stage. Prefs and Display are
// required.
type Config struct {
	Prefs   *Preferences
	Display display.Provider

	// if Input is nil and Display implements display.Input then the display
	// is used as the input source
	Input display.Input

	// defaults to registry.Default
	Registry *registry.Registry

	// passed to the joystick and font managers. both can be nil
	JoystickInfo devices.JoystickInfo
	Fonts        fonts.Provider

	// snapshots of outgoing scenes are saved as PNG files if Snapshots is
	// not nil
	Snapshots resources.Provider

	Notify notifications.Notify

	// functions sent on the dispatch channel are run on the frame loop's
	// goroutine at the start of the event stage of each frame
	Dispatch <-chan func()

	// defaults to performance.Pacing()
	Pacing *performance.Monitor
}

// Stage is the scene manager.
type Stage struct {
	prefs   *Preferences
	display display.Provider
	input   display.Input

	reg        *registry.Registry
	classifier *events.Classifier
	router     *devices.Router

	keyboard  *devices.Keyboard
	mouse     *devices.Mouse
	joysticks *devices.Joysticks
	midi      *devices.Midi
	fonts     *devices.Fonts
	audio     *devices.Audio

	// handlers for events that are not handled by the device managers. the
	// chain is the stage handlers followed by the active scene
	handlers registry.Handlers
	chain    registry.ProxyChain

	current scene.Scene

	pending    scene.Scene
	hasPending bool

	quit atomic.Bool

	snapshots resources.Provider
	snapshot  *image.RGBA
	notify    notifications.Notify
	dispatch  <-chan func()

	pacing  *performance.Monitor
	limiter *Limiter
	now     func() time.Time

	lastTick time.Time

	// events created by the stage and dispatched on the next frame
	injected []events.RawEvent

	telemetryStart  time.Time
	telemetryFrames int
}

// NewStage is the preferred method of initialisation for the Stage type. The
// device managers are defined in and constructed by the registry.
func NewStage(cfg Config) (*Stage, error) {
	if cfg.Prefs == nil {
		return nil, curated.Errorf(registry.ConfigurationError, fmt.Errorf("stage: no preferences"))
	}
	if cfg.Display == nil {
		return nil, curated.Errorf(registry.ConfigurationError, fmt.Errorf("stage: no display"))
	}

	s := &Stage{
		prefs:      cfg.Prefs,
		display:    cfg.Display,
		input:      cfg.Input,
		reg:        cfg.Registry,
		classifier: events.NewClassifier(events.HostCodes),
		router:     devices.NewRouter(),
		handlers:   make(registry.Handlers),
		snapshots:  cfg.Snapshots,
		notify:     cfg.Notify,
		dispatch:   cfg.Dispatch,
		pacing:     cfg.Pacing,
		limiter:    NewLimiter(),
		now:        time.Now,
	}

	if s.input == nil {
		if in, ok := cfg.Display.(display.Input); ok {
			s.input = in
		}
	}
	if s.reg == nil {
		s.reg = registry.Default
	}
	if s.pacing == nil {
		s.pacing = performance.Pacing()
	}

	s.reg.SetStrict(s.prefs.Strict.Get().(bool))
	if err := devices.Define(s.reg); err != nil {
		return nil, err
	}

	var err error
	if s.keyboard, err = get[*devices.Keyboard](s.reg, devices.KeyboardHandle, s.classifier); err != nil {
		return nil, err
	}
	if s.mouse, err = get[*devices.Mouse](s.reg, devices.MouseHandle, s.classifier); err != nil {
		return nil, err
	}
	if s.joysticks, err = get[*devices.Joysticks](s.reg, devices.JoystickHandle, s.classifier, cfg.JoystickInfo); err != nil {
		return nil, err
	}
	if s.midi, err = get[*devices.Midi](s.reg, devices.MidiHandle); err != nil {
		return nil, err
	}
	if s.fonts, err = get[*devices.Fonts](s.reg, devices.FontHandle, cfg.Fonts); err != nil {
		return nil, err
	}
	if s.audio, err = get[*devices.Audio](s.reg, devices.AudioHandle); err != nil {
		return nil, err
	}

	s.router.Route(s.keyboard, events.CategoryKeyboard)
	s.router.Route(s.mouse, events.CategoryMouse)
	s.router.Route(s.joysticks, events.CategoryJoystick)
	s.router.Route(s.midi, events.CategoryMidi)
	s.router.Route(s.audio, events.CategoryAudio)
	s.router.SetFallback(s)

	quit := func(_ events.Envelope) error {
		s.Quit()
		return nil
	}
	s.handlers[events.Quit.String()] = quit
	s.handlers[events.WindowClose.String()] = quit
	s.handlers[events.FrameTick.String()] = func(env events.Envelope) error {
		if ev, ok := env.Payload.(events.FrameTickEvent); ok {
			logger.Logf(logger.Allow, "telemetry", "%s: %.2f fps", ev.Scene, ev.FPS)
		}
		return nil
	}

	s.rebuildChains()

	return s, nil
}

func get[T registry.Manager](reg *registry.Registry, handle registry.Handle, args ...any) (T, error) {
	var zero T
	m, err := reg.Get(handle, args...)
	if err != nil {
		return zero, err
	}
	t, ok := m.(T)
	if !ok {
		return zero, curated.Errorf(registry.ConfigurationError, fmt.Errorf("%s is not a %T", handle, zero))
	}
	return t, nil
}

// Handle adds a stage handler for the named event. Stage handlers are
// consulted before the active scene.
func (s *Stage) Handle(name string, h registry.Handler) {
	s.handlers[name] = h
}

// Resolve implements the registry.Proxy interface.
func (s *Stage) Resolve(name string) (registry.Handler, bool) {
	return s.chain.Resolve(name)
}

// Chain implements the registry.Manager interface.
func (s *Stage) Chain() *registry.ProxyChain {
	return &s.chain
}

// the chain of every device manager and of the stage itself is the stage's
// handlers followed by the active scene
func (s *Stage) rebuildChains() {
	proxies := []registry.Proxy{s.handlers}
	if s.current != nil {
		proxies = append(proxies, s.current)
	}

	s.chain.Set(proxies...)
	for _, m := range []registry.Manager{s.keyboard, s.mouse, s.joysticks, s.midi, s.fonts, s.audio} {
		m.Chain().Set(proxies...)
	}

	if s.current != nil {
		s.mouse.SetTargets(s.current)
	} else {
		s.mouse.SetTargets(nil)
	}
}

// Current returns the active scene. Returns nil if there is no active scene.
func (s *Stage) Current() scene.Scene {
	return s.current
}

// Keyboard returns the keyboard manager.
func (s *Stage) Keyboard() *devices.Keyboard {
	return s.keyboard
}

// Mouse returns the mouse manager.
func (s *Stage) Mouse() *devices.Mouse {
	return s.mouse
}

// Joysticks returns the joystick manager.
func (s *Stage) Joysticks() *devices.Joysticks {
	return s.joysticks
}

// Fonts returns the font manager.
func (s *Stage) Fonts() *devices.Fonts {
	return s.fonts
}

// Audio returns the audio manager.
func (s *Stage) Audio() *devices.Audio {
	return s.audio
}

// Classifier returns the event classifier.
func (s *Stage) Classifier() *events.Classifier {
	return s.classifier
}

// Snapshot returns a copy of the surface as it was when the previous scene
// was deactivated. Returns nil if no scene has been deactivated.
func (s *Stage) Snapshot() *image.RGBA {
	return s.snapshot
}

// Quit causes the frame loop to end after the current frame. It is safe to
// call Quit() from any goroutine.
func (s *Stage) Quit() {
	s.quit.Store(true)
}

// RequestSwitch changes the active scene at the end of the current frame. A
// nil scene ends the frame loop.
func (s *Stage) RequestSwitch(next scene.Scene) {
	s.pending = next
	s.hasPending = true
}

// Inject adds an event to the list of events dispatched on the next frame.
func (s *Stage) Inject(ev events.RawEvent) {
	s.injected = append(s.injected, ev)
}

func (s *Stage) noticef(notice notifications.Notice, detail string) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Notify(notice, detail); err != nil {
		logger.Log(logger.Allow, "stage", err)
	}
}

// SwitchTo changes the active scene immediately. Switching to the scene that
// is already active does nothing. A nil scene ends the frame loop.
func (s *Stage) SwitchTo(next scene.Scene) error {
	if next == s.current {
		return nil
	}

	if s.current != nil {
		s.takeSnapshot()
		s.current.Cleanup()
	}

	if next != nil {
		if err := next.Setup(); err != nil {
			s.current = nil
			s.rebuildChains()
			return curated.Errorf(CallbackFailure, fmt.Errorf("%s: setup: %w", next.Name(), err))
		}

		next.ResetDt()
		next.MarkDirty()

		s.display.SetTitle(fmt.Sprintf("%s %s", next.Name(), next.Version()))

		if next.RequestedFPS() == 0 {
			next.SetTargetFPS(s.prefs.FPS.Get().(int))
		} else {
			next.SetTargetFPS(next.RequestedFPS())
		}

		surface := s.display.CurrentSurface()
		draw.Draw(surface, surface.Bounds(), next.Background(), surface.Bounds().Min, draw.Src)

		s.pacing.SetScene(next.Name(), next.TargetFPS())
		s.noticef(notifications.NotifySceneSwitch, next.Name())
		logger.Logf(logger.Allow, "stage", "switched to %s %s", next.Name(), next.Version())
	} else {
		s.pacing.SetScene(performance.UnknownScene, s.prefs.FPS.Get().(int))
	}

	s.current = next
	s.rebuildChains()

	return nil
}

func (s *Stage) takeSnapshot() {
	surface := s.display.CurrentSurface()
	b := surface.Bounds()
	s.snapshot = image.NewRGBA(b)
	draw.Draw(s.snapshot, b, surface, b.Min, draw.Src)

	if s.snapshots == nil {
		return
	}

	fn, err := saveSnapshot(s.snapshots, s.current.Name(), s.snapshot)
	if err != nil {
		logger.Log(logger.Allow, "stage", err)
		return
	}
	s.noticef(notifications.NotifySnapshot, fn)
}

// Run the frame loop with the first scene. Returns when there is no active
// scene, Quit() has been called or the context is cancelled. The active scene
// is always deactivated before Run() returns.
func (s *Stage) Run(ctx context.Context, first scene.Scene) (rerr error) {
	s.quit.Store(false)
	s.pacing.SetTelemetryInterval(s.telemetryInterval())

	defer func() {
		if err := s.SwitchTo(nil); err != nil && rerr == nil {
			rerr = err
		}
		s.noticef(notifications.NotifyShutdown, "")
	}()

	if err := s.SwitchTo(first); err != nil {
		return err
	}

	s.lastTick = time.Time{}
	s.telemetryStart = time.Time{}

	for s.current != nil && !s.quit.Load() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := s.tick(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Stage) telemetryInterval() time.Duration {
	return time.Duration(s.prefs.Telemetry.Get().(float64) * float64(time.Second))
}

func (s *Stage) tick() error {
	start := s.now()

	// step 1: delta time
	var elapsed float64
	if !s.lastTick.IsZero() {
		elapsed = start.Sub(s.lastTick).Seconds()
	}
	s.lastTick = start

	dt := s.pacing.AdaptiveDelta(elapsed) * s.prefs.DeltaScale.Get().(float64)
	s.current.DtTick(dt)

	// step 2: events
	if err := s.drainEvents(); err != nil {
		return err
	}

	// the active scene may have been ended by an event
	if s.current == nil {
		return nil
	}

	// steps 3 to 5: update, render and present
	s.current.Update()

	surface := s.display.CurrentSurface()
	changed := s.current.Render(surface)
	if s.prefs.Update.Get().(string) == UpdateAll {
		changed = []image.Rectangle{surface.Bounds()}
	}
	if err := s.display.Present(changed); err != nil {
		logger.Log(logger.Allow, "stage", err)
	}

	frameTime := s.now().Sub(start)

	// step 6: pacing
	s.limiter.Wait(s.current.TargetFPS())

	end := s.now()
	if period := end.Sub(start); period > 0 {
		s.pacing.TrackSample(1/period.Seconds(), frameTime)
	}

	// step 7: telemetry
	s.telemetry(end)

	// step 8: scene switch
	if s.hasPending {
		next := s.pending
		s.pending = nil
		s.hasPending = false
		return s.SwitchTo(next)
	}
	if next, ok := s.current.Next(); ok {
		return s.SwitchTo(next)
	}

	return nil
}

func (s *Stage) drainEvents() error {
	if s.dispatch != nil {
		for done := false; !done; {
			select {
			case f := <-s.dispatch:
				if err := protect(func() error { f(); return nil }); err != nil {
					logger.Log(logger.Allow, "stage", curated.Errorf(CallbackFailure, err))
				}
			default:
				done = true
			}
		}
	}

	raw := s.injected
	s.injected = nil
	if s.input != nil {
		raw = append(raw, s.input.PollEvents()...)
	}

	for _, ev := range raw {
		env := s.classifier.Classify(ev)
		err := protect(func() error { return s.router.Dispatch(env) })
		if err == nil {
			continue
		}

		if curated.Has(err, registry.UnhandledEvent) {
			if s.prefs.Strict.Get().(bool) {
				return err
			}
			logger.Log(logger.Allow, "stage", err)
			continue
		}

		logger.Log(logger.Allow, "stage", curated.Errorf(CallbackFailure, err))
	}

	return nil
}

// protect runs f and returns a panic in f as an error.
func protect(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return f()
}

func (s *Stage) telemetry(now time.Time) {
	interval := s.telemetryInterval()
	if interval <= 0 {
		return
	}

	if s.telemetryStart.IsZero() {
		s.telemetryStart = now
		s.telemetryFrames = 0
		return
	}

	s.telemetryFrames++
	if d := now.Sub(s.telemetryStart); d >= interval {
		s.Inject(events.RawEvent{
			Code: events.FrameTick,
			Payload: events.FrameTickEvent{
				Scene: s.current.Name(),
				FPS:   float64(s.telemetryFrames) / d.Seconds(),
			},
		})
		s.telemetryStart = now
		s.telemetryFrames = 0
	}
}
