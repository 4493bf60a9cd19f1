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

package demo_test

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/jetsetilly/stagehand/demo"
	"github.com/jetsetilly/stagehand/display"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/notifications"
	"github.com/jetsetilly/stagehand/performance"
	"github.com/jetsetilly/stagehand/registry"
	"github.com/jetsetilly/stagehand/scene"
	"github.com/jetsetilly/stagehand/stage"
	"github.com/jetsetilly/stagehand/test"
	"github.com/jetsetilly/stagehand/voice"
)

var bounds = image.Rect(0, 0, 320, 240)

func dispatch(t *testing.T, s scene.Scene, code events.Code, payload any) {
	t.Helper()
	h, ok := s.Resolve(code.String())
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, h(events.Envelope{Code: code, Payload: payload}))
}

// the box is the only interactable node in the Play scene
func boxRect(t *testing.T, p *demo.Play) image.Rectangle {
	t.Helper()
	targets := p.Targets()
	test.DemandEquality(t, len(targets), 1)
	return targets[0].Bounds()
}

func TestPlayMovement(t *testing.T) {
	d := demo.New(&fonts.Builtin{}, bounds)
	test.DemandSuccess(t, d.Play.Setup())

	start := d.Play.Position()
	test.ExpectEquality(t, start, image.Pt(144, 104))
	test.ExpectEquality(t, d.Play.Size(), 32)

	dispatch(t, d.Play, events.KeyDown, events.Key{Key: "Right"})
	test.ExpectEquality(t, d.Play.Position(), image.Pt(184, 104))

	// the box hasn't moved until the tween has run
	d.Play.DtTick(0)
	d.Play.Update()
	test.ExpectEquality(t, boxRect(t, d.Play).Min, start)

	d.Play.DtTick(1.0)
	d.Play.Update()
	test.ExpectEquality(t, boxRect(t, d.Play).Min, image.Pt(184, 104))

	// the box never leaves the screen
	for range 10 {
		dispatch(t, d.Play, events.KeyDown, events.Key{Key: "Up"})
	}
	test.ExpectEquality(t, d.Play.Position(), image.Pt(184, 0))

	// joystick hat moves diagonally
	dispatch(t, d.Play, events.JoyHatMotion, events.JoyHat{Value: 0x04 | 0x08})
	test.ExpectEquality(t, d.Play.Position(), image.Pt(144, 40))

	d.Play.DtTick(1.0)
	d.Play.Update()
	test.ExpectEquality(t, boxRect(t, d.Play), image.Rect(144, 40, 176, 72))
}

func TestPlayResize(t *testing.T) {
	d := demo.New(&fonts.Builtin{}, bounds)
	test.DemandSuccess(t, d.Play.Setup())

	dispatch(t, d.Play, events.MouseScrollUp, events.MouseScroll{Amount: 2})
	test.ExpectEquality(t, d.Play.Size(), 48)

	dispatch(t, d.Play, events.MouseScrollDown, events.MouseScroll{Amount: 100})
	test.ExpectEquality(t, d.Play.Size(), 8)

	dispatch(t, d.Play, events.MouseScrollUp, events.MouseScroll{Amount: 100})
	test.ExpectEquality(t, d.Play.Size(), 128)

	d.Play.DtTick(0.1)
	d.Play.Update()
	test.ExpectEquality(t, boxRect(t, d.Play).Dx(), 128)
}

func TestPlayNext(t *testing.T) {
	d := demo.New(&fonts.Builtin{}, bounds)
	test.DemandSuccess(t, d.Play.Setup())

	dispatch(t, d.Play, events.KeyDown, events.Key{Key: "Escape"})
	next, ok := d.Play.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, next == scene.Scene(d.Title))

	dispatch(t, d.Play, events.KeyDown, events.Key{Key: "Q"})
	next, ok = d.Play.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, next == nil)
}

func TestTitleRender(t *testing.T) {
	d := demo.New(&fonts.Builtin{}, bounds)
	test.DemandSuccess(t, d.Title.Setup())

	dst := image.NewRGBA(bounds)
	d.Title.DtTick(0)
	d.Title.Update()
	regions := d.Title.Render(dst)
	test.DemandEquality(t, len(regions), 1)
	test.ExpectEquality(t, regions[0], bounds)

	// background in the corner and some text somewhere in the top half
	bg := dst.RGBAAt(0, 0)
	test.ExpectEquality(t, bg, color.RGBA{R: 0x10, G: 0x10, B: 0x30, A: 0xff})

	var drawn bool
	for y := 0; y < bounds.Dy()/2 && !drawn; y++ {
		for x := 0; x < bounds.Dx(); x++ {
			if dst.RGBAAt(x, y) != bg {
				drawn = true
				break
			}
		}
	}
	test.ExpectSuccess(t, drawn)

	// the start prompt pulses so the next frame redraws a small area only
	d.Title.DtTick(0.3)
	d.Title.Update()
	regions = d.Title.Render(dst)
	test.DemandEquality(t, len(regions) > 0, true)
	for _, r := range regions {
		test.ExpectSuccess(t, r.Dy() < bounds.Dy()/2)
	}
}

func TestTitleMouse(t *testing.T) {
	d := demo.New(&fonts.Builtin{}, bounds)
	test.DemandSuccess(t, d.Title.Setup())

	targets := d.Title.Targets()
	test.DemandEquality(t, len(targets), 1)
	test.ExpectEquality(t, targets[0].TargetName(), "start")

	// clicking outside the prompt does nothing
	dispatch(t, d.Title, events.MouseButtonDown, events.MouseButtonEvent{X: 0, Y: 0, Button: events.MouseButtonLeft})
	_, ok := d.Title.Next()
	test.ExpectFailure(t, ok)

	c := targets[0].Bounds().Min.Add(image.Pt(1, 1))
	dispatch(t, d.Title, events.MouseEnter, events.MouseCrossing{Target: "start", X: c.X, Y: c.Y})
	dispatch(t, d.Title, events.MouseButtonDown, events.MouseButtonEvent{X: c.X, Y: c.Y, Button: events.MouseButtonLeft})
	next, ok := d.Title.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, next == scene.Scene(d.Play))
}

type switches struct {
	notices []string
}

func (s *switches) Notify(notice notifications.Notice, detail string) error {
	if notice == notifications.NotifySceneSwitch {
		s.notices = append(s.notices, detail)
	}
	return nil
}

func TestRunDemo(t *testing.T) {
	p, err := stage.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	hl := display.NewHeadless(bounds.Dx(), bounds.Dy())
	sw := &switches{}
	st, err := stage.NewStage(stage.Config{
		Prefs:    p,
		Display:  hl,
		Registry: registry.NewRegistry(),
		Pacing:   performance.NewMonitor(),
		Notify:   sw,
	})
	test.DemandSuccess(t, err)

	d := demo.New(st.Fonts(), bounds)

	hl.Script(events.RawEvent{Code: events.KeyDown, Payload: events.Key{Key: "Return"}})
	hl.Script()
	hl.Script(events.RawEvent{Code: events.KeyDown, Payload: events.Key{Key: "Right"}})
	hl.Script(events.RawEvent{Code: events.KeyDown, Payload: events.Key{Key: "Q"}})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	test.ExpectSuccess(t, st.Run(ctx, d.First()))

	test.ExpectSuccess(t, ctx.Err() == nil)
	test.ExpectSuccess(t, st.Current() == nil)
	test.ExpectEquality(t, d.Play.Position(), image.Pt(184, 104))
	test.ExpectEquality(t, hl.Title(), "Play v1")
	test.ExpectEquality(t, len(sw.notices) >= 2, true)
}

type fakeSwitcher struct {
	current  scene.Scene
	switched []scene.Scene
	quit     bool
}

func (f *fakeSwitcher) Current() scene.Scene {
	return f.current
}

func (f *fakeSwitcher) RequestSwitch(next scene.Scene) {
	f.switched = append(f.switched, next)
	f.current = next
}

func (f *fakeSwitcher) Quit() {
	f.quit = true
}

func TestVoiceActions(t *testing.T) {
	d := demo.New(&fonts.Builtin{}, bounds)
	sw := &fakeSwitcher{current: d.Title}

	l := voice.NewListener(nil, voice.NewScriptedRecognizer(), voice.DefaultConfig(), nil)
	test.DemandSuccess(t, demo.DefaultBindings().Apply(l, d.VoiceActions(sw)))
	test.ExpectSuccess(t, slices.Contains(l.Commands(), "go back"))

	// back from the title does nothing
	test.ExpectSuccess(t, l.ProcessCommand("go back"))
	test.ExpectEquality(t, len(sw.switched), 0)

	test.ExpectSuccess(t, l.ProcessCommand("next scene please"))
	test.DemandEquality(t, len(sw.switched), 1)
	test.ExpectSuccess(t, sw.switched[0] == scene.Scene(d.Play))

	test.ExpectSuccess(t, l.ProcessCommand("back"))
	test.DemandEquality(t, len(sw.switched), 2)
	test.ExpectSuccess(t, sw.switched[1] == scene.Scene(d.Title))

	test.ExpectFailure(t, l.ProcessCommand("hello"))
	test.ExpectFailure(t, sw.quit)
	test.ExpectSuccess(t, l.ProcessCommand("exit"))
	test.ExpectSuccess(t, sw.quit)
}
