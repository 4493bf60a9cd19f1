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

package devices_test

import (
	"errors"
	"image"
	"testing"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/devices"
	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/registry"
	"github.com/jetsetilly/stagehand/test"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// recorder handles every event and remembers the envelopes
type recorder struct {
	envs []events.Envelope
}

func (r *recorder) Resolve(name string) (registry.Handler, bool) {
	return func(env events.Envelope) error {
		r.envs = append(r.envs, env)
		return nil
	}, true
}

func (r *recorder) codes() []events.Code {
	c := make([]events.Code, len(r.envs))
	for i := range r.envs {
		c[i] = r.envs[i].Code
	}
	return c
}

func expectCodes(t *testing.T, r *recorder, expected ...events.Code) {
	t.Helper()
	c := r.codes()
	test.DemandEquality(t, len(c), len(expected))
	for i := range c {
		test.ExpectEquality(t, c[i], expected[i], i)
	}
}

var cl = events.NewClassifier(events.HostCodes)

func TestChordCanonicalisation(t *testing.T) {
	kb := devices.NewKeyboard(cl)
	rec := &recorder{}
	kb.Chain().Set(rec)

	// the key down event has fields that the key up does not
	down := events.Key{Key: "A", Mod: events.KeyModShift, ScanCode: 4, Text: "A"}
	up := events.Key{Key: "A", Mod: events.KeyModShift}
	test.ExpectEquality(t, devices.Canonical(down), devices.Canonical(up))

	test.ExpectSuccess(t, kb.Process(cl.Classify(events.RawEvent{Code: events.KeyDown, Payload: down})))
	test.ExpectSuccess(t, kb.IsHeld(devices.Canonical(up)))

	test.ExpectSuccess(t, kb.Process(cl.Classify(events.RawEvent{Code: events.KeyUp, Payload: up})))
	test.ExpectFailure(t, kb.IsHeld(devices.Canonical(down)))
	test.ExpectEquality(t, len(kb.Held()), 0)

	expectCodes(t, rec, events.KeyDown, events.KeyChord, events.KeyUp, events.KeyChord)

	// chord after the key down contains the key. chord after key up is empty
	c := rec.envs[1].Payload.(events.Chord)
	test.DemandEquality(t, len(c.Keys), 1)
	test.ExpectEquality(t, c.Keys[0], devices.Canonical(up))
	test.ExpectSuccess(t, rec.envs[1].Synthesized)
	test.ExpectEquality(t, len(rec.envs[3].Payload.(events.Chord).Keys), 0)
}

func TestChordOrder(t *testing.T) {
	kb := devices.NewKeyboard(cl)
	rec := &recorder{}
	kb.Chain().Set(rec)

	for _, k := range []string{"Z", "A", "M"} {
		test.ExpectSuccess(t, kb.Process(cl.Classify(events.RawEvent{Code: events.KeyDown, Payload: events.Key{Key: k}})))
	}

	// chord keys are sorted no matter the order they were pressed
	held := kb.Held()
	test.DemandEquality(t, len(held), 3)
	test.ExpectEquality(t, held[0].Key, "A")
	test.ExpectEquality(t, held[1].Key, "M")
	test.ExpectEquality(t, held[2].Key, "Z")

	// repeat events are forwarded but don't create a chord
	rec.envs = rec.envs[:0]
	test.ExpectSuccess(t, kb.Process(cl.Classify(events.RawEvent{Code: events.KeyDown, Payload: events.Key{Key: "A", Repeat: true}})))
	expectCodes(t, rec, events.KeyDown)

	// a synthesized chord sent back to the keyboard is only forwarded
	rec.envs = rec.envs[:0]
	test.ExpectSuccess(t, kb.Process(cl.Synthesize(events.KeyChord, events.Chord{})))
	expectCodes(t, rec, events.KeyChord)

	kb.Reset()
	test.ExpectEquality(t, len(kb.Held()), 0)
}

func TestKeyboardUnhandled(t *testing.T) {
	kb := devices.NewKeyboard(cl)

	// only KEYCHORD is handled. the KEYDOWN is unhandled
	kb.Chain().Set(registry.Handlers{
		"KEYCHORD": func(env events.Envelope) error { return nil },
	})

	err := kb.Process(cl.Classify(events.RawEvent{Code: events.KeyDown, Payload: events.Key{Key: "A"}}))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, registry.UnhandledEvent))

	// the key is still recorded as held
	test.ExpectSuccess(t, kb.IsHeld(events.ChordKey{Key: "A"}))
}

type target struct {
	name string
	r    image.Rectangle
}

func (t target) TargetName() string      { return t.name }
func (t target) Bounds() image.Rectangle { return t.r }

type targets []devices.Target

func (t targets) Targets() []devices.Target { return t }

func motion(x, y int) events.Envelope {
	return cl.Classify(events.RawEvent{Code: events.MouseMotion, Payload: events.MouseMotionEvent{X: x, Y: y}})
}

func button(code events.Code, b events.MouseButton, x, y int) events.Envelope {
	return cl.Classify(events.RawEvent{Code: code, Payload: events.MouseButtonEvent{X: x, Y: y, Button: b}})
}

func TestMouseCrossing(t *testing.T) {
	m := devices.NewMouse(cl)
	rec := &recorder{}
	m.Chain().Set(rec)
	m.SetTargets(targets{target{name: "box", r: image.Rect(10, 10, 20, 20)}})

	test.ExpectSuccess(t, m.Process(motion(0, 0)))
	expectCodes(t, rec, events.MouseMotion)

	rec.envs = rec.envs[:0]
	test.ExpectSuccess(t, m.Process(motion(15, 15)))
	expectCodes(t, rec, events.MouseMotion, events.MouseEnter)
	test.ExpectEquality(t, rec.envs[1].Payload.(events.MouseCrossing).Target, "box")

	// moving inside the target doesn't cause another enter
	rec.envs = rec.envs[:0]
	test.ExpectSuccess(t, m.Process(motion(16, 16)))
	expectCodes(t, rec, events.MouseMotion)

	rec.envs = rec.envs[:0]
	test.ExpectSuccess(t, m.Process(motion(30, 30)))
	expectCodes(t, rec, events.MouseMotion, events.MouseExit)
	test.ExpectEquality(t, m.Position(), image.Pt(30, 30))
}

func TestMouseDrag(t *testing.T) {
	m := devices.NewMouse(cl)
	rec := &recorder{}
	m.Chain().Set(rec)

	// click without movement is not a drag
	test.ExpectSuccess(t, m.Process(button(events.MouseButtonDown, events.MouseButtonLeft, 5, 5)))
	test.ExpectSuccess(t, m.IsPressed(events.MouseButtonLeft))
	test.ExpectSuccess(t, m.Process(button(events.MouseButtonUp, events.MouseButtonLeft, 5, 5)))
	expectCodes(t, rec, events.MouseButtonDown, events.MouseButtonUp)

	rec.envs = rec.envs[:0]
	test.ExpectSuccess(t, m.Process(button(events.MouseButtonDown, events.MouseButtonLeft, 5, 5)))
	test.ExpectSuccess(t, m.Process(motion(8, 9)))
	test.ExpectSuccess(t, m.Process(button(events.MouseButtonUp, events.MouseButtonLeft, 8, 9)))
	expectCodes(t, rec, events.MouseButtonDown, events.MouseMotion, events.MouseDrag, events.MouseButtonUp, events.MouseDragEnd)

	end := rec.envs[4].Payload.(events.MouseDragEvent)
	test.ExpectEquality(t, end.StartX, 5)
	test.ExpectEquality(t, end.StartY, 5)
	test.ExpectEquality(t, end.X, 8)
	test.ExpectFailure(t, m.IsPressed(events.MouseButtonLeft))
}

func TestMouseScrollAsymmetry(t *testing.T) {
	m := devices.NewMouse(cl)
	rec := &recorder{}
	m.Chain().Set(rec)

	test.ExpectSuccess(t, m.Process(button(events.MouseButtonDown, events.MouseButton4, 0, 0)))
	test.ExpectSuccess(t, m.Process(button(events.MouseButtonUp, events.MouseButton4, 0, 0)))
	test.ExpectSuccess(t, m.Process(button(events.MouseButtonDown, events.MouseButton5, 0, 0)))
	test.ExpectSuccess(t, m.Process(button(events.MouseButtonUp, events.MouseButton5, 0, 0)))

	// the button up for button 5 is never seen
	expectCodes(t, rec, events.MouseScrollUp, events.MouseButtonUp, events.MouseScrollDown)
}

func TestMouseWheel(t *testing.T) {
	m := devices.NewMouse(cl)
	rec := &recorder{}
	m.Chain().Set(rec)

	wheel := func(y int) events.Envelope {
		return cl.Classify(events.RawEvent{Code: events.MouseWheel, Payload: events.MouseWheelEvent{Y: y}})
	}

	test.ExpectSuccess(t, m.Process(wheel(2)))
	test.ExpectSuccess(t, m.Process(wheel(-1)))
	test.ExpectSuccess(t, m.Process(wheel(0)))
	expectCodes(t, rec, events.MouseWheel, events.MouseScrollUp, events.MouseWheel, events.MouseScrollDown, events.MouseWheel)
	test.ExpectEquality(t, rec.envs[1].Payload.(events.MouseScroll).Amount, 2)
	test.ExpectEquality(t, rec.envs[3].Payload.(events.MouseScroll).Amount, 1)
}

func TestJoystickShadow(t *testing.T) {
	info := devices.StaticJoystickInfo{
		0: {Name: "pad 0", Axes: 2, Buttons: 4, Hats: 1, Balls: 1},
		1: {Name: "pad 1", Axes: 2, Buttons: 4, Hats: 1},
	}
	js := devices.NewJoysticks(cl, info)
	rec := &recorder{}
	js.Chain().Set(rec)

	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyDeviceAdded, Payload: events.JoyDevice{Which: 0}})))
	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyDeviceAdded, Payload: events.JoyDevice{Which: 1}})))

	// axis motion for device 1 only changes device 1
	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyAxisMotion, Payload: events.JoyAxis{Which: 1, Axis: 1, Value: 1000}})))

	j0, ok := js.Joystick(0)
	test.DemandSuccess(t, ok)
	j1, ok := js.Joystick(1)
	test.DemandSuccess(t, ok)

	test.ExpectEquality(t, j1.AxisValues[1], int16(1000))
	test.ExpectEquality(t, j1.AxisValues[0], int16(0))
	test.ExpectEquality(t, j0.AxisValues[0], int16(0))
	test.ExpectEquality(t, j0.AxisValues[1], int16(0))
	test.ExpectEquality(t, j1.Name, "pad 1")

	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyButtonDown, Payload: events.JoyButton{Which: 0, Button: 2}})))
	test.ExpectSuccess(t, j0.ButtonValues[2])
	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyButtonUp, Payload: events.JoyButton{Which: 0, Button: 2}})))
	test.ExpectFailure(t, j0.ButtonValues[2])

	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyHatMotion, Payload: events.JoyHat{Which: 0, Hat: 0, Value: 4}})))
	test.ExpectEquality(t, j0.HatValues[0], uint8(4))

	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyBallMotion, Payload: events.JoyBall{Which: 0, Ball: 0, RelX: 3, RelY: -2}})))
	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyBallMotion, Payload: events.JoyBall{Which: 0, Ball: 0, RelX: 3, RelY: -2}})))
	test.ExpectEquality(t, j0.BallValues[0], devices.Ball{X: 6, Y: -4})

	// out of range values are ignored but still forwarded
	n := len(rec.envs)
	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyAxisMotion, Payload: events.JoyAxis{Which: 0, Axis: 10, Value: 1}})))
	test.ExpectEquality(t, len(rec.envs), n+1)

	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyDeviceRemoved, Payload: events.JoyDevice{Which: 0}})))
	_, ok = js.Joystick(0)
	test.ExpectFailure(t, ok)
	test.DemandEquality(t, len(js.Devices()), 1)
	test.ExpectEquality(t, js.Devices()[0], 1)
}

func TestJoystickUnavailable(t *testing.T) {
	js := devices.NewJoysticks(cl, devices.StaticJoystickInfo{})
	rec := &recorder{}
	js.Chain().Set(rec)

	// the event is still forwarded even though the device couldn't be opened
	test.ExpectSuccess(t, js.Process(cl.Classify(events.RawEvent{Code: events.JoyAxisMotion, Payload: events.JoyAxis{Which: 3, Axis: 0, Value: 1}})))
	test.ExpectEquality(t, len(rec.envs), 1)
	test.ExpectSuccess(t, js.Unavailable(3))
	_, ok := js.Joystick(3)
	test.ExpectFailure(t, ok)
}

func TestMidi(t *testing.T) {
	md := devices.NewMidi()
	rec := &recorder{}
	md.Chain().Set(rec)

	for _, s := range []uint8{0x90, 0x80, 0x90} {
		test.ExpectSuccess(t, md.Process(cl.Classify(events.RawEvent{Code: events.MidiIn, Payload: events.Midi{Status: s}})))
	}
	test.ExpectEquality(t, md.Counts()[0x90], 2)
	test.ExpectEquality(t, md.Counts()[0x80], 1)
	test.ExpectEquality(t, len(rec.envs), 3)
}

type countingProvider struct {
	calls int
}

func (p *countingProvider) Font(cfg fonts.Config) (font.Face, error) {
	p.calls++
	if cfg.Name == "bad" {
		return nil, errors.New("bad font")
	}
	return basicfont.Face7x13, nil
}

func TestFontCache(t *testing.T) {
	prov := &countingProvider{}
	fm := devices.NewFonts(prov)

	_, err := fm.Font(fonts.Config{Name: "a", Size: 10})
	test.ExpectSuccess(t, err)
	_, err = fm.Font(fonts.Config{Name: "a", Size: 10})
	test.ExpectSuccess(t, err)
	_, err = fm.Font(fonts.Config{Name: "a", Size: 12})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, prov.calls, 2)

	_, err = fm.Font(fonts.Config{Name: "bad"})
	test.ExpectFailure(t, err)
}

func TestAudio(t *testing.T) {
	au := devices.NewAudio()
	rec := &recorder{}
	au.Chain().Set(rec)

	dev := events.AudioDevice{Which: 1, Capture: true}
	test.ExpectSuccess(t, au.Process(cl.Classify(events.RawEvent{Code: events.AudioDeviceAdded, Payload: dev})))
	test.ExpectSuccess(t, au.Devices()[dev])
	test.ExpectSuccess(t, au.Process(cl.Classify(events.RawEvent{Code: events.AudioDeviceRemoved, Payload: dev})))
	test.ExpectEquality(t, len(au.Devices()), 0)

	test.ExpectSuccess(t, au.Unavailable())
	au.MarkUnavailable("capture", errors.New("no microphone"))
	test.ExpectSuccess(t, curated.Is(au.Unavailable(), devices.DeviceInitFailure))
}

func TestRouter(t *testing.T) {
	kb := devices.NewKeyboard(cl)
	kbRec := &recorder{}
	kb.Chain().Set(kbRec)

	fallback := &recorder{}

	rt := devices.NewRouter()
	rt.Route(kb, events.CategoryKeyboard, events.CategoryText)
	rt.SetFallback(fallback)

	test.ExpectSuccess(t, rt.Dispatch(cl.Classify(events.RawEvent{Code: events.TextInput, Payload: events.Text{Text: "a"}})))
	test.ExpectSuccess(t, rt.Dispatch(cl.Classify(events.RawEvent{Code: events.Quit})))
	test.ExpectSuccess(t, rt.Dispatch(cl.Classify(events.RawEvent{Code: events.WindowClose})))

	expectCodes(t, kbRec, events.TextInput)
	expectCodes(t, fallback, events.Quit, events.WindowClose)

	// no fallback means the event is unhandled
	rt = devices.NewRouter()
	err := rt.Dispatch(cl.Classify(events.RawEvent{Code: events.Quit}))
	test.ExpectSuccess(t, curated.Is(err, registry.UnhandledEvent))
}

func TestDefine(t *testing.T) {
	reg := registry.NewRegistry()
	test.DemandSuccess(t, devices.Define(reg))

	kb, err := reg.Get(devices.KeyboardHandle, cl)
	test.DemandSuccess(t, err)
	_, ok := kb.(*devices.Keyboard)
	test.ExpectSuccess(t, ok)

	// wrong argument type is a configuration error
	_, err = reg.Get(devices.MouseHandle, "not a classifier")
	test.ExpectSuccess(t, curated.Is(err, registry.ConfigurationError))

	js, err := reg.Get(devices.JoystickHandle, cl, devices.StaticJoystickInfo{})
	test.DemandSuccess(t, err)
	_, ok = js.(*devices.Joysticks)
	test.ExpectSuccess(t, ok)

	for _, h := range []registry.Handle{devices.MidiHandle, devices.FontHandle, devices.AudioHandle} {
		_, err := reg.Get(h)
		test.ExpectSuccess(t, err, h)
	}
}
