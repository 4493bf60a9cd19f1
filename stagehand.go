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

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/demo"
	"github.com/jetsetilly/stagehand/devices"
	"github.com/jetsetilly/stagehand/display"
	"github.com/jetsetilly/stagehand/display/sdlscreen"
	"github.com/jetsetilly/stagehand/display/termkeys"
	"github.com/jetsetilly/stagehand/logger"
	"github.com/jetsetilly/stagehand/modalflag"
	"github.com/jetsetilly/stagehand/notifications"
	"github.com/jetsetilly/stagehand/performance"
	"github.com/jetsetilly/stagehand/prefs"
	"github.com/jetsetilly/stagehand/registry"
	"github.com/jetsetilly/stagehand/resources"
	"github.com/jetsetilly/stagehand/stage"
	"github.com/jetsetilly/stagehand/statsview"
	"github.com/jetsetilly/stagehand/version"
	"github.com/jetsetilly/stagehand/voice"
	"github.com/jetsetilly/stagehand/voice/capture"
)

// exit values
const (
	exitOK          = 0
	exitParseError  = 10
	exitModeError   = 20
	exitConfigError = 30
)

// the number of log entries shown when a mode ends with an error
const tailOnError = 10

// the size of the channel used to send voice callbacks to the frame loop
const dispatchQueue = 16

func init() {
	// SDL requires that window and event handling happen on the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(exitOK)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParseError)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		logger.Tail(os.Stdout, tailOnError)
		os.Exit(exitCode(err))
	}
}

// exitCode returns the exit value for an error that ended a mode. The
// configuration error may be one of several joined errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case curated.Has(err, registry.ConfigurationError):
		return exitConfigError
	}
	return exitModeError
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Println(version.String())
	if *revision {
		_, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", rev, version.Toolchain())
	}

	return nil
}

// flags that correspond to a preference value
var prefFlags = map[string]string{
	"fps":        "stage.fps",
	"fullscreen": "stage.fullscreen",
	"resolution": "stage.resolution",
	"update":     "stage.update",
	"strict":     "stage.strict",
	"telemetry":  "stage.telemetry",
}

// commandLinePrefs returns the string for prefs.PushCommandLineStack() for
// the preference flags that were set on the command line.
func commandLinePrefs(set []string, values map[string]string) string {
	var s []string
	for _, f := range set {
		if key, ok := prefFlags[f]; ok {
			s = append(s, fmt.Sprintf("%s::%s", key, values[f]))
		}
	}
	return strings.Join(s, "; ")
}

// parseVoice returns the capture backend for the value of the -voice flag. A
// nil backend means voice commands are disabled.
func parseVoice(s string) (capture.Backend, error) {
	kind, arg, _ := strings.Cut(s, ":")
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "none":
		return nil, nil
	case "sdl":
		return capture.SDL{Device: arg}, nil
	case "wav":
		if arg == "" {
			return nil, fmt.Errorf("voice: wav requires a filename")
		}
		return capture.WAVFile{Path: arg}, nil
	case "mp3":
		if arg == "" {
			return nil, fmt.Errorf("voice: mp3 requires a filename")
		}
		return capture.MP3File{Path: arg}, nil
	}
	return nil, fmt.Errorf("voice: unknown capture device: %s", s)
}

// notices are written to the log
type notices struct{}

func (notices) Notify(notice notifications.Notice, detail string) error {
	logger.Logf(logger.Allow, "notice", "%s: %s", notice, detail)
	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	fps := md.AddInt("fps", stage.DefaultFPS, "target frame rate. zero for unlimited")
	fullscreen := md.AddBool("fullscreen", false, "fullscreen window")
	resolution := md.AddString("resolution", stage.DefaultResolution, "surface size")
	update := md.AddString("update", stage.UpdateDiff, "redraw strategy: diff, all")
	strict := md.AddBool("strict", false, "unhandled events are fatal")
	telemetry := md.AddFloat64("telemetry", stage.DefaultTelemetry, "seconds between FRAMETICK events. zero to disable")
	headless := md.AddBool("headless", false, "run without a window. keyboard input from the terminal")
	voiceDevice := md.AddString("voice", "none", "voice capture: sdl, wav:file, mp3:file, none")
	voiceScript := md.AddString("voice-script", "", "file of transcripts for the scripted recogniser")
	voiceBindings := md.AddString("voice-bindings", "", "YAML file of voice command bindings")
	voiceDump := md.AddString("voice-dump", "", "directory for WAV dumps of every utterance")
	snapshots := md.AddBool("snapshots", false, "save a snapshot of every outgoing scene")
	memviz := md.AddString("memviz", "", "write graphviz of the device managers to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	log := md.AddBool("log", false, "echo log to stdout")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem, trace, all, none")
	savePrefs := md.AddBool("saveprefs", false, "save preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	values := map[string]string{
		"fps":        fmt.Sprint(*fps),
		"fullscreen": fmt.Sprint(*fullscreen),
		"resolution": *resolution,
		"update":     *update,
		"strict":     fmt.Sprint(*strict),
		"telemetry":  fmt.Sprint(*telemetry),
	}
	var set []string
	md.Visit(func(f string) { set = append(set, f) })
	prefs.PushCommandLineStack(commandLinePrefs(set, values))

	prefsFile, err := resources.JoinPath("preferences")
	if err != nil {
		return err
	}
	pref, err := stage.NewPreferences(prefsFile)
	if err != nil {
		return err
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
	}

	w, h, err := stage.ParseResolution(pref.Resolution.String())
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(registry.ConfigurationError, err)
	}

	backend, err := parseVoice(*voiceDevice)
	if err != nil {
		return curated.Errorf(registry.ConfigurationError, err)
	}

	// display and input
	var disp display.Provider
	var joysticks devices.JoystickInfo
	var keys *termkeys.Keys

	if *headless {
		hl := display.NewHeadless(w, h)
		keys, err = termkeys.NewKeys(os.Stdin)
		if err != nil {
			logger.Logf(logger.Allow, "stagehand", "no keyboard input: %v", err)
		} else {
			hl.Attach(keys)
		}
		disp = hl
	} else {
		scr, err := sdlscreen.NewScreen(sdlscreen.Config{
			Title:      version.ApplicationName,
			Width:      w,
			Height:     h,
			Fullscreen: pref.Fullscreen.Get().(bool),
		})
		if err != nil {
			return err
		}
		disp = scr
		joysticks = scr
	}

	var snaps resources.Provider
	if *snapshots {
		dir, err := resources.NewDir("snapshots")
		if err != nil {
			return err
		}
		snaps = dir
	}

	dispatch := make(chan func(), dispatchQueue)

	st, err := stage.NewStage(stage.Config{
		Prefs:        pref,
		Display:      disp,
		JoystickInfo: joysticks,
		Snapshots:    snaps,
		Notify:       notices{},
		Dispatch:     dispatch,
	})
	if err != nil {
		return errors.Join(err, shutdown(nil, keys, disp))
	}

	d := demo.New(st.Fonts(), image.Rect(0, 0, w, h))

	listener, err := startVoice(backend, *voiceScript, *voiceBindings, *voiceDump, d, st, dispatch)
	if err != nil {
		return errors.Join(err, shutdown(nil, keys, disp))
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(os.Stdout, statsview.DefaultAddress)
			defer stop()
		} else {
			fmt.Println("! stats server not available. build with the statsview tag")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = performance.RunProfiler(prof, "stagehand", func() error {
		return st.Run(ctx, d.First())
	})

	err = errors.Join(err, shutdown(listener, keys, disp))

	if *memviz != "" {
		if merr := writeMemviz(*memviz); merr != nil {
			err = errors.Join(err, merr)
		}
	}

	if *savePrefs {
		err = errors.Join(err, pref.Save())
	}

	if rerr := performance.Pacing().WriteReport(os.Stdout); rerr != nil {
		err = errors.Join(err, rerr)
	}

	return err
}

// startVoice creates and starts the voice listener. A nil listener is returned
// if there is no capture backend.
func startVoice(backend capture.Backend, script string, bindings string, dump string,
	d *demo.Demo, st *stage.Stage, dispatch chan<- func()) (*voice.Listener, error) {

	if backend == nil {
		return nil, nil
	}

	if script == "" {
		return nil, curated.Errorf(registry.ConfigurationError, fmt.Errorf("voice: a recogniser script is required"))
	}
	data, err := os.ReadFile(script)
	if err != nil {
		return nil, curated.Errorf(registry.ConfigurationError, err)
	}
	rec := voice.ParseScript(data)

	b := demo.DefaultBindings()
	if bindings != "" {
		data, err := os.ReadFile(bindings)
		if err != nil {
			return nil, curated.Errorf(registry.ConfigurationError, err)
		}
		b, err = voice.LoadBindings(data)
		if err != nil {
			return nil, curated.Errorf(registry.ConfigurationError, err)
		}
	}

	cfg := voice.DefaultConfig()
	cfg.DumpDir = dump
	cfg.Notify = notices{}

	l := voice.NewListener(backend, rec, cfg, dispatch)
	if err := b.Apply(l, d.VoiceActions(st)); err != nil {
		return nil, curated.Errorf(registry.ConfigurationError, err)
	}

	l.StartListening()
	logger.Logf(logger.Allow, "voice", "listening for: %s", strings.Join(l.Commands(), ", "))

	return l, nil
}

// shutdown in the correct order. the listener must be stopped before the
// display is closed because the SDL capture device is closed with the SDL
// subsystem.
func shutdown(listener *voice.Listener, keys *termkeys.Keys, disp display.Provider) error {
	if listener != nil {
		listener.StopListening()
	}

	var err error
	if keys != nil {
		err = keys.Restore()
	}
	return errors.Join(err, disp.Close())
}

func writeMemviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	registry.Default.Memviz(f)
	return nil
}
