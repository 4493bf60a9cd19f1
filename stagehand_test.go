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
	"errors"
	"testing"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/prefs"
	"github.com/jetsetilly/stagehand/registry"
	"github.com/jetsetilly/stagehand/test"
	"github.com/jetsetilly/stagehand/voice/capture"
)

func TestParseVoice(t *testing.T) {
	b, err := parseVoice("none")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, b == nil)

	b, err = parseVoice("")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, b == nil)

	b, err = parseVoice("SDL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, capture.Backend(capture.SDL{}))

	b, err = parseVoice("wav:commands.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, capture.Backend(capture.WAVFile{Path: "commands.wav"}))

	b, err = parseVoice("mp3:commands.mp3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, capture.Backend(capture.MP3File{Path: "commands.mp3"}))

	_, err = parseVoice("wav")
	test.ExpectFailure(t, err)

	_, err = parseVoice("microphone")
	test.ExpectFailure(t, err)
}

func TestCommandLinePrefs(t *testing.T) {
	values := map[string]string{
		"fps":    "30",
		"strict": "true",
		"log":    "true",
	}

	s := commandLinePrefs([]string{"fps", "log", "strict"}, values)
	test.ExpectEquality(t, s, "stage.fps::30; stage.strict::true")

	prefs.PushCommandLineStack(s)
	ok, v := prefs.GetCommandLinePref("stage.fps")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "stage.strict::true")

	test.ExpectEquality(t, commandLinePrefs(nil, values), "")
}

func TestExitCode(t *testing.T) {
	test.ExpectEquality(t, exitCode(nil), exitOK)
	test.ExpectEquality(t, exitCode(errors.New("test error")), exitModeError)

	cfg := curated.Errorf(registry.ConfigurationError, "bad resolution")
	test.ExpectEquality(t, exitCode(cfg), exitConfigError)

	// shutdown errors are joined with the error that ended the mode
	joined := errors.Join(cfg, errors.New("close failed"))
	test.ExpectEquality(t, exitCode(joined), exitConfigError)
	joined = errors.Join(errors.New("close failed"), cfg)
	test.ExpectEquality(t, exitCode(joined), exitConfigError)
}
