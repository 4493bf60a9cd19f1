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

package stage_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/prefs"
	"github.com/jetsetilly/stagehand/registry"
	"github.com/jetsetilly/stagehand/stage"
	"github.com/jetsetilly/stagehand/test"
)

func TestParseResolution(t *testing.T) {
	w, h, err := stage.ParseResolution("800x600")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)

	w, h, err = stage.ParseResolution(" 320X200 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	for _, s := range []string{"", "800", "x600", "800x", "800x-1", "0x600", "axb"} {
		_, _, err = stage.ParseResolution(s)
		test.ExpectSuccess(t, curated.Is(err, registry.ConfigurationError), s)
	}
}

func TestPreferenceDefaults(t *testing.T) {
	p, err := stage.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.FPS.Get().(int), stage.DefaultFPS)
	test.ExpectEquality(t, p.Update.Get().(string), stage.UpdateDiff)
	test.ExpectEquality(t, p.Resolution.Get().(string), stage.DefaultResolution)
	test.ExpectEquality(t, p.Strict.Get().(bool), false)
}

func TestPreferenceValidation(t *testing.T) {
	p, err := stage.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.FPS.Set(-1))
	test.ExpectFailure(t, p.DeltaScale.Set(-0.5))
	test.ExpectFailure(t, p.Update.Set("some"))
	test.ExpectSuccess(t, curated.Is(p.Resolution.Set("big"), registry.ConfigurationError))

	// rejected values do not change the preference
	test.ExpectEquality(t, p.FPS.Get().(int), stage.DefaultFPS)
	test.ExpectEquality(t, p.Resolution.Get().(string), stage.DefaultResolution)
}

func TestPreferencePersistence(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := stage.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.FPS.Set(30))
	test.DemandSuccess(t, p.Resolution.Set("320x240"))
	test.DemandSuccess(t, p.Save())

	q, err := stage.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.FPS.Get().(int), 30)
	test.ExpectEquality(t, q.Resolution.Get().(string), "320x240")

	// command line values take precedence
	prefs.PushCommandLineStack("stage.fps::75")
	r, err := stage.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.FPS.Get().(int), 75)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
