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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/prefs"
	"github.com/jetsetilly/stagehand/registry"
)

// Update strategies.
const (
	UpdateDiff = "diff"
	UpdateAll  = "all"
)

// Default preference values.
const (
	DefaultFPS        = 60
	DefaultTelemetry  = 1.0
	DefaultDeltaScale = 1.0
	DefaultUpdate     = UpdateDiff
	DefaultResolution = "640x480"
)

// Preferences defines and collates all the preference values used by the
// stage.
type Preferences struct {
	dsk *prefs.Disk

	// the frame rate used by scenes that do not request one. zero means the
	// frame rate is unconstrained
	FPS prefs.Int

	// seconds between FRAMETICK events. zero means no FRAMETICK events are
	// created
	Telemetry prefs.Float

	// multiplier applied to the delta time given to scenes
	DeltaScale prefs.Float

	// "diff" presents only the changed areas of the surface. "all" presents
	// the entire surface every frame
	Update prefs.String

	Resolution prefs.String
	Fullscreen prefs.Bool

	// unhandled events are errors that cause the frame loop to end
	Strict prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("fps=%s telemetry=%s scale=%s update=%s resolution=%s fullscreen=%s strict=%s",
		p.FPS.String(), p.Telemetry.String(), p.DeltaScale.String(), p.Update.String(),
		p.Resolution.String(), p.Fullscreen.String(), p.Strict.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file at path. A
// missing file is not an error.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(registry.ConfigurationError, fmt.Errorf("fps cannot be negative"))
		}
		return nil
	})
	p.DeltaScale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return curated.Errorf(registry.ConfigurationError, fmt.Errorf("delta scale cannot be negative"))
		}
		return nil
	})
	p.Update.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case "", UpdateDiff, UpdateAll:
			return nil
		}
		return curated.Errorf(registry.ConfigurationError, fmt.Errorf("unknown update strategy: %s", v))
	})
	p.Resolution.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "" {
			return nil
		}
		_, _, err := ParseResolution(v.(string))
		return err
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{"stage.fps", &p.FPS},
		{"stage.telemetry", &p.Telemetry},
		{"stage.deltascale", &p.DeltaScale},
		{"stage.update", &p.Update},
		{"stage.resolution", &p.Resolution},
		{"stage.fullscreen", &p.Fullscreen},
		{"stage.strict", &p.Strict},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the hooks accept all default values
	_ = p.FPS.Set(DefaultFPS)
	_ = p.Telemetry.Set(DefaultTelemetry)
	_ = p.DeltaScale.Set(DefaultDeltaScale)
	_ = p.Update.Set(DefaultUpdate)
	_ = p.Resolution.Set(DefaultResolution)
	_ = p.Fullscreen.Set(false)
	_ = p.Strict.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// ParseResolution parses a string of the form "WIDTHxHEIGHT". Malformed
// values are a ConfigurationError.
func ParseResolution(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, curated.Errorf(registry.ConfigurationError, fmt.Errorf("resolution must be WIDTHxHEIGHT: %s", s))
	}

	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, curated.Errorf(registry.ConfigurationError, fmt.Errorf("unusable resolution width: %s", s))
	}

	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, curated.Errorf(registry.ConfigurationError, fmt.Errorf("unusable resolution height: %s", s))
	}

	return width, height, nil
}
