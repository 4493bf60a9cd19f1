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

package devices

import (
	"fmt"

	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/fonts"
	"golang.org/x/image/font"
)

// Fonts manager caches font faces created by a fonts.Provider.
type Fonts struct {
	manager
	provider fonts.Provider
	cache    map[fonts.Config]font.Face
}

// NewFonts is the preferred method of initialisation for the Fonts type. If
// provider is nil the builtin provider is used.
func NewFonts(provider fonts.Provider) *Fonts {
	if provider == nil {
		provider = &fonts.Builtin{}
	}
	return &Fonts{
		provider: provider,
		cache:    make(map[fonts.Config]font.Face),
	}
}

// Font returns the face for the config. Faces are created once for each
// distinct config.
func (fm *Fonts) Font(cfg fonts.Config) (font.Face, error) {
	if f, ok := fm.cache[cfg]; ok {
		return f, nil
	}
	f, err := fm.provider.Font(cfg)
	if err != nil {
		return nil, fmt.Errorf("font manager: %w", err)
	}
	fm.cache[cfg] = f
	return f, nil
}

// Process implements the Processor interface. There are no font events so
// everything is forwarded.
func (fm *Fonts) Process(env events.Envelope) error {
	return fm.forward(env)
}
