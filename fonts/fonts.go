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

package fonts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/jetsetilly/stagehand/logger"
	"github.com/jetsetilly/stagehand/resources"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Config describes a font face.
type Config struct {
	Name string
	Size float64
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s %.1fpt", cfg.Name, cfg.Size)
}

// Provider is implemented by anything that can create font faces.
type Provider interface {
	Font(cfg Config) (font.Face, error)
}

// default values used when the Config fields are zero
const (
	DefaultName = "goregular"
	DefaultSize = 12.0
	dpi         = 72
)

var builtin = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
	"gobold":    gobold.TTF,
}

// Builtin implements the Provider interface. The Resources field is only
// required if fonts are to be loaded from files.
type Builtin struct {
	Resources resources.Provider

	parsed map[string]*opentype.Font
}

// Font implements the Provider interface.
func (b *Builtin) Font(cfg Config) (font.Face, error) {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}

	if strings.EqualFold(cfg.Name, "basic") {
		return basicfont.Face7x13, nil
	}

	f, err := b.parse(cfg.Name)
	if err != nil {
		logger.Logf(logger.Allow, "fonts", "%v: using %s", err, DefaultName)
		f, err = b.parse(DefaultName)
		if err != nil {
			return nil, err
		}
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.Size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}

	return face, nil
}

func (b *Builtin) parse(name string) (*opentype.Font, error) {
	if f, ok := b.parsed[name]; ok {
		return f, nil
	}

	data, ok := builtin[strings.ToLower(name)]
	if !ok {
		if b.Resources == nil {
			return nil, fmt.Errorf("fonts: no font named %s", name)
		}
		var err error
		data, err = b.Resources.Load(name)
		if err != nil {
			return nil, fmt.Errorf("fonts: %w", err)
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: %s: %w", name, err)
	}

	if b.parsed == nil {
		b.parsed = make(map[string]*opentype.Font)
	}
	b.parsed[name] = f

	return f, nil
}

// Measure returns the bounds of the text if it were drawn at the origin. The
// origin is on the baseline.
func Measure(face font.Face, s string) image.Rectangle {
	b, _ := font.BoundString(face, s)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// Draw the text with the top-left corner at pt. Returns the area of dst that
// has been drawn to.
func Draw(dst draw.Image, face font.Face, pt image.Point, s string, col color.Color) image.Rectangle {
	ascent := face.Metrics().Ascent.Ceil()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(pt.X, pt.Y+ascent),
	}

	r := Measure(face, s).Add(image.Pt(pt.X, pt.Y+ascent))
	d.DrawString(s)

	return r.Intersect(dst.Bounds())
}
