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

package sdlscreen

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/jetsetilly/stagehand/devices"
	"github.com/jetsetilly/stagehand/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Config for a new Screen.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Screen is an SDL window with a streaming texture the size of the surface.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	surface *image.RGBA

	// the window has been exposed and must be copied again even if nothing
	// in the surface has changed
	exposed bool

	// opened joysticks by device index. events from SDL carry an instance
	// ID which is translated into the device index
	joysticks map[int]*sdl.Joystick
	instances map[sdl.JoystickID]int

	closed bool
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(cfg Config) (*Screen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr := &Screen{
		surface:   image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		joysticks: make(map[int]*sdl.Joystick),
		instances: make(map[sdl.JoystickID]int),
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error

	scr.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = scr.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// logical size keeps the surface scaled to the window in fullscreen mode
	if err := scr.renderer.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		_ = scr.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		_ = scr.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// relative motion is taken from the motion events so they are kept.
	// keyboard text is wanted for the TextInput events
	sdl.StartTextInput()

	logger.Logf(logger.Allow, "sdl", "window %dx%d (fullscreen %v)", cfg.Width, cfg.Height, cfg.Fullscreen)

	return scr, nil
}

func (scr *Screen) destroy() error {
	for _, j := range scr.joysticks {
		j.Close()
	}
	clear(scr.joysticks)
	clear(scr.instances)

	var err error
	if scr.texture != nil {
		err = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		if rerr := scr.renderer.Destroy(); err == nil {
			err = rerr
		}
		scr.renderer = nil
	}
	if scr.window != nil {
		if werr := scr.window.Destroy(); err == nil {
			err = werr
		}
		scr.window = nil
	}
	sdl.Quit()

	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// CurrentSurface implements the display.Provider interface.
func (scr *Screen) CurrentSurface() draw.Image {
	return scr.surface
}

// Present implements the display.Provider interface. Only the changed areas
// are uploaded to the texture.
func (scr *Screen) Present(changed []image.Rectangle) error {
	if scr.closed {
		return nil
	}

	if len(changed) == 0 && !scr.exposed {
		return nil
	}

	bounds := scr.surface.Bounds()
	for _, r := range changed {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		pix := unsafe.Pointer(&scr.surface.Pix[scr.surface.PixOffset(r.Min.X, r.Min.Y)])
		rect := &sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
		if err := scr.texture.Update(rect, pix, scr.surface.Stride); err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
	}

	if err := scr.renderer.Clear(); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	scr.renderer.Present()
	scr.exposed = false

	return nil
}

// SetTitle implements the display.Provider interface.
func (scr *Screen) SetTitle(title string) {
	if scr.window != nil {
		scr.window.SetTitle(title)
	}
}

// Close implements the display.Provider interface. It is safe to call Close
// more than once.
func (scr *Screen) Close() error {
	if scr.closed {
		return nil
	}
	scr.closed = true
	sdl.StopTextInput()
	return scr.destroy()
}

// JoystickInfo implements the devices.JoystickInfo interface. The joystick is
// opened the first time it is queried.
func (scr *Screen) JoystickInfo(which int) (devices.JoystickProperties, error) {
	j, ok := scr.joysticks[which]
	if !ok {
		if which < 0 || which >= sdl.NumJoysticks() {
			return devices.JoystickProperties{}, fmt.Errorf("sdl: no joystick at index %d", which)
		}
		j = sdl.JoystickOpen(which)
		if j == nil || !j.Attached() {
			return devices.JoystickProperties{}, fmt.Errorf("sdl: cannot open joystick %d: %w", which, sdl.GetError())
		}
		scr.joysticks[which] = j
		scr.instances[j.InstanceID()] = which
		logger.Logf(logger.Allow, "sdl", "joystick: %s", j.Name())
	}

	return devices.JoystickProperties{
		Name:    j.Name(),
		Axes:    j.NumAxes(),
		Balls:   j.NumBalls(),
		Buttons: j.NumButtons(),
		Hats:    j.NumHats(),
	}, nil
}

// deviceIndex translates an SDL instance ID into the device index used by the
// devices package. Unknown instance IDs are assumed to be device indexes
// already.
func (scr *Screen) deviceIndex(id sdl.JoystickID) int {
	if idx, ok := scr.instances[id]; ok {
		return idx
	}
	return int(id)
}

// forget a removed joystick
func (scr *Screen) forget(id sdl.JoystickID) int {
	idx := scr.deviceIndex(id)
	if j, ok := scr.joysticks[idx]; ok {
		j.Close()
		delete(scr.joysticks, idx)
	}
	delete(scr.instances, id)
	return idx
}
