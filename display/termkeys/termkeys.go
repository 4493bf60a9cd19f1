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

// Package termkeys turns key presses in a terminal into raw key events. It is
// used with the Headless display so that a scene can be driven from the
// keyboard without a window.
//
// A terminal has no notion of key release so every key press produces a
// KeyDown event immediately followed by a KeyUp event.
package termkeys

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jetsetilly/stagehand/events"
	"github.com/jetsetilly/stagehand/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Keys reads from a terminal in raw mode.
type Keys struct {
	input *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	crit     sync.Mutex
	queue    []events.RawEvent
	restored bool
}

// NewKeys puts the terminal into raw mode and starts reading key presses. The
// terminal must be restored with Restore().
func NewKeys(input *os.File) (*Keys, error) {
	if input == nil {
		return nil, fmt.Errorf("termkeys: no input file")
	}

	k := &Keys{input: input}

	if err := termios.Tcgetattr(k.input.Fd(), &k.canAttr); err != nil {
		return nil, fmt.Errorf("termkeys: %w", err)
	}

	k.rawAttr = k.canAttr
	termios.Cfmakeraw(&k.rawAttr)

	// output processing is kept so that log output still looks correct
	k.rawAttr.Oflag |= unix.OPOST

	if err := termios.Tcsetattr(k.input.Fd(), termios.TCIFLUSH, &k.rawAttr); err != nil {
		return nil, fmt.Errorf("termkeys: %w", err)
	}

	go k.read(k.input)

	return k, nil
}

// the read goroutine ends when the input returns an error. a read that is
// blocked when Restore() is called will end the goroutine on the next key
// press, the key being discarded
func (k *Keys) read(r io.Reader) {
	var pending []byte
	b := make([]byte, 64)

	for {
		n, err := r.Read(b)
		if err != nil {
			if err != io.EOF {
				logger.Logf(logger.Allow, "termkeys", "read: %v", err)
			}
			return
		}

		var evs []events.RawEvent
		evs, pending = Decode(append(pending, b[:n]...))

		k.crit.Lock()
		if k.restored {
			k.crit.Unlock()
			return
		}
		k.queue = append(k.queue, evs...)
		k.crit.Unlock()
	}
}

// PollEvents implements the display.Input interface.
func (k *Keys) PollEvents() []events.RawEvent {
	k.crit.Lock()
	defer k.crit.Unlock()
	evs := k.queue
	k.queue = nil
	return evs
}

// Restore the terminal to the mode it was in when NewKeys() was called. It is
// safe to call Restore more than once.
func (k *Keys) Restore() error {
	k.crit.Lock()
	defer k.crit.Unlock()

	if k.restored {
		return nil
	}
	k.restored = true
	k.queue = nil

	if err := termios.Tcsetattr(k.input.Fd(), termios.TCIFLUSH, &k.canAttr); err != nil {
		return fmt.Errorf("termkeys: %w", err)
	}
	return nil
}
