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

package capture

import (
	"fmt"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// how often the capture device is checked for new data
const pollInterval = 10 * time.Millisecond

// SDL is a Backend that records from an SDL capture device.
type SDL struct {
	// the name of the capture device. the empty string is the default device
	Device string
}

type sdlStream struct {
	id   sdl.AudioDeviceID
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// Open implements the Backend interface.
func (s SDL) Open(format Format, chunkSize int, callback func([]byte)) (Stream, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if chunkSize <= 0 {
		chunkSize = 1024
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdl capture: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(format.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(format.Channels),
		Samples:  uint16(chunkSize / (2 * format.Channels)),
	}

	var actualSpec sdl.AudioSpec
	id, err := sdl.OpenAudioDevice(s.Device, true, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdl capture: %w", err)
	}

	st := &sdlStream{
		id:   id,
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	sdl.PauseAudioDevice(id, false)

	go func() {
		defer close(st.done)

		tck := time.NewTicker(pollInterval)
		defer tck.Stop()

		for {
			select {
			case <-st.quit:
				return
			case <-tck.C:
			}

			for sdl.GetQueuedAudioSize(id) >= uint32(chunkSize) {
				chunk := make([]byte, chunkSize)
				if err := sdl.DequeueAudio(id, chunk); err != nil {
					break
				}
				callback(chunk)
			}
		}
	}()

	return st, nil
}

// Close implements the Stream interface.
func (st *sdlStream) Close() error {
	st.once.Do(func() {
		close(st.quit)
		<-st.done
		sdl.PauseAudioDevice(st.id, true)
		sdl.CloseAudioDevice(st.id)
	})
	return nil
}
