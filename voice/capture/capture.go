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
	"time"
)

// Format of the PCM data delivered by a Stream. Samples are always signed
// 16-bit little-endian and channels are interleaved.
type Format struct {
	SampleRate int
	Channels   int
}

func (f Format) String() string {
	return fmt.Sprintf("%dHz %dch", f.SampleRate, f.Channels)
}

// BytesPerSecond returns the number of bytes required for one second of
// audio.
func (f Format) BytesPerSecond() int {
	return f.SampleRate * f.Channels * 2
}

// Duration returns the length of audio represented by the number of bytes.
func (f Format) Duration(bytes int) time.Duration {
	bps := f.BytesPerSecond()
	if bps == 0 {
		return 0
	}
	return time.Duration(bytes) * time.Second / time.Duration(bps)
}

// Validate returns an error if the format is unusable.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("capture: sample rate must be positive")
	}
	if f.Channels <= 0 {
		return fmt.Errorf("capture: channels must be positive")
	}
	return nil
}

// Stream is an open capture device.
type Stream interface {
	Close() error
}

// Backend opens capture devices.
type Backend interface {
	// Open the device. Chunks of chunkSize bytes are sent to the callback
	// until the stream is closed
	Open(format Format, chunkSize int, callback func(chunk []byte)) (Stream, error)
}
