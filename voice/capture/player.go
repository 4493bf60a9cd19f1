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
	"encoding/binary"
	"sync"
	"time"
)

// player delivers decoded PCM data to a callback at real-time pace.
type player struct {
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// play the pcm data in chunks. if loop is false the stream stops delivering
// data, but remains open, when the end of the data is reached.
func play(pcm []byte, format Format, chunkSize int, loop bool, callback func([]byte)) *player {
	p := &player{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	if chunkSize <= 0 {
		chunkSize = 1024
	}

	go func() {
		defer close(p.done)

		if len(pcm) == 0 {
			return
		}

		tck := time.NewTicker(max(format.Duration(chunkSize), time.Millisecond))
		defer tck.Stop()

		idx := 0
		for {
			select {
			case <-p.quit:
				return
			case <-tck.C:
			}

			if idx >= len(pcm) {
				if !loop {
					return
				}
				idx = 0
			}

			end := min(idx+chunkSize, len(pcm))
			chunk := make([]byte, end-idx)
			copy(chunk, pcm[idx:end])
			callback(chunk)
			idx = end
		}
	}()

	return p
}

// Close implements the Stream interface.
func (p *player) Close() error {
	p.once.Do(func() {
		close(p.quit)
	})
	<-p.done
	return nil
}

// convert interleaved samples to the target format. channels are mixed by
// averaging and the sample rate is converted by picking the nearest sample.
// samples are scaled from the source bit depth to 16 bits.
func convert(samples []int, srcRate int, srcChannels int, srcBits int, format Format) []byte {
	if srcChannels <= 0 || srcRate <= 0 {
		return nil
	}

	frames := len(samples) / srcChannels
	outFrames := int(int64(frames) * int64(format.SampleRate) / int64(srcRate))

	shift := srcBits - 16

	out := make([]byte, 0, outFrames*format.Channels*2)
	for i := range outFrames {
		f := int(int64(i) * int64(srcRate) / int64(format.SampleRate))
		if f >= frames {
			break
		}

		var sum int
		for c := range srcChannels {
			sum += samples[f*srcChannels+c]
		}
		v := sum / srcChannels

		// 8 bit samples are unsigned
		if srcBits == 8 {
			v -= 128
		}

		switch {
		case shift > 0:
			v >>= shift
		case shift < 0:
			v <<= -shift
		}
		v = max(min(v, 32767), -32768)

		for range format.Channels {
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(v)))
		}
	}

	return out
}
