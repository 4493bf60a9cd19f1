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
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// MP3File is a Backend that plays an MP3 file as though it was being
// captured.
type MP3File struct {
	Path string

	// play the file repeatedly
	Loop bool
}

// Open implements the Backend interface.
func (m MP3File) Open(format Format, chunkSize int, callback func([]byte)) (Stream, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	pcm, err := decodeMP3(m.Path, format)
	if err != nil {
		return nil, err
	}

	return play(pcm, format, chunkSize, m.Loop, callback), nil
}

func decodeMP3(path string, format Format) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	// the decoder always produces 16 bit stereo
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	samples := make([]int, len(raw)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(raw[i*2:])))
	}

	return convert(samples, dec.SampleRate(), 2, 16, format), nil
}
