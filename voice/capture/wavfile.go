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
	"os"

	"github.com/go-audio/wav"
)

// WAVFile is a Backend that plays a WAV file as though it was being captured.
type WAVFile struct {
	Path string

	// play the file repeatedly
	Loop bool
}

// Open implements the Backend interface.
func (w WAVFile) Open(format Format, chunkSize int, callback func([]byte)) (Stream, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	pcm, err := decodeWAV(w.Path, format)
	if err != nil {
		return nil, err
	}

	return play(pcm, format, chunkSize, w.Loop, callback), nil
}

func decodeWAV(path string, format Format) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: %s: not a valid wav file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	if buf.Format == nil {
		return nil, fmt.Errorf("wav: %s: no format information", path)
	}

	bits := buf.SourceBitDepth
	if bits == 0 {
		bits = int(dec.BitDepth)
	}

	return convert(buf.Data, buf.Format.SampleRate, buf.Format.NumChannels, bits, format), nil
}
