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

package voice

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/stagehand/resources"
)

// WriteWAV encodes the utterance as a 16 bit WAV file.
func WriteWAV(w io.WriteSeeker, utt Utterance) error {
	data := make([]int, len(utt.PCM)/2)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(utt.PCM[i*2:])))
	}

	enc := wav.NewEncoder(w, utt.Format.SampleRate, 16, utt.Format.Channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: utt.Format.Channels,
			SampleRate:  utt.Format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}

// dumpUtterance writes the utterance to a uniquely named file in the
// directory. Returns the filename.
func dumpUtterance(dir string, seq int, utt Utterance) (string, error) {
	fn := filepath.Join(dir, fmt.Sprintf("%s_%04d.wav", resources.UniqueFilename("utterance", ""), seq))

	f, err := os.Create(fn)
	if err != nil {
		return "", fmt.Errorf("dump: %w", err)
	}

	if err := WriteWAV(f, utt); err != nil {
		f.Close()
		return "", fmt.Errorf("dump: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("dump: %w", err)
	}

	return fn, nil
}
