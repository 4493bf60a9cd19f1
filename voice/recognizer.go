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
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/stagehand/voice/capture"
)

// Utterance is a segment of captured audio that is thought to contain
// speech.
type Utterance struct {
	PCM    []byte
	Format capture.Format
}

// Duration returns the length of the utterance.
func (u Utterance) Duration() time.Duration {
	return u.Format.Duration(len(u.PCM))
}

// Recognizer turns an utterance into text.
//
// Errors should be curated errors with either the RecognitionTransientFailure
// or RecognitionServiceFailure pattern. Other errors are treated as transient.
type Recognizer interface {
	Transcribe(ctx context.Context, utt Utterance) (string, error)
}

// RecognizerFunc allows an ordinary function to be used as a Recognizer.
type RecognizerFunc func(ctx context.Context, utt Utterance) (string, error)

// Transcribe implements the Recognizer interface.
func (f RecognizerFunc) Transcribe(ctx context.Context, utt Utterance) (string, error) {
	return f(ctx, utt)
}

// ScriptedRecognizer returns a prepared list of transcripts, one for each
// utterance, regardless of the content of the utterance. When the list is
// exhausted the empty string is returned.
type ScriptedRecognizer struct {
	crit        sync.Mutex
	transcripts []string
}

// NewScriptedRecognizer is the preferred method of initialisation for the
// ScriptedRecognizer type.
func NewScriptedRecognizer(transcripts ...string) *ScriptedRecognizer {
	return &ScriptedRecognizer{transcripts: transcripts}
}

// ParseScript creates a ScriptedRecognizer from data containing one transcript
// per line. Blank lines and lines beginning with # are ignored.
func ParseScript(data []byte) *ScriptedRecognizer {
	var t []string
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		t = append(t, l)
	}
	return NewScriptedRecognizer(t...)
}

// Transcribe implements the Recognizer interface.
func (r *ScriptedRecognizer) Transcribe(ctx context.Context, _ Utterance) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.crit.Lock()
	defer r.crit.Unlock()

	if len(r.transcripts) == 0 {
		return "", nil
	}
	t := r.transcripts[0]
	r.transcripts = r.transcripts[1:]
	return t, nil
}

// Remaining returns the number of transcripts not yet returned.
func (r *ScriptedRecognizer) Remaining() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return len(r.transcripts)
}
