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
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/stagehand/curated"
	"github.com/jetsetilly/stagehand/logger"
	"github.com/jetsetilly/stagehand/notifications"
	"github.com/jetsetilly/stagehand/voice/capture"
)

// Callback is called when a registered phrase is heard. The argument is the
// complete transcript of the utterance.
type Callback func(heard string) error

// Config for the Listener.
type Config struct {
	Format capture.Format

	// size in bytes of the chunks delivered by the capture device
	ChunkSize int

	// capacity in bytes of the ring between the capture device and the
	// recognition worker
	RingSize int

	// time spent measuring the ambient noise level before listening
	Calibration time.Duration

	// speech is chunks with an energy greater than the ambient noise level
	// multiplied by the SpeechFactor. the threshold is never less than
	// MinThreshold
	SpeechFactor float64
	MinThreshold float64

	// an utterance ends after this much silence
	Pause time.Duration

	// utterances are never longer than this
	MaxUtterance time.Duration

	// maximum time a single read from the ring will block. the worker checks
	// for cancellation at least this often
	ReadTimeout time.Duration

	// time to wait after a recognition service failure
	Backoff time.Duration

	// time StopListening() waits for the worker to end
	JoinTimeout time.Duration

	// if not empty, every utterance is saved as a WAV file in this directory
	DumpDir string

	Notify notifications.Notify
}

// DefaultConfig returns a Config suitable for speech recognition.
func DefaultConfig() Config {
	return Config{
		Format:       capture.Format{SampleRate: 16000, Channels: 1},
		ChunkSize:    1024,
		RingSize:     16000 * 2 * 4,
		Calibration:  time.Second,
		SpeechFactor: 1.5,
		MinThreshold: 300,
		Pause:        800 * time.Millisecond,
		MaxUtterance: 10 * time.Second,
		ReadTimeout:  250 * time.Millisecond,
		Backoff:      time.Second,
		JoinTimeout:  2 * time.Second,
	}
}

// session is the state of a single StartListening()/StopListening() pair.
type session struct {
	ring   *Ring
	cancel context.CancelFunc
	done   chan struct{}

	streamCrit sync.Mutex
	stream     capture.Stream
	closed     bool
}

// closeStream closes the capture stream. it is safe to call more than once
// and before the stream has been opened.
func (s *session) closeStream() {
	s.streamCrit.Lock()
	defer s.streamCrit.Unlock()
	s.closed = true
	if s.stream != nil {
		if err := s.stream.Close(); err != nil {
			logger.Log(logger.Allow, "voice", err)
		}
		s.stream = nil
	}
}

// setStream records the opened stream. returns false if closeStream() has
// already been called, in which case the stream is closed immediately.
func (s *session) setStream(st capture.Stream) bool {
	s.streamCrit.Lock()
	defer s.streamCrit.Unlock()
	if s.closed {
		_ = st.Close()
		return false
	}
	s.stream = st
	return true
}

// Listener listens for spoken commands on a background goroutine.
//
// Callbacks are run on the goroutine of the recognition worker unless a
// dispatch channel is given to NewListener(), in which case the callbacks are
// sent to the channel and it is the responsibility of the receiver to run
// them. Callbacks that run on the worker goroutine must be safe to do so.
type Listener struct {
	backend    capture.Backend
	recognizer Recognizer
	cfg        Config
	dispatch   chan<- func()

	// protects commands and sess
	crit     sync.Mutex
	commands map[string]Callback
	sess     *session

	// number of utterances dumped
	dumped int
}

// NewListener is the preferred method of initialisation for the Listener
// type. The dispatch channel can be nil.
func NewListener(backend capture.Backend, recognizer Recognizer, cfg Config, dispatch chan<- func()) *Listener {
	return &Listener{
		backend:    backend,
		recognizer: recognizer,
		cfg:        cfg,
		dispatch:   dispatch,
		commands:   make(map[string]Callback),
	}
}

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RegisterCommand associates the phrase with the callback. Phrases are case
// insensitive. Registering a phrase a second time replaces the callback.
func (l *Listener) RegisterCommand(phrase string, cb Callback) {
	phrase = normalise(phrase)
	if phrase == "" || cb == nil {
		return
	}
	l.crit.Lock()
	defer l.crit.Unlock()
	l.commands[phrase] = cb
}

// UnregisterCommand forgets the phrase.
func (l *Listener) UnregisterCommand(phrase string) {
	l.crit.Lock()
	defer l.crit.Unlock()
	delete(l.commands, normalise(phrase))
}

// Commands returns the registered phrases in alphabetical order.
func (l *Listener) Commands() []string {
	l.crit.Lock()
	defer l.crit.Unlock()
	c := make([]string, 0, len(l.commands))
	for p := range l.commands {
		c = append(c, p)
	}
	slices.Sort(c)
	return c
}

// ProcessCommand looks for a registered phrase in the transcript and runs the
// callback for it. A phrase that matches the entire transcript is preferred.
// Otherwise the first phrase found anywhere in the transcript is used, with
// longer phrases tried first. Returns true if a callback was run or
// dispatched.
func (l *Listener) ProcessCommand(heard string) bool {
	h := normalise(heard)
	if h == "" {
		return false
	}

	l.crit.Lock()
	phrase := h
	cb, ok := l.commands[h]
	if !ok {
		phrases := make([]string, 0, len(l.commands))
		for p := range l.commands {
			phrases = append(phrases, p)
		}
		slices.SortFunc(phrases, func(a, b string) int {
			if len(a) != len(b) {
				return len(b) - len(a)
			}
			return strings.Compare(a, b)
		})
		for _, p := range phrases {
			if strings.Contains(h, p) {
				phrase = p
				cb = l.commands[p]
				ok = true
				break
			}
		}
	}
	l.crit.Unlock()

	if !ok {
		logger.Logf(logger.Allow, "voice", "no command for: %s", heard)
		return false
	}

	if l.cfg.Notify != nil {
		if err := l.cfg.Notify.Notify(notifications.NotifyVoiceCommand, phrase); err != nil {
			logger.Log(logger.Allow, "voice", err)
		}
	}

	run := func() {
		if err := call(cb, heard); err != nil {
			logger.Log(logger.Allow, "voice", curated.Errorf(CallbackFailure, phrase, err))
		}
	}

	if l.dispatch == nil {
		run()
		return true
	}

	select {
	case l.dispatch <- run:
		return true
	default:
		logger.Logf(logger.Allow, "voice", "dispatch queue full: %s dropped", phrase)
		return false
	}
}

// call runs the callback and returns a panic in the callback as an error.
func call(cb Callback, heard string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return cb(heard)
}

// StartListening starts the recognition worker. Does nothing if the worker is
// already running.
func (l *Listener) StartListening() {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.sess != nil {
		select {
		case <-l.sess.done:
			// previous worker has ended by itself
		default:
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		ring:   NewRing(l.cfg.RingSize),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	l.sess = s

	go l.worker(ctx, s)
}

// StopListening stops the recognition worker and closes the capture device.
// It is safe to call StopListening() before StartListening(), more than once
// and from any goroutine.
func (l *Listener) StopListening() {
	l.crit.Lock()
	s := l.sess
	l.sess = nil
	l.crit.Unlock()

	if s == nil {
		return
	}

	s.cancel()
	_ = s.ring.Close()

	select {
	case <-s.done:
	case <-time.After(l.cfg.JoinTimeout):
		logger.Logf(logger.Allow, "voice", "worker did not stop within %s", l.cfg.JoinTimeout)
	}

	// the worker closes the stream when it ends but if the join timed out the
	// stream must be closed here
	s.closeStream()
}

// IsListening returns true if the recognition worker is running.
func (l *Listener) IsListening() bool {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.sess == nil {
		return false
	}
	select {
	case <-l.sess.done:
		return false
	default:
		return true
	}
}

func (l *Listener) worker(ctx context.Context, s *session) {
	defer close(s.done)
	defer s.closeStream()

	st, err := l.backend.Open(l.cfg.Format, l.cfg.ChunkSize, func(chunk []byte) {
		// the ring is closed when listening stops. further chunks are
		// discarded
		_, _ = s.ring.Write(chunk)
	})
	if err != nil {
		err = curated.Errorf(DeviceInitFailure, err)
		logger.Log(logger.Allow, "voice", err)
		if l.cfg.Notify != nil {
			_ = l.cfg.Notify.Notify(notifications.NotifyDeviceUnavailable, "voice")
		}
		return
	}
	if !s.setStream(st) {
		return
	}

	threshold := l.calibrate(ctx, s.ring)
	logger.Logf(logger.Allow, "voice", "listening (threshold %.1f)", threshold)

	for ctx.Err() == nil {
		utt, err := l.readUtterance(ctx, s.ring, threshold)
		if err != nil {
			return
		}
		if utt == nil {
			continue
		}

		if l.cfg.DumpDir != "" {
			l.dumped++
			if fn, err := dumpUtterance(l.cfg.DumpDir, l.dumped, *utt); err != nil {
				logger.Log(logger.Allow, "voice", err)
			} else {
				logger.Logf(logger.Allow, "voice", "utterance saved to %s", fn)
			}
		}

		text, err := l.recognizer.Transcribe(ctx, *utt)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			if curated.Has(err, RecognitionServiceFailure) {
				logger.Log(logger.Allow, "voice", err)
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.cfg.Backoff):
				}
				continue
			}

			if !curated.Has(err, RecognitionTransientFailure) {
				err = curated.Errorf(RecognitionTransientFailure, err)
			}
			logger.Log(logger.Allow, "voice", err)
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		l.ProcessCommand(text)
	}
}

// energy returns the root mean square of the 16 bit samples in the chunk.
func energy(chunk []byte) float64 {
	n := len(chunk) / 2
	if n == 0 {
		return 0
	}
	var sum float64
	for i := range n {
		v := float64(int16(binary.LittleEndian.Uint16(chunk[i*2:])))
		sum += v * v
	}
	return math.Sqrt(sum / float64(n))
}

// calibrate measures the ambient noise level for the calibration period and
// returns the energy threshold for speech.
func (l *Listener) calibrate(ctx context.Context, ring *Ring) float64 {
	deadline := time.Now().Add(l.cfg.Calibration)
	chunk := make([]byte, l.chunkSize())

	var total float64
	var count int
	for ctx.Err() == nil && time.Now().Before(deadline) {
		n, err := ring.ReadTimeout(chunk, min(l.cfg.ReadTimeout, time.Until(deadline)))
		if n > 0 {
			total += energy(chunk[:n])
			count++
		}
		if err != nil && !errors.Is(err, ErrTimeout) {
			break
		}
	}

	var baseline float64
	if count > 0 {
		baseline = total / float64(count)
	}

	return max(baseline*l.cfg.SpeechFactor, l.cfg.MinThreshold)
}

func (l *Listener) chunkSize() int {
	if l.cfg.ChunkSize <= 0 {
		return 1024
	}
	return l.cfg.ChunkSize
}

// readUtterance returns the next utterance. a nil utterance is returned if no
// speech is heard before the read timeout. an error is returned if the ring is
// closed or the context cancelled.
func (l *Listener) readUtterance(ctx context.Context, ring *Ring, threshold float64) (*Utterance, error) {
	chunk := make([]byte, l.chunkSize())

	var pcm []byte
	var silence time.Duration

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := ring.ReadTimeout(chunk, l.cfg.ReadTimeout)
		if err != nil && !errors.Is(err, ErrTimeout) {
			if errors.Is(err, io.EOF) {
				return nil, err
			}
			return nil, fmt.Errorf("voice: %w", err)
		}

		if n == 0 {
			// nothing is heard during the timeout
			if pcm == nil {
				return nil, nil
			}
			silence += l.cfg.ReadTimeout
		} else if energy(chunk[:n]) > threshold {
			pcm = append(pcm, chunk[:n]...)
			silence = 0
		} else if pcm != nil {
			pcm = append(pcm, chunk[:n]...)
			silence += l.cfg.Format.Duration(n)
		}

		if pcm != nil {
			if silence >= l.cfg.Pause || l.cfg.Format.Duration(len(pcm)) >= l.cfg.MaxUtterance {
				return &Utterance{PCM: pcm, Format: l.cfg.Format}, nil
			}
		}
	}
}
