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
	"errors"
	"io"
	"sync"
	"time"
)

// ErrTimeout is returned by ReadTimeout() if the read could not be satisfied
// in time.
var ErrTimeout = errors.New("ring: read timed out")

// ErrClosed is returned by Write() after the Ring has been closed.
var ErrClosed = errors.New("ring: closed")

// Ring is a bounded byte queue. It is written to by the capture device and
// read by the recognition worker.
//
// When the Ring is full the oldest bytes are discarded to make room for new
// bytes. Reads block until the requested number of bytes is available. Closing
// the Ring wakes all blocked readers, which return whatever data is available.
type Ring struct {
	crit sync.Mutex
	cond *sync.Cond

	buf   []byte
	start int
	used  int

	closed  bool
	dropped int
}

// NewRing is the preferred method of initialisation for the Ring type.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	r := &Ring{buf: make([]byte, size)}
	r.cond = sync.NewCond(&r.crit)
	return r
}

// Write implements the io.Writer interface. Write never blocks.
func (r *Ring) Write(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	if r.closed {
		return 0, ErrClosed
	}

	n := len(p)

	// only the most recent bytes can fit
	if len(p) > len(r.buf) {
		r.dropped += len(p) - len(r.buf)
		p = p[len(p)-len(r.buf):]
	}

	if over := r.used + len(p) - len(r.buf); over > 0 {
		r.start = (r.start + over) % len(r.buf)
		r.used -= over
		r.dropped += over
	}

	end := (r.start + r.used) % len(r.buf)
	c := copy(r.buf[end:], p)
	copy(r.buf, p[c:])
	r.used += len(p)

	r.cond.Broadcast()

	return n, nil
}

// take must be called with the lock held.
func (r *Ring) take(p []byte) int {
	n := min(len(p), r.used)
	c := copy(p[:n], r.buf[r.start:])
	copy(p[c:n], r.buf)
	r.start = (r.start + n) % len(r.buf)
	r.used -= n
	return n
}

// Read implements the io.Reader interface. Read blocks until len(p) bytes are
// available or until the Ring is closed. A closed and empty Ring returns
// io.EOF.
func (r *Ring) Read(p []byte) (int, error) {
	return r.read(p, nil)
}

// ReadTimeout is like Read but will return with ErrTimeout and the available
// data if the read could not be satisfied before the timeout.
func (r *Ring) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	expired := false

	t := time.AfterFunc(timeout, func() {
		r.crit.Lock()
		expired = true
		r.crit.Unlock()
		r.cond.Broadcast()
	})
	defer t.Stop()

	return r.read(p, &expired)
}

func (r *Ring) read(p []byte, expired *bool) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	// requests larger than the ring could never be satisfied
	want := min(len(p), len(r.buf))

	for r.used < want && !r.closed && (expired == nil || !*expired) {
		r.cond.Wait()
	}

	n := r.take(p)
	if n >= want {
		return n, nil
	}

	// the loop only ends early if the ring is closed or the read has expired
	if r.closed {
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
	return n, ErrTimeout
}

// Close the Ring. Blocked readers are woken. It is safe to call Close() more
// than once.
func (r *Ring) Close() error {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.closed = true
	r.cond.Broadcast()
	return nil
}

// Len returns the number of bytes in the Ring.
func (r *Ring) Len() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.used
}

// Dropped returns the number of bytes discarded because the Ring was full.
func (r *Ring) Dropped() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.dropped
}
