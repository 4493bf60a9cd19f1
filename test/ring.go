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

package test

import (
	"fmt"
	"sync"
)

// RingWriter is an io.Writer that keeps the most recent bytes written to it
// and discards the rest. Use it to capture the tail of output from a long
// running test. It is safe to write to from more than one goroutine.
type RingWriter struct {
	crit  sync.Mutex
	limit int
	tail  []byte
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size is the number of bytes kept.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: size must be positive (%d)", size)
	}
	return &RingWriter{
		limit: size,
		tail:  make([]byte, 0, size),
	}, nil
}

// Write implements the io.Writer interface. It never fails.
func (r *RingWriter) Write(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := len(p)
	if n >= r.limit {
		r.tail = append(r.tail[:0], p[n-r.limit:]...)
		return n, nil
	}

	// make room by sliding the surviving bytes to the front
	if drop := len(r.tail) + n - r.limit; drop > 0 {
		r.tail = r.tail[:copy(r.tail, r.tail[drop:])]
	}
	r.tail = append(r.tail, p...)

	return n, nil
}

// Reset empties the ring writer.
func (r *RingWriter) Reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.tail = r.tail[:0]
}

// String implements the fmt.Stringer interface. The oldest byte is first.
func (r *RingWriter) String() string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return string(r.tail)
}
