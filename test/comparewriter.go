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
	"strings"
	"sync"
)

// CompareWriter is an io.Writer that collects everything written to it so
// that the output can be compared against an expected string. It is safe to
// write to from more than one goroutine.
type CompareWriter struct {
	crit sync.Mutex
	out  strings.Builder
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.out.Write(p)
}

// Clear forgets everything written so far.
func (w *CompareWriter) Clear() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.out.Reset()
}

// Compare returns true if the collected output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}

// String implements the fmt.Stringer interface.
func (w *CompareWriter) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.out.String()
}
