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

package logger

import "io"

// the number of entries kept by the central logger
const centralEntries = 256

// central is the logger used by the package level functions. Every part of
// the application logs to it.
var central = NewLogger(centralEntries)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear removes every entry from the central logger.
func Clear() {
	central.Clear()
}

// Tail writes the most recent entries of the central logger to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho sets the writer that new entries of the central logger are also
// written to. A nil writer stops the echo.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}

// BorrowLog calls f with the entries of the central logger. The logger is
// locked for the duration of the call.
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
