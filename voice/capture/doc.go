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

// Package capture provides audio capture backends for the voice listener.
//
// Every backend delivers signed 16-bit little-endian PCM in the requested
// Format. Data is delivered in chunks to a callback function that is run on a
// goroutine owned by the backend. The callback must not block for long.
//
// The SDL backend records from the default capture device. The WAVFile and
// MP3File backends decode a file and deliver it at real-time pace, which is
// useful for headless runs and for testing.
package capture
