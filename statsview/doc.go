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

// Package statsview runs a local HTTP server with runtime statistics of the
// engine. The server is only available when the statsview build tag is
// present:
//
//	go build -tags statsview .
//
// When launched, graphs of heap use, goroutines and GC pauses are viewable
// at:
//
//	localhost:12700/debug/statsview
//
// and the standard Go pprof endpoints at:
//
//	localhost:12700/debug/pprof/
package statsview
