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

// Package logger is the central logging facility for the engine. Entries are
// tagged with a short string identifying the area of the engine that created
// the entry:
//
//	logger.Log(logger.Allow, "stage", "switching to scene")
//	logger.Logf(logger.Allow, "voice", "heard %q", phrase)
//
// Consecutive identical entries are folded into a single entry with a repeat
// count, and the number of entries held is bounded. The first argument is a
// Permission, which allows a caller to veto its own log entries.
package logger
