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

// Package resources prepares paths for the files the engine reads and writes
// and provides the persistence interface used by the rest of the engine.
//
// The JoinPath() function returns the path to the resource directory/file
// specified in the arguments. It creates directories as required but does not
// otherwise touch or create files.
//
// For builds with the "release" build tag the path returned by JoinPath() is
// rooted in the user's configuration directory. On modern Linux systems the
// full path would be something like:
//
//	/home/user/.config/stagehand/
//
// For non-release builds the path is rooted in the current working directory:
//
//	.stagehand
//
// The Provider interface is how the engine saves snapshots and loads
// preference and binding files. Dir is the implementation that reads and
// writes files below a directory.
package resources
