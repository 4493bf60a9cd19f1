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

// Package prefs holds typed preference values and persists them to disk.
//
// A preference is one of Bool, Int, Float or String. Each can be given hook
// functions that run just before and just after a new value is stored; a
// pre-hook returning an error prevents the value from being stored.
//
// Preferences are grouped into a Disk instance with Add() and are saved and
// loaded with Save() and Load(). The file format is one preference per line:
//
//	key :: value
//
// Entries in the file that are not part of the Disk instance are preserved
// when the file is saved. This allows more than one Disk to share a file.
//
// Values can be overridden from the command line with PushCommandLineStack().
// A command line group is a string of key/value pairs separated by
// semi-colons:
//
//	stage.fps::30; stage.update::all
//
// Command line values take precedence over the values in the file when Load()
// is called. Each value is consumed when it is used.
package prefs
