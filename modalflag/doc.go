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

// Package modalflag parses command lines that are made up of modes, each mode
// having its own set of flags. For example:
//
//	stagehand RUN -fps 30 -headless
//	stagehand VERSION
//
// The Modes type wraps the flag package. A new group of flags is started with
// NewMode() and the sub-modes that may follow the flags are named with
// AddSubModes(). The first sub-mode is the default and is selected when no
// sub-mode is named on the command line.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fps := md.AddInt("fps", 0, "target frame rate")
//		...
//	}
//
// Sub-mode names are compared case insensitively. Help is printed to the
// Output writer automatically when the -help flag is found.
package modalflag
