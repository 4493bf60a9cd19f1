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

// Package fonts provides font faces to the engine through the Provider
// interface and draws text onto images.
//
// The Builtin provider knows the Go fonts by name ("goregular", "gomono" and
// "gobold") and the fixed size "basic" face. Any other name is treated as the
// path of a TrueType or OpenType file and is loaded through the resources
// package. If a font file cannot be loaded the provider falls back to
// goregular at the requested size.
package fonts
