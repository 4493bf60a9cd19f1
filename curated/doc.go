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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and are differentiated by the
// pattern string used to create them rather than by the formatted message.
//
//	e := curated.Errorf("registry: undefined handle %s", h)
//
//	if curated.Is(e, "registry: undefined handle %s") {
//		...
//	}
//
// Patterns should be stored as suitably named const strings in the package
// that raises them. Has() checks whether a pattern occurs anywhere in the
// error chain, including errors wrapped as values of another curated error:
//
//	f := curated.Errorf("stage: %v", e)
//	curated.Has(f, "registry: undefined handle %s") // true
//	curated.Is(f, "registry: undefined handle %s")  // false
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts (parts being separated by ": ") are removed. This means that
// each layer can wrap freely without producing messages like "stage: stage:
// device failed".
//
// Curated errors also implement Unwrap() so that they interoperate with
// errors.Is() and errors.As() from the standard library. Only error values
// in the values list are considered as wrapped.
package curated
