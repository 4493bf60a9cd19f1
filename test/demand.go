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

import "testing"

// DemandEquality is the same as ExpectEquality() except that the test stops
// on failure. Use it for values that later checks depend on, such as the
// length of a slice that is about to be indexed.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	equality(t, t.Fatalf, v, expectedValue, tags...)
}

// DemandSuccess is the same as ExpectSuccess() except that the test stops on
// failure.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	success(t, t.Fatalf, v, tags...)
}

// DemandFailure is the same as ExpectFailure() except that the test stops on
// failure.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	failure(t, t.Fatalf, v, tags...)
}
