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

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// report is either t.Errorf or t.Fatalf depending on whether the test can
// continue after a failure.
type report func(format string, args ...any)

// prefix formats the optional tags argument as the start of a failure message.
func prefix(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	var s strings.Builder
	for i, t := range tags {
		if i > 0 {
			s.WriteByte(' ')
		}
		fmt.Fprint(&s, t)
	}
	s.WriteString(": ")
	return s.String()
}

// succeeded decides whether v is a success value for its type. Only bool,
// error and the nil type can be tested.
//
//	bool -> true
//	error -> nil
//	nil -> always a success
func succeeded(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return v
	case error:
		return v == nil
	}

	t.Fatalf("%scannot test type %T for success or failure", prefix(tags...), v)
	return false
}

func equality[T comparable](t *testing.T, fail report, v T, want T, tags ...any) bool {
	t.Helper()
	if v == want {
		return true
	}
	fail("%s%T values differ: got '%v', want '%v'", prefix(tags...), v, v, want)
	return false
}

func success(t *testing.T, fail report, v any, tags ...any) bool {
	t.Helper()
	if succeeded(t, v, tags...) {
		return true
	}
	if err, ok := v.(error); ok {
		fail("%sunexpected error: %v", prefix(tags...), err)
	} else {
		fail("%s%T is not a success value", prefix(tags...), v)
	}
	return false
}

func failure(t *testing.T, fail report, v any, tags ...any) bool {
	t.Helper()
	if !succeeded(t, v, tags...) {
		return true
	}
	if v == nil {
		fail("%sgot nil where failure was expected", prefix(tags...))
	} else {
		fail("%s%T is not a failure value", prefix(tags...), v)
	}
	return false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	equality(t, t.Errorf, v, expectedValue, tags...)
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, v T, notExpectedValue T, tags ...any) {
	t.Helper()
	if v == notExpectedValue {
		t.Errorf("%s%T values are the same: '%v'", prefix(tags...), v, v)
	}
}

// ExpectApproximate tests whether a value is within a given tolerance of the
// expected value. The tolerance is a fraction of the expected value.
func ExpectApproximate[T ~int | ~float32 | ~float64](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) {
	t.Helper()
	if math.Abs(float64(v)-float64(expectedValue)) > math.Abs(float64(expectedValue)*tolerance) {
		t.Errorf("%s%T value '%v' is not within %.2f of '%v'", prefix(tags...), v, v, tolerance, expectedValue)
	}
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. A bool must be true and an error must be nil. The nil type always
// succeeds.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return success(t, t.Errorf, v, tags...)
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. A bool must be false and an error must not be nil. The nil type always
// fails.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return failure(t, t.Errorf, v, tags...)
}
