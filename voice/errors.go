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

package voice

// Sentinal error patterns.
const (
	RecognitionTransientFailure = "recognition failure: %v"
	RecognitionServiceFailure   = "recognition service failure: %v"
	CallbackFailure             = "voice callback failure: %s: %v"
	DeviceInitFailure           = "voice device init failure: %v"
)
