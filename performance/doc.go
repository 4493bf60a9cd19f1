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

// Package performance monitors the frame pacing of the running scene.
//
// The Monitor returned by Pacing() is shared by the engine. The stage tells
// it which scene is active and what the target frame rate is, and after every
// frame it calls TrackSample() with the measured rate and the time spent
// processing the frame.
//
// The Monitor keeps a bounded history of samples for each scene and for the
// application as a whole. From that history it can:
//
//   - smooth the delta time given to scenes with AdaptiveDelta()
//   - report how much of each frame is spare with SpareTimeStats()
//   - grade the achieved frame rate with PerformanceGrade()
//   - summarise the session with ShutdownReport() and PerSceneReport()
//
// RunProfiler() is a helper for creating CPU, memory and trace profiles of a
// function.
package performance
