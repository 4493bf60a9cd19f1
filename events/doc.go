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

// Package events defines the event codes, envelopes and payloads that flow
// through the engine, and the Classifier that sorts raw events into
// categories.
//
// A RawEvent is what an input source produces: a Code and a free-form
// payload. The Classifier wraps the raw event in an Envelope tagged with its
// Category. The category decides which device manager receives the envelope.
//
// The category table is built once, by NewClassifier(), from a list of named
// codes. Names are grouped by prefix:
//
//	AUDIO   -> CategoryAudio
//	JOY     -> CategoryJoystick
//	KEY     -> CategoryKeyboard
//	MIDI    -> CategoryMidi
//	MOUSE   -> CategoryMouse
//	TEXT    -> CategoryText
//	WINDOW  -> CategoryWindow
//
// Names that match no prefix are placed in CategoryGame, along with the three
// well-known codes FRAMETICK, GAMEEVENT and MENUSELECTION.
//
// Device managers derive new envelopes from raw ones (a key chord or a mouse
// entering a target for example). These are created with Synthesize() and are
// marked as such so that a manager never feeds a derived envelope back into
// the rule that created it.
package events
