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

package events

import "slices"

// Classifier maps event codes to categories. It is built once at startup and
// is read-only afterwards.
type Classifier struct {
	byCode     map[Code]Category
	byCategory map[Category][]Code
}

// NewClassifier creates a Classifier from a table of named codes. The
// DerivedCodes table and the well-known game codes are always included.
func NewClassifier(table []Named) *Classifier {
	cl := &Classifier{
		byCode:     make(map[Code]Category),
		byCategory: make(map[Category][]Code),
	}

	add := func(c Code, cat Category) {
		if _, ok := cl.byCode[c]; ok {
			return
		}
		cl.byCode[c] = cat
		cl.byCategory[cat] = append(cl.byCategory[cat], c)
	}

	for _, n := range table {
		add(n.Code, categoryByName(n.Name))
	}
	for _, n := range DerivedCodes {
		add(n.Code, categoryByName(n.Name))
	}
	for _, c := range gameCodes {
		add(c, CategoryGame)
	}

	for cat := range cl.byCategory {
		slices.Sort(cl.byCategory[cat])
	}

	return cl
}

// Category returns the category for the code. Codes that are not in the
// table are in the game category.
func (cl *Classifier) Category(c Code) Category {
	if cat, ok := cl.byCode[c]; ok {
		return cat
	}
	return CategoryGame
}

// Codes returns the codes in a category, in code order.
func (cl *Classifier) Codes(cat Category) []Code {
	return slices.Clone(cl.byCategory[cat])
}

// Classify wraps the raw event in an Envelope.
func (cl *Classifier) Classify(ev RawEvent) Envelope {
	return Envelope{
		Category: cl.Category(ev.Code),
		Code:     ev.Code,
		Payload:  ev.Payload,
	}
}

// Synthesize creates a derived Envelope.
func (cl *Classifier) Synthesize(c Code, payload any) Envelope {
	return Envelope{
		Category:    cl.Category(c),
		Code:        c,
		Payload:     payload,
		Synthesized: true,
	}
}
