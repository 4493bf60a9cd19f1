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

package demo

import (
	"image"

	"github.com/jetsetilly/stagehand/fonts"
	"github.com/jetsetilly/stagehand/logger"
	"github.com/jetsetilly/stagehand/scene"
	"github.com/jetsetilly/stagehand/voice"
)

// Demo is the pair of demonstration scenes.
type Demo struct {
	fonts fonts.Provider

	Title *Title
	Play  *Play
}

// New is the preferred method of initialisation for the Demo type. The scenes
// are laid out to fit bounds. The devices.Fonts manager is a suitable
// fonts.Provider.
func New(provider fonts.Provider, bounds image.Rectangle) *Demo {
	d := &Demo{fonts: provider}
	d.Title = newTitle(d, bounds)
	d.Play = newPlay(d, bounds)
	return d
}

// First returns the scene the demo starts with.
func (d *Demo) First() scene.Scene {
	return d.Title
}

// Switcher is the part of the stage used by the voice actions.
type Switcher interface {
	Current() scene.Scene
	RequestSwitch(next scene.Scene)
	Quit()
}

// VoiceActions returns the named actions for use with voice.Bindings.Apply().
// The actions are expected to be run on the main thread.
func (d *Demo) VoiceActions(sw Switcher) map[string]voice.Callback {
	return map[string]voice.Callback{
		"next": func(heard string) error {
			if sw.Current() == scene.Scene(d.Play) {
				sw.RequestSwitch(d.Title)
			} else {
				sw.RequestSwitch(d.Play)
			}
			return nil
		},
		"back": func(heard string) error {
			if sw.Current() == scene.Scene(d.Title) {
				logger.Logf(logger.Allow, "demo", "%q: already at the title", heard)
				return nil
			}
			sw.RequestSwitch(d.Title)
			return nil
		},
		"quit": func(heard string) error {
			sw.Quit()
			return nil
		},
	}
}

// DefaultBindings are used when there is no bindings file.
func DefaultBindings() voice.Bindings {
	return voice.Bindings{
		Commands: []voice.Binding{
			{Phrase: "next", Action: "next"},
			{Phrase: "next scene", Action: "next"},
			{Phrase: "start", Action: "next"},
			{Phrase: "back", Action: "back"},
			{Phrase: "go back", Action: "back"},
			{Phrase: "quit", Action: "quit"},
			{Phrase: "exit", Action: "quit"},
		},
	}
}
