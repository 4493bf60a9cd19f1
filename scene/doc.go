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

// Package scene defines the Scene interface and the Base type that
// implements most of it.
//
// A scene owns a tree of Nodes. Each Node has a dirty level:
//
//	Clean        not updated and not redrawn
//	DirtyOnce    updated and redrawn on the next frame and then Clean
//	DirtyAlways  updated and redrawn every frame
//
// When a node is dirty its children are made dirty before its OnUpdate
// function is called. A scene can itself be marked dirty, which happens when
// it is activated. A dirty scene makes every node dirty for one frame and
// repaints the entire background so the first frame after activation is a
// full redraw.
//
// Render() returns the areas of the surface that have changed. Areas that a
// node used to occupy are repainted with the scene background before the nodes
// that overlap those areas are drawn again.
//
// Behaviour is added to a node by composition. A node with an OnDraw function
// is drawn, a node with an OnUpdate function is updated and a node marked as
// Interactable is a target for the mouse manager.
//
// Scenes are also proxies. Handlers added with Handle() are consulted by the
// device managers when the scene is active.
package scene
