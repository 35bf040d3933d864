//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"bytes"
	"image"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stampkit/internal/command"
)

// menuSurface renders a registry into a fyne menu. Items are indexed by
// command so state changes can be pushed without a rebuild.
type menuSurface struct {
	menu     *fyne.Menu
	activate func(*command.Command)
	items    map[*command.Command]*fyne.MenuItem
}

func (s *menuSurface) AddCommand(c *command.Command) {
	it := fyne.NewMenuItem(c.Label(), func() { s.activate(c) })
	syncMenuItem(it, c)
	s.items[c] = it
	s.menu.Items = append(s.menu.Items, it)
}

func (s *menuSurface) AddSeparator() {
	s.menu.Items = append(s.menu.Items, fyne.NewMenuItemSeparator())
}

func (s *menuSurface) AddGroup(label string) command.Surface {
	parent := fyne.NewMenuItem(label, nil)
	parent.ChildMenu = fyne.NewMenu(label)
	s.menu.Items = append(s.menu.Items, parent)
	return &menuSurface{menu: parent.ChildMenu, activate: s.activate, items: s.items}
}

func syncMenuItem(it *fyne.MenuItem, c *command.Command) {
	it.Checked = c.Selected()
	it.Disabled = !c.Enabled()
}

// newMenu builds the pull-down menu for r and keeps it in sync; refresh is
// called after every state change.
func newMenu(r *command.Registry, activate func(*command.Command), refresh func()) *fyne.Menu {
	s := &menuSurface{menu: fyne.NewMenu(r.Label()), activate: activate, items: map[*command.Command]*fyne.MenuItem{}}
	r.ForEachCommand(s)
	r.OnChange(func(c *command.Command) {
		if it, ok := s.items[c]; ok {
			syncMenuItem(it, c)
			if refresh != nil {
				refresh()
			}
		}
	})
	return s.menu
}

// toolbarSurface renders commands as icon buttons. Submenus are flattened.
type toolbarSurface struct {
	box      *fyne.Container
	glyph    func(id string) image.Image
	activate func(*command.Command)
	buttons  map[*command.Command]*widget.Button
}

func (s *toolbarSurface) AddCommand(c *command.Command) {
	b := widget.NewButtonWithIcon("", glyphResource(c.Glyph(), s.glyph(c.Glyph())), func() { s.activate(c) })
	if b.Icon == nil {
		b.SetText(c.Label())
	}
	syncButton(b, c)
	s.buttons[c] = b
	s.box.Add(b)
}

func (s *toolbarSurface) AddSeparator() { s.box.Add(widget.NewSeparator()) }

func (s *toolbarSurface) AddGroup(string) command.Surface { return s }

func syncButton(b *widget.Button, c *command.Command) {
	if c.Selected() {
		b.Importance = widget.HighImportance
	} else {
		b.Importance = widget.MediumImportance
	}
	if c.Enabled() {
		b.Enable()
	} else {
		b.Disable()
	}
	b.Refresh()
}

func newToolbar(r *command.Registry, glyph func(string) image.Image, vertical bool, activate func(*command.Command)) *fyne.Container {
	box := container.NewHBox()
	if vertical {
		box = container.NewVBox()
	}
	s := &toolbarSurface{box: box, glyph: glyph, activate: activate, buttons: map[*command.Command]*widget.Button{}}
	r.ForEachCommand(s)
	r.OnChange(func(c *command.Command) {
		if b, ok := s.buttons[c]; ok {
			syncButton(b, c)
		}
	})
	return box
}

// glyphResource encodes img as a PNG resource; nil when there is nothing to show.
func glyphResource(name string, img image.Image) fyne.Resource {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return fyne.NewStaticResource(name+".png", buf.Bytes())
}
