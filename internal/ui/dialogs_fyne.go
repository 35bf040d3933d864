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
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// fyneDialogs implements textmenu.Dialogs with modal fyne dialogs.
type fyneDialogs struct {
	w fyne.Window
}

func (d *fyneDialogs) prompt(title, label, current string, done func(string)) {
	e := widget.NewEntry()
	e.SetText(current)
	form := dialog.NewForm(title, "OK", "Cancel", []*widget.FormItem{widget.NewFormItem(label, e)}, func(ok bool) {
		if ok {
			done(e.Text)
		}
	}, d.w)
	form.Resize(fyne.NewSize(420, form.MinSize().Height))
	form.Show()
}

func (d *fyneDialogs) PromptText(title, current string, done func(string)) {
	d.prompt("Text", title, current, done)
}

func (d *fyneDialogs) PromptValue(message, current string, done func(string)) {
	d.prompt("Input", message, current, done)
}

func (d *fyneDialogs) ChooseColor(title string, current color.Color, done func(color.Color)) {
	p := dialog.NewColorPicker(title, "", done, d.w)
	p.Advanced = true
	if current != nil {
		p.SetColor(current)
	}
	p.Show()
}

func (d *fyneDialogs) ShowMessage(msg string) {
	dialog.ShowInformation("Text", msg, d.w)
}
