/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textmenu builds the "Text" menu controlling the text item of a
// drawing surface: content, size, line height, colour, italic/bold, justification
// and font family.
package textmenu

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"stampkit/internal/command"
	"stampkit/internal/drawing"
	"stampkit/internal/fonts"
	applog "stampkit/internal/log"
	"stampkit/internal/partition"
)

// Menu and command labels.
const (
	MenuLabel       = "Text"
	ChangeText      = "Change Text..."
	SetSize         = "Set Size..."
	SetLineHeight   = "Set Line Height..."
	SetColor        = "Set Color..."
	Italic          = "Italic"
	Bold            = "Bold"
	JustifyMenu     = "Justify"
	JustifyLeft     = "Left"
	JustifyRight    = "Right"
	JustifyCenter   = "Center"
	FontNameMenu    = "Font Name"
	basicFontSuffix = " Default"
)

// BasicFamilies are always offered first in the font menu.
var BasicFamilies = []string{"Serif", "SansSerif", "Monospace"}

// Dialogs is the modal input collaborator. Callbacks run only when the user
// confirms; cancelling does nothing.
type Dialogs interface {
	PromptText(title, current string, done func(string))
	PromptValue(message, current string, done func(string))
	ChooseColor(title string, current color.Color, done func(color.Color))
	ShowMessage(msg string)
}

// Menu owns the text commands of one drawing surface.
type Menu struct {
	canvas   drawing.Context
	dialogs  Dialogs
	registry *command.Registry
	style    *command.ToggleSet
	justify  *command.RadioGroup
	log      *slog.Logger
}

// New builds the menu. src is queried once for the installed font families.
func New(canvas drawing.Context, dialogs Dialogs, src fonts.LabelSource) (*Menu, error) {
	m := &Menu{
		canvas:   canvas,
		dialogs:  dialogs,
		registry: command.NewRegistry(MenuLabel),
		log:      applog.WithComponent("textmenu"),
	}
	r := m.registry
	if err := r.Add(command.New(ChangeText, m.changeText)); err != nil {
		return nil, err
	}
	r.AddSeparator()
	if err := r.Add(
		command.New(SetSize, m.setSize),
		command.New(SetLineHeight, m.setLineHeight),
		command.New(SetColor, m.setColor),
	); err != nil {
		return nil, err
	}

	style, err := command.NewToggleSet(
		command.Toggle(Italic, m.setFlag(drawing.AttrItalic)),
		command.Toggle(Bold, m.setFlag(drawing.AttrBold)),
	)
	if err != nil {
		return nil, err
	}
	m.style = style
	r.AddToggleSet(style)

	justify, err := command.NewRadioGroup("justify", 0,
		command.Radio(JustifyLeft, m.setJustify(drawing.JustifyLeft)),
		command.Radio(JustifyRight, m.setJustify(drawing.JustifyRight)),
		command.Radio(JustifyCenter, m.setJustify(drawing.JustifyCenter)),
	)
	if err != nil {
		return nil, err
	}
	m.justify = justify
	r.AddSubmenu(JustifyMenu).AddRadioGroup(justify)

	r.AddSeparator()
	if err := m.addFontMenu(r.AddSubmenu(FontNameMenu), src); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Menu) addFontMenu(fm *command.Registry, src fonts.LabelSource) error {
	for _, f := range BasicFamilies {
		if err := fm.Add(command.New(f+basicFontSuffix, m.setFont(f), command.WithPreview(f))); err != nil {
			return err
		}
	}
	fm.AddSeparator()
	if src == nil {
		return nil
	}
	families, err := src.Labels()
	if err != nil {
		return fmt.Errorf("list font families: %w", err)
	}
	if !partition.IsSorted(families) {
		m.log.Warn("font families not sorted; sorting", slog.Int("count", len(families)))
		families = append([]string(nil), families...)
		partition.SortLabels(families)
	}
	return fm.AddChoices(families, func(f string) *command.Command {
		return command.New(f, m.setFont(f), command.WithPreview(f))
	})
}

// Registry returns the menu commands in display order.
func (m *Menu) Registry() *command.Registry { return m.registry }

// SetDefaults makes the menu state match a freshly initialized text item:
// italic and bold cleared, justification Left. No effect runs.
func (m *Menu) SetDefaults() { m.registry.ResetAll() }

func (m *Menu) apply(name string, value any) {
	m.canvas.SetTextAttribute(name, value)
	m.canvas.Repaint()
}

func (m *Menu) changeText(command.Activation) {
	current, _ := m.canvas.TextAttribute(drawing.AttrText).(string)
	m.dialogs.PromptText("Change Text", current, func(s string) {
		if strings.TrimSpace(s) == "" {
			return
		}
		m.apply(drawing.AttrText, s)
	})
}

func (m *Menu) setSize(command.Activation) {
	current := fmt.Sprint(m.canvas.TextAttribute(drawing.AttrFontSize))
	m.dialogs.PromptValue("What font size do you want to use?", current, func(s string) {
		in := strings.TrimSpace(s)
		if in == "" {
			return
		}
		n, err := strconv.Atoi(in)
		if err != nil || n <= 0 {
			m.log.Debug("rejected font size", slog.String("input", s))
			m.dialogs.ShowMessage(fmt.Sprintf("%s is not a legal text size.\nPlease enter a positive integer.", s))
			return
		}
		m.apply(drawing.AttrFontSize, n)
	})
}

func (m *Menu) setLineHeight(command.Activation) {
	current := fmt.Sprint(m.canvas.TextAttribute(drawing.AttrLineHeight))
	m.dialogs.PromptValue("What line height do you want?", current, func(s string) {
		in := strings.TrimSpace(s)
		if in == "" {
			return
		}
		v, err := strconv.ParseFloat(in, 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			m.log.Debug("rejected line height", slog.String("input", s))
			m.dialogs.ShowMessage(fmt.Sprintf("%s is not a legal height line.\nPlease enter a positive real number.", s))
			return
		}
		m.apply(drawing.AttrLineHeight, v)
	})
}

func (m *Menu) setColor(command.Activation) {
	current, _ := m.canvas.TextAttribute(drawing.AttrColor).(color.Color)
	m.dialogs.ChooseColor("Select Text Color", current, func(c color.Color) {
		if c == nil {
			return
		}
		m.apply(drawing.AttrColor, c)
	})
}

func (m *Menu) setFlag(attr string) command.Effect {
	return func(a command.Activation) { m.apply(attr, a.Selected) }
}

func (m *Menu) setJustify(j drawing.Justify) command.Effect {
	return func(command.Activation) { m.apply(drawing.AttrJustify, j) }
}

func (m *Menu) setFont(family string) command.Effect {
	return func(command.Activation) { m.apply(drawing.AttrFontName, family) }
}
