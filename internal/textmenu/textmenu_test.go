/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textmenu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stampkit/internal/command"
	"stampkit/internal/drawing"
	"stampkit/internal/fonts"
)

type failingSource struct{}

func (failingSource) Labels() ([]string, error) { return nil, errors.New("boom") }

func newMenu(t *testing.T, src fonts.LabelSource, answers ...string) (*Menu, *drawing.Canvas, *Scripted) {
	t.Helper()
	canvas := drawing.NewCanvas()
	dlg := &Scripted{Answers: answers}
	m, err := New(canvas, dlg, src)
	require.NoError(t, err)
	return m, canvas, dlg
}

func find(t *testing.T, m *Menu, path ...string) *command.Command {
	t.Helper()
	c := m.Registry().Find(path...)
	require.NotNil(t, c, "%v", path)
	return c
}

func TestMenuLayout(t *testing.T) {
	m, _, _ := newMenu(t, fonts.Static{"Arial", "Courier New"})
	var labels []string
	for _, c := range m.Registry().Commands() {
		labels = append(labels, c.Label())
	}
	assert.Equal(t, []string{
		ChangeText, SetSize, SetLineHeight, SetColor, Italic, Bold,
		JustifyLeft, JustifyRight, JustifyCenter,
		"Serif Default", "SansSerif Default", "Monospace Default", "Arial", "Courier New",
	}, labels)
	assert.True(t, find(t, m, JustifyMenu, JustifyLeft).Selected())
	assert.Equal(t, "Serif", find(t, m, FontNameMenu, "Serif Default").Preview())
}

func TestChangeText(t *testing.T) {
	m, canvas, dlg := newMenu(t, nil, "Bonjour", "   ")
	c := find(t, m, ChangeText)

	c.Activate()
	assert.Equal(t, "Bonjour", canvas.TextAttribute(drawing.AttrText))
	assert.Equal(t, 1, canvas.Repaints)

	c.Activate()
	assert.Equal(t, "Bonjour", canvas.TextAttribute(drawing.AttrText), "blank input is ignored")
	assert.Equal(t, 1, canvas.Repaints)

	c.Activate() // cancelled
	assert.Equal(t, []string{"Change Text", "Change Text", "Change Text"}, dlg.Prompts)
}

func TestSetSizeValidates(t *testing.T) {
	m, canvas, dlg := newMenu(t, nil, "48", "-3", "big", " 12 ")
	c := find(t, m, SetSize)
	for i := 0; i < 4; i++ {
		c.Activate()
	}
	assert.Equal(t, 12, canvas.TextAttribute(drawing.AttrFontSize))
	assert.Equal(t, []string{
		"-3 is not a legal text size.\nPlease enter a positive integer.",
		"big is not a legal text size.\nPlease enter a positive integer.",
	}, dlg.Messages)
	assert.Equal(t, 2, canvas.Repaints)
}

func TestSetLineHeightValidates(t *testing.T) {
	m, canvas, dlg := newMenu(t, nil, "1.5", "0", "NaN")
	c := find(t, m, SetLineHeight)
	for i := 0; i < 3; i++ {
		c.Activate()
	}
	assert.Equal(t, 1.5, canvas.TextAttribute(drawing.AttrLineHeight))
	require.Len(t, dlg.Messages, 2)
	assert.Equal(t, "0 is not a legal height line.\nPlease enter a positive real number.", dlg.Messages[0])
}

func TestSetColor(t *testing.T) {
	m, canvas, dlg := newMenu(t, nil, "#ff0000", "chartreuse")
	c := find(t, m, SetColor)
	c.Activate()
	got, ok := canvas.TextAttribute(drawing.AttrColor).(colorful.Color)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", got.Hex())

	c.Activate()
	assert.Len(t, dlg.Messages, 1)
	assert.Equal(t, 1, canvas.Repaints)
}

func TestStyleToggles(t *testing.T) {
	m, canvas, _ := newMenu(t, nil)
	bold := find(t, m, Bold)
	bold.Activate()
	assert.Equal(t, true, canvas.TextAttribute(drawing.AttrBold))
	bold.Activate()
	assert.Equal(t, false, canvas.TextAttribute(drawing.AttrBold))
	find(t, m, Italic).Activate()
	assert.Equal(t, true, canvas.TextAttribute(drawing.AttrItalic))
}

func TestJustify(t *testing.T) {
	m, canvas, _ := newMenu(t, nil)
	find(t, m, JustifyMenu, JustifyCenter).Activate()
	assert.Equal(t, drawing.JustifyCenter, canvas.TextAttribute(drawing.AttrJustify))
	assert.Equal(t, 1, canvas.Repaints)

	find(t, m, JustifyMenu, JustifyCenter).Activate()
	assert.Equal(t, 1, canvas.Repaints, "re-selecting must not repaint")
}

func TestSetDefaultsIsSilent(t *testing.T) {
	m, canvas, _ := newMenu(t, nil)
	find(t, m, Bold).Activate()
	find(t, m, Italic).Activate()
	find(t, m, JustifyMenu, JustifyRight).Activate()
	calls := len(canvas.Calls)

	canvas.Reset()
	m.SetDefaults()
	assert.Len(t, canvas.Calls, calls+1, "only the canvas reset is recorded")
	assert.False(t, find(t, m, Bold).Selected())
	assert.False(t, find(t, m, Italic).Selected())
	assert.True(t, find(t, m, JustifyMenu, JustifyLeft).Selected())
	assert.False(t, find(t, m, JustifyMenu, JustifyRight).Selected())
}

func TestFontMenuFlatAndPartitioned(t *testing.T) {
	var few fonts.Static
	for i := 0; i < 20; i++ {
		few = append(few, fmt.Sprintf("Font %02d", i))
	}
	m, canvas, _ := newMenu(t, few)
	find(t, m, FontNameMenu, "Font 07").Activate()
	assert.Equal(t, "Font 07", canvas.TextAttribute(drawing.AttrFontName))

	var many fonts.Static
	for _, r := range "ABCDEFG" {
		for i := 0; i < 5; i++ {
			many = append(many, fmt.Sprintf("%c%d", r, i))
		}
	}
	m, canvas, _ = newMenu(t, many)
	assert.Nil(t, m.Registry().Find(FontNameMenu, "B3"))
	c := find(t, m, FontNameMenu, "A to C", "B3")
	c.Activate()
	assert.Equal(t, "B3", canvas.TextAttribute(drawing.AttrFontName))
	find(t, m, FontNameMenu, "D to F", "E0")
	find(t, m, FontNameMenu, "G", "G4")
	find(t, m, FontNameMenu, "Monospace Default").Activate()
	assert.Equal(t, "Monospace", canvas.TextAttribute(drawing.AttrFontName))
}

func TestUnsortedFontsAreSorted(t *testing.T) {
	m, _, _ := newMenu(t, unsorted{"Zapf", "arial"})
	cmds := m.Registry().Commands()
	assert.Equal(t, "arial", cmds[len(cmds)-2].Label())
	assert.Equal(t, "Zapf", cmds[len(cmds)-1].Label())
}

type unsorted []string

func (u unsorted) Labels() ([]string, error) { return u, nil }

func TestFontSourceError(t *testing.T) {
	_, err := New(drawing.NewCanvas(), &Scripted{}, failingSource{})
	assert.ErrorContains(t, err, "boom")
}
