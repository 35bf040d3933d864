/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package commands

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"stampkit/internal/ui"
)

type env struct {
	icons string
	fonts string
}

func newEnv(t *testing.T) env {
	t.Helper()
	color.NoColor = true
	t.Setenv("STK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("STK_TELEMETRY_OPT_IN", "")
	t.Setenv("STK_ICON_DIR", "")
	t.Setenv("STK_FONT_DIRS", "")

	e := env{icons: t.TempDir(), fonts: t.TempDir()}
	f, err := os.Create(filepath.Join(e.icons, "bell.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 10))))
	require.NoError(t, f.Close())
	return e
}

func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--icons", e.icons, "--font-dir", e.fonts, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := newEnv(t).run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stampkit ")
}

func TestMenu(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "menu", "text")
	require.NoError(t, err)
	for _, want := range []string{"Text", "[ ] Italic", "[ ] Bold", "(*) Left", "( ) Center", "Justify >", "Font Name >", "Serif Default", "-----"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Eraser")

	out, err = e.run(t, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "bell")
	assert.Contains(t, out, "Use Mouse to Erase Icons")
	assert.Contains(t, out, "Font Name >")

	_, err = e.run(t, "menu", "shapes")
	assert.Error(t, err)
}

func TestActivate(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "activate", "stamper", "bell")
	require.NoError(t, err)
	assert.Contains(t, out, "stamp=(16,10)")
	assert.Contains(t, out, "cursor=glyph@(8,5)")

	out, err = e.run(t, "activate", "stamper", "Eraser")
	require.NoError(t, err)
	assert.Contains(t, out, "stamp=none")
	assert.Contains(t, out, "cursor=crosshair")

	out, err = e.run(t, "activate", "text", "Justify", "Center")
	require.NoError(t, err)
	assert.Contains(t, out, "justify=center")

	out, err = e.run(t, "activate", "text", "Set Size...", "--answer", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "message: abc is not a legal text size.")
	assert.Contains(t, out, "fontSize=36")

	out, err = e.run(t, "activate", "text", "Set Size...", "--answer", "48")
	require.NoError(t, err)
	assert.Contains(t, out, "fontSize=48")

	_, err = e.run(t, "activate", "text", "Underline")
	assert.True(t, errors.Is(err, ui.ErrUnknownCommand))
}

func TestFonts(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "fonts")
	require.NoError(t, err)
	assert.Contains(t, out, "no font families found")

	require.NoError(t, os.WriteFile(filepath.Join(e.fonts, "Go-Regular.ttf"), goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(e.fonts, "Go-Mono.ttf"), gomono.TTF, 0o644))

	out, err = e.run(t, "fonts", "--flat")
	require.NoError(t, err)
	assert.Equal(t, "Go\nGo Mono\n", out)

	out, err = e.run(t, "fonts")
	require.NoError(t, err)
	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "Go Mono")
}
