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
	"context"
	"image/color"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"stampkit/internal/command"
	"stampkit/internal/config"
	"stampkit/internal/crash"
	applog "stampkit/internal/log"
	"stampkit/internal/telemetry"
	"stampkit/internal/version"
)

// variantTheme pins the default theme to one variant.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t variantTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, t.variant)
}

// Run starts the desktop window with the Stamper and Text menus, the stamp
// toolbar and the drawing board.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("version", version.String()))
	defer crash.Recover("")

	tel := telemetry.Default()
	defer tel.Flush(context.Background())

	fyneApp := app.NewWithID("stampkit")
	switch strings.ToLower(cfg.General.Theme) {
	case "dark":
		fyneApp.Settings().SetTheme(variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		fyneApp.Settings().SetTheme(variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	}

	w := fyneApp.NewWindow("StampKit")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1000)
	winH := prefs.IntWithFallback("window.height", 700)
	if winW < 640 {
		winW = 640
	}
	if winH < 480 {
		winH = 480
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	board := NewStampBoard()
	s, err := NewSession(cfg, SessionDeps{Canvas: board, Dialogs: &fyneDialogs{w: w}, Telemetry: tel})
	if err != nil {
		l.Error("session setup failed", slog.Any("err", err))
		return err
	}

	status := widget.NewLabel("")
	updateStatus := func() {
		status.SetText(strings.ReplaceAll(strings.TrimSpace(board.Summary()), "\n", "   "))
	}
	board.OnRepaint = updateStatus

	var mainMenu *fyne.MainMenu
	refresh := func() {
		if mainMenu != nil {
			mainMenu.Refresh()
		}
	}

	newItem := fyne.NewMenuItem("New", func() {
		s.NewDocument()
		updateStatus()
	})
	newItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl}
	menus := []*fyne.Menu{fyne.NewMenu("File", newItem)}
	for _, r := range s.Menus() {
		r := r
		menus = append(menus, newMenu(r, func(c *command.Command) { s.Activate(r, c) }, refresh))
	}
	mainMenu = fyne.NewMainMenu(menus...)
	w.SetMainMenu(mainMenu)

	stamps := s.Stamper().Registry()
	toolbar := newToolbar(stamps, s.Stamper().Glyph, cfg.Stamper.ToolbarVertical,
		func(c *command.Command) { s.Activate(stamps, c) })

	var content fyne.CanvasObject
	if cfg.Stamper.ToolbarVertical {
		content = container.NewBorder(nil, status, container.NewVScroll(toolbar), nil, board)
	} else {
		content = container.NewBorder(container.NewHScroll(toolbar), status, nil, nil, board)
	}
	w.SetContent(content)
	updateStatus()

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}
