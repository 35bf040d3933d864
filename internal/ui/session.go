/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"stampkit/internal/command"
	"stampkit/internal/config"
	"stampkit/internal/drawing"
	"stampkit/internal/fonts"
	applog "stampkit/internal/log"
	"stampkit/internal/stamper"
	"stampkit/internal/telemetry"
	"stampkit/internal/textmenu"
)

// ErrUnknownCommand is returned when a menu path does not resolve.
var ErrUnknownCommand = errors.New("unknown command")

// SessionDeps are the collaborators of a Session. Fonts defaults to the
// configured font directories; Telemetry may be nil.
type SessionDeps struct {
	Canvas    drawing.Context
	Dialogs   textmenu.Dialogs
	Fonts     fonts.LabelSource
	Telemetry *telemetry.Client
}

// Session wires the stamper and text menus to one drawing surface. It is
// shared by the desktop window and the command line.
type Session struct {
	canvas  drawing.Context
	stamper *stamper.Support
	text    *textmenu.Menu
	tel     *telemetry.Client
	log     *slog.Logger
}

// NewSession loads icons and font families per cfg and builds both menus.
func NewSession(cfg config.AppConfig, deps SessionDeps) (*Session, error) {
	l := applog.WithComponent("session")
	icons, err := stamper.LoadIcons(cfg.Stamper.IconDir, cfg.Stamper.Icons)
	if err != nil {
		return nil, fmt.Errorf("load icons: %w", err)
	}
	st, err := stamper.New(deps.Canvas, icons)
	if err != nil {
		return nil, err
	}
	src := deps.Fonts
	if src == nil {
		src = fonts.DirSource{Dirs: cfg.Fonts.Dirs}
	}
	tm, err := textmenu.New(deps.Canvas, deps.Dialogs, src)
	if err != nil {
		return nil, fmt.Errorf("text menu: %w", err)
	}
	l.Debug("session ready", slog.Int("icons", len(icons)))
	return &Session{canvas: deps.Canvas, stamper: st, text: tm, tel: deps.Telemetry, log: l}, nil
}

func (s *Session) Canvas() drawing.Context   { return s.canvas }
func (s *Session) Stamper() *stamper.Support { return s.stamper }
func (s *Session) Text() *textmenu.Menu      { return s.text }

// Menus returns the registries in menu bar order.
func (s *Session) Menus() []*command.Registry {
	return []*command.Registry{s.stamper.Registry(), s.text.Registry()}
}

// Menu looks a registry up by its label, ignoring case.
func (s *Session) Menu(name string) *command.Registry {
	for _, r := range s.Menus() {
		if strings.EqualFold(r.Label(), name) {
			return r
		}
	}
	return nil
}

// Activate is the single entry point surfaces use for user activations.
// Disabled commands and re-clicks on the selected radio member do nothing and
// are not reported.
func (s *Session) Activate(menu *command.Registry, c *command.Command) {
	effective := c.Enabled() && !(c.Kind() == command.KindRadio && c.Selected())
	c.Activate()
	if effective {
		s.tel.CommandActivated(menu.Label(), c.Label())
	}
}

// ActivatePath activates the command found under menu by label path.
func (s *Session) ActivatePath(menu string, path ...string) error {
	r := s.Menu(menu)
	if r == nil {
		return fmt.Errorf("%w: menu %q", ErrUnknownCommand, menu)
	}
	c := r.Find(path...)
	if c == nil {
		return fmt.Errorf("%w: %s > %s", ErrUnknownCommand, r.Label(), strings.Join(path, " > "))
	}
	s.Activate(r, c)
	return nil
}

// NewDocument clears the drawing and restores every menu default silently.
func (s *Session) NewDocument() {
	if rs, ok := s.canvas.(interface{ Reset() }); ok {
		rs.Reset()
	}
	s.text.SetDefaults()
	s.canvas.Repaint()
	s.log.Info("new document")
}
