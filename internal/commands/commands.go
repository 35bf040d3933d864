/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package commands holds the stampkit command line.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"stampkit/internal/config"
	"stampkit/internal/drawing"
	applog "stampkit/internal/log"
	"stampkit/internal/telemetry"
	"stampkit/internal/textmenu"
	"stampkit/internal/ui"
)

// RootOptions are the persistent flags shared by every subcommand.
type RootOptions struct {
	IconDir  string
	FontDirs []string
	LogLevel string

	cfg config.AppConfig
}

// Config returns the loaded configuration with flag overrides applied.
func (o *RootOptions) Config() config.AppConfig { return o.cfg }

func (o *RootOptions) load() {
	cfg, err := config.Load()
	if o.IconDir != "" {
		cfg.Stamper.IconDir = o.IconDir
	}
	if len(o.FontDirs) > 0 {
		cfg.Fonts.Dirs = o.FontDirs
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	if err != nil {
		applog.WithComponent("cli").Warn("config file ignored", slog.Any("err", err))
	}
	if cfg.General.TelemetryOptIn {
		tc := telemetry.FromEnv()
		tc.OptIn = true
		telemetry.SetDefault(telemetry.New(tc))
	}
	o.cfg = cfg
}

// session builds a headless session on a fresh in-memory canvas.
func (o *RootOptions) session(dialogs textmenu.Dialogs) (*ui.Session, *drawing.Canvas, error) {
	canvas := drawing.NewCanvas()
	s, err := ui.NewSession(o.cfg, ui.SessionDeps{
		Canvas:    canvas,
		Dialogs:   dialogs,
		Telemetry: telemetry.Default(),
	})
	return s, canvas, err
}

func New() *cobra.Command {
	ro := &RootOptions{}
	cmd := &cobra.Command{
		Use:           "stampkit",
		Short:         "Stamp icons and style text with synchronized menus and toolbars.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ro.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&ro.IconDir, "icons", "", "Directory holding the stamp icons (overrides config).")
	cmd.PersistentFlags().StringSliceVar(&ro.FontDirs, "font-dir", nil, "Font directory to scan; repeatable (overrides config).")
	cmd.PersistentFlags().StringVar(&ro.LogLevel, "log-level", "", "Log level: debug, info, warn or error.")

	AddCommands(cmd, ro)
	return cmd
}

func AddCommands(topLevel *cobra.Command, ro *RootOptions) {
	addVersion(topLevel)
	addMenu(topLevel, ro)
	addFonts(topLevel, ro)
	addActivate(topLevel, ro)
	addUI(topLevel, ro)
}
