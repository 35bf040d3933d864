/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package stamper offers one command per stamp icon plus an eraser, so the
// same set can be shown as a toolbar and as a "Stamper" menu. Activating an
// icon makes it the current stamp image and the cursor of the drawing surface.
package stamper

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"stampkit/internal/command"
	"stampkit/internal/drawing"
	applog "stampkit/internal/log"
)

const (
	MenuLabel      = "Stamper"
	EraserLabel    = "Eraser"
	EraserGlyph    = "eraser"
	StampTooltip   = "Use Mouse to Stamp this Icon"
	EraserTooltip  = "Use Mouse to Erase Icons"
	eraserGlyphDim = 32
)

// DefaultIcons are the icon names looked up when no manifest is present.
var DefaultIcons = []string{"bell", "camera", "flower", "star", "check", "crossout",
	"tux", "bomb", "keyboard", "lightbulb", "tv"}

// Icon is a loaded stamp image.
type Icon struct {
	Name    string
	Tooltip string
	Image   image.Image
}

// LoadIcons loads the icons of dir. When dir holds an icons.json manifest it
// decides names and order; otherwise names are looked up as <name>.png. Icons
// that cannot be loaded are skipped with a warning. An invalid manifest is an
// error.
func LoadIcons(dir string, names []string) ([]Icon, error) {
	l := applog.WithComponent("stamper")
	m, ok, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		m = DefaultManifest(names)
	}
	icons := make([]Icon, 0, len(m.Icons))
	for _, e := range m.Icons {
		file := e.File
		if file == "" {
			file = e.Name + ".png"
		}
		img, err := loadPNG(filepath.Join(dir, file))
		if err != nil {
			l.Warn("skip icon", slog.String("name", e.Name), slog.Any("err", err))
			continue
		}
		tip := e.Tooltip
		if tip == "" {
			tip = StampTooltip
		}
		icons = append(icons, Icon{Name: e.Name, Tooltip: tip, Image: img})
	}
	l.Debug("icons loaded", slog.String("dir", dir), slog.Int("count", len(icons)), slog.Bool("manifest", ok))
	return icons, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// EraserImage renders the eraser glyph: "DEL" in red on a white square.
func EraserImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, eraserGlyphDim, eraserGlyphDim))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0xff, A: 0xff}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(5, 20),
	}
	d.DrawString("DEL")
	return img
}

// Support owns the stamp commands for one drawing surface.
type Support struct {
	canvas   drawing.Context
	icons    []Icon
	glyphs   map[string]image.Image
	registry *command.Registry
}

// New builds the command registry for icons; the eraser is always present
// and always last.
func New(canvas drawing.Context, icons []Icon) (*Support, error) {
	s := &Support{
		canvas:   canvas,
		icons:    icons,
		glyphs:   make(map[string]image.Image, len(icons)+1),
		registry: command.NewRegistry(MenuLabel),
	}
	for _, ic := range icons {
		ic := ic
		s.glyphs[ic.Name] = ic.Image
		c := command.New(ic.Name, func(command.Activation) { s.stamp(ic.Image) },
			command.WithGlyph(ic.Name), command.WithTooltip(ic.Tooltip))
		if err := s.registry.Add(c); err != nil {
			return nil, err
		}
	}
	s.glyphs[EraserGlyph] = EraserImage()
	eraser := command.New(EraserLabel, func(command.Activation) { s.erase() },
		command.WithGlyph(EraserGlyph), command.WithTooltip(EraserTooltip))
	if err := s.registry.SetTrailing(eraser); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Support) stamp(img image.Image) {
	b := img.Bounds()
	s.canvas.SetCurrentStampImage(img)
	s.canvas.SetCursorGlyph(img, b.Dx()/2, b.Dy()/2)
}

func (s *Support) erase() {
	s.canvas.SetCurrentStampImage(nil)
	s.canvas.SetCursorGlyph(nil, 0, 0)
}

// Registry returns the commands in display order.
func (s *Support) Registry() *command.Registry { return s.registry }

// Icons returns the loaded icons.
func (s *Support) Icons() []Icon { return s.icons }

// Glyph resolves a command glyph id to its image, or nil.
func (s *Support) Glyph(id string) image.Image { return s.glyphs[id] }
