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
	"image"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"stampkit/internal/drawing"
)

// placedStamp is one stamped icon, positioned by its top-left corner.
type placedStamp struct {
	img image.Image
	pos fyne.Position
}

func (p placedStamp) contains(pt fyne.Position) bool {
	b := p.img.Bounds()
	return pt.X >= p.pos.X && pt.Y >= p.pos.Y &&
		pt.X < p.pos.X+float32(b.Dx()) && pt.Y < p.pos.Y+float32(b.Dy())
}

// glyphCursor shows a stamp image as the mouse cursor.
type glyphCursor struct {
	img  image.Image
	x, y int
}

func (g glyphCursor) Image() (image.Image, int, int) { return g.img, g.x, g.y }

// StampBoard is the drawing surface: clicking stamps the current icon, or
// removes the topmost icon under the pointer while erasing. It implements
// drawing.Context on top of an in-memory drawing.Canvas.
type StampBoard struct {
	widget.BaseWidget
	model     *drawing.Canvas
	stamps    []placedStamp
	OnRepaint func()
}

func NewStampBoard() *StampBoard {
	b := &StampBoard{model: drawing.NewCanvas()}
	b.ExtendBaseWidget(b)
	return b
}

func (b *StampBoard) SetCurrentStampImage(img image.Image) { b.model.SetCurrentStampImage(img) }

func (b *StampBoard) SetCursorGlyph(img image.Image, hotspotX, hotspotY int) {
	b.model.SetCursorGlyph(img, hotspotX, hotspotY)
}

func (b *StampBoard) SetTextAttribute(name string, value any) { b.model.SetTextAttribute(name, value) }

func (b *StampBoard) TextAttribute(name string) any { return b.model.TextAttribute(name) }

func (b *StampBoard) Repaint() {
	b.model.Repaint()
	b.Refresh()
	if b.OnRepaint != nil {
		b.OnRepaint()
	}
}

// Reset clears all stamps and restores the default text attributes.
func (b *StampBoard) Reset() {
	b.model.Reset()
	b.stamps = nil
	b.Refresh()
}

// Summary describes the current tool and text state.
func (b *StampBoard) Summary() string { return b.model.Summary() }

// Cursor implements desktop.Cursorable.
func (b *StampBoard) Cursor() desktop.Cursor {
	c := b.model.Cursor
	if c.Crosshair() {
		return desktop.CrosshairCursor
	}
	return glyphCursor{img: c.Glyph, x: c.HotspotX, y: c.HotspotY}
}

// Tapped implements fyne.Tappable.
func (b *StampBoard) Tapped(e *fyne.PointEvent) {
	if img := b.model.Stamp; img != nil {
		c := b.model.Cursor
		pos := e.Position.Subtract(fyne.NewPos(float32(c.HotspotX), float32(c.HotspotY)))
		b.stamps = append(b.stamps, placedStamp{img: img, pos: pos})
		b.Refresh()
		return
	}
	for i := len(b.stamps) - 1; i >= 0; i-- {
		if b.stamps[i].contains(e.Position) {
			b.stamps = append(b.stamps[:i], b.stamps[i+1:]...)
			b.Refresh()
			return
		}
	}
}

func (b *StampBoard) MinSize() fyne.Size { return fyne.NewSize(640, 480) }

func (b *StampBoard) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{
		b:    b,
		bg:   canvas.NewRectangle(color.White),
		text: canvas.NewText("", color.Black),
	}
	r.Refresh()
	return r
}

type boardRenderer struct {
	b       *StampBoard
	bg      *canvas.Rectangle
	text    *canvas.Text
	images  []*canvas.Image
	objects []fyne.CanvasObject
}

func (r *boardRenderer) Destroy()                     {}
func (r *boardRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardRenderer) MinSize() fyne.Size           { return r.b.MinSize() }

func (r *boardRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.text.Move(fyne.NewPos(16, 16))
	r.text.Resize(fyne.NewSize(size.Width-32, r.text.MinSize().Height))
	for i, im := range r.images {
		p := r.b.stamps[i]
		bb := p.img.Bounds()
		im.Resize(fyne.NewSize(float32(bb.Dx()), float32(bb.Dy())))
		im.Move(p.pos)
	}
}

func (r *boardRenderer) Refresh() {
	a := r.b.model.Attrs
	r.text.Text = attrString(a, drawing.AttrText)
	if n, ok := a[drawing.AttrFontSize].(int); ok {
		r.text.TextSize = float32(n)
	}
	if c, ok := a[drawing.AttrColor].(color.Color); ok {
		r.text.Color = c
	}
	bold, _ := a[drawing.AttrBold].(bool)
	italic, _ := a[drawing.AttrItalic].(bool)
	mono := strings.Contains(strings.ToLower(attrString(a, drawing.AttrFontName)), "mono")
	r.text.TextStyle = fyne.TextStyle{Bold: bold, Italic: italic, Monospace: mono}
	switch a[drawing.AttrJustify] {
	case drawing.JustifyRight:
		r.text.Alignment = fyne.TextAlignTrailing
	case drawing.JustifyCenter:
		r.text.Alignment = fyne.TextAlignCenter
	default:
		r.text.Alignment = fyne.TextAlignLeading
	}

	r.images = r.images[:0]
	r.objects = []fyne.CanvasObject{r.bg}
	for _, p := range r.b.stamps {
		im := canvas.NewImageFromImage(p.img)
		im.FillMode = canvas.ImageFillOriginal
		r.images = append(r.images, im)
		r.objects = append(r.objects, im)
	}
	r.objects = append(r.objects, r.text)
	r.Layout(r.b.Size())
	canvas.Refresh(r.b)
}

func attrString(a map[string]any, name string) string {
	s, _ := a[name].(string)
	return s
}
