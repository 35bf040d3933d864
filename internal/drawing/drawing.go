/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package drawing defines the narrow boundary between commands and the
// drawing surface they control, plus Canvas, a headless implementation that
// keeps the state in memory.
package drawing

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Text attribute names understood by SetTextAttribute.
const (
	AttrText       = "text"
	AttrFontName   = "fontName"
	AttrFontSize   = "fontSize"   // int, points
	AttrLineHeight = "lineHeight" // float64 multiplier
	AttrColor      = "color"      // color.Color
	AttrBold       = "bold"
	AttrItalic     = "italic"
	AttrJustify    = "justify" // Justify
)

// Justify is the horizontal alignment of the text item.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyRight
	JustifyCenter
)

func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyRight:
		return "right"
	case JustifyCenter:
		return "center"
	default:
		return fmt.Sprintf("justify(%d)", int(j))
	}
}

// Context is implemented by the drawing surface.
type Context interface {
	// SetCurrentStampImage selects the image stamped on click; nil stops stamping.
	SetCurrentStampImage(img image.Image)
	// SetCursorGlyph sets a custom cursor; a nil image selects the crosshair.
	SetCursorGlyph(img image.Image, hotspotX, hotspotY int)
	SetTextAttribute(name string, value any)
	// TextAttribute returns the current value, or nil if unset.
	TextAttribute(name string) any
	Repaint()
}

// Defaults are the text attributes of a freshly initialized document.
func Defaults() map[string]any {
	return map[string]any{
		AttrText:       "Hello World!",
		AttrFontName:   "Serif",
		AttrFontSize:   36,
		AttrLineHeight: 1.0,
		AttrColor:      color.Black,
		AttrBold:       false,
		AttrItalic:     false,
		AttrJustify:    JustifyLeft,
	}
}

// Cursor is the cursor state recorded by Canvas.
type Cursor struct {
	Glyph    image.Image
	HotspotX int
	HotspotY int
}

// Crosshair reports whether the default crosshair cursor is active.
func (c Cursor) Crosshair() bool { return c.Glyph == nil }

// Canvas is an in-memory Context. Calls is a log of every mutating call.
type Canvas struct {
	Stamp    image.Image
	Cursor   Cursor
	Attrs    map[string]any
	Repaints int
	Calls    []string
}

// NewCanvas returns a Canvas holding the default text attributes.
func NewCanvas() *Canvas {
	return &Canvas{Attrs: Defaults()}
}

func (c *Canvas) SetCurrentStampImage(img image.Image) {
	c.Stamp = img
	if img == nil {
		c.Calls = append(c.Calls, "stamp=nil")
		return
	}
	c.Calls = append(c.Calls, fmt.Sprintf("stamp=%v", img.Bounds().Size()))
}

func (c *Canvas) SetCursorGlyph(img image.Image, hotspotX, hotspotY int) {
	c.Cursor = Cursor{Glyph: img, HotspotX: hotspotX, HotspotY: hotspotY}
	if img == nil {
		c.Calls = append(c.Calls, "cursor=crosshair")
		return
	}
	c.Calls = append(c.Calls, fmt.Sprintf("cursor=%v@(%d,%d)", img.Bounds().Size(), hotspotX, hotspotY))
}

func (c *Canvas) SetTextAttribute(name string, value any) {
	if c.Attrs == nil {
		c.Attrs = Defaults()
	}
	c.Attrs[name] = value
	c.Calls = append(c.Calls, fmt.Sprintf("%s=%v", name, value))
}

func (c *Canvas) TextAttribute(name string) any { return c.Attrs[name] }

func (c *Canvas) Repaint() {
	c.Repaints++
	c.Calls = append(c.Calls, "repaint")
}

// Reset restores the defaults, as when a new document is started.
func (c *Canvas) Reset() {
	c.Stamp = nil
	c.Cursor = Cursor{}
	c.Attrs = Defaults()
	c.Calls = append(c.Calls, "reset")
}

// Summary renders the current state as "key=value" lines in a stable order.
func (c *Canvas) Summary() string {
	var b strings.Builder
	for _, k := range []string{AttrText, AttrFontName, AttrFontSize, AttrLineHeight, AttrColor, AttrBold, AttrItalic, AttrJustify} {
		fmt.Fprintf(&b, "%s=%v\n", k, c.Attrs[k])
	}
	if c.Stamp != nil {
		fmt.Fprintf(&b, "stamp=%v\n", c.Stamp.Bounds().Size())
	} else {
		b.WriteString("stamp=none\n")
	}
	if c.Cursor.Crosshair() {
		b.WriteString("cursor=crosshair\n")
	} else {
		fmt.Fprintf(&b, "cursor=glyph@(%d,%d)\n", c.Cursor.HotspotX, c.Cursor.HotspotY)
	}
	return b.String()
}
