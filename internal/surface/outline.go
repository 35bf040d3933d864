/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package surface renders command registries as text, for the CLI and for
// checking that every surface sees the same commands.
package surface

import (
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"stampkit/internal/command"
)

var (
	groupStyle    = color.New(color.Bold)
	disabledStyle = color.New(color.Faint)
	sepStyle      = color.New(color.Faint)
)

// Outline is a command.Surface that lays a registry out as an indented
// two-column table: entry and tooltip.
type Outline struct {
	tbl   *uitable.Table
	cmds  *[]*command.Command
	depth int
}

// NewOutline starts an outline with a title row.
func NewOutline(title string) *Outline {
	tbl := uitable.New()
	tbl.Separator = "   "
	tbl.MaxColWidth = 60
	if title != "" {
		tbl.AddRow(groupStyle.Sprint(title), "")
	}
	return &Outline{tbl: tbl, cmds: new([]*command.Command), depth: 1}
}

func (o *Outline) indent() string { return strings.Repeat("  ", o.depth) }

// Marker is the state prefix shown for c.
func Marker(c *command.Command) string {
	switch c.Kind() {
	case command.KindToggle:
		if c.Selected() {
			return "[x] "
		}
		return "[ ] "
	case command.KindRadio:
		if c.Selected() {
			return "(*) "
		}
		return "( ) "
	default:
		return "    "
	}
}

func (o *Outline) AddCommand(c *command.Command) {
	*o.cmds = append(*o.cmds, c)
	label := o.indent() + Marker(c) + c.Label()
	if !c.Enabled() {
		label = disabledStyle.Sprint(label + " (disabled)")
	}
	o.tbl.AddRow(label, c.Tooltip())
}

func (o *Outline) AddSeparator() {
	o.tbl.AddRow(sepStyle.Sprint(o.indent()+"    "+strings.Repeat("-", 12)), "")
}

func (o *Outline) AddGroup(label string) command.Surface {
	o.tbl.AddRow(groupStyle.Sprint(o.indent()+"    "+label+" >"), "")
	return &Outline{tbl: o.tbl, cmds: o.cmds, depth: o.depth + 1}
}

// Commands returns the commands rendered so far, in order.
func (o *Outline) Commands() []*command.Command { return append([]*command.Command(nil), *o.cmds...) }

func (o *Outline) String() string { return o.tbl.String() }

// Render replays r onto a fresh outline titled with the registry label.
func Render(r *command.Registry) *Outline {
	o := NewOutline(r.Label())
	r.ForEachCommand(o)
	return o
}
