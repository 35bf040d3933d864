/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package command

import (
	"fmt"
	"log/slog"

	applog "stampkit/internal/log"
)

// RadioGroup is a mutual exclusion group: exactly one member is selected at
// all times.
type RadioGroup struct {
	id           string
	members      []*Command
	defaultIndex int
	current      int
	log          *slog.Logger
}

// NewRadioGroup claims members for a new group and selects
// members[defaultIndex] without running any effect.
func NewRadioGroup(id string, defaultIndex int, members ...*Command) (*RadioGroup, error) {
	if defaultIndex < 0 || defaultIndex >= len(members) {
		return nil, fmt.Errorf("radio group %q: %w: %d of %d", id, ErrBadDefault, defaultIndex, len(members))
	}
	for _, m := range members {
		if m.kind != KindRadio {
			return nil, fmt.Errorf("radio group %q: %w: %s", id, ErrKind, m)
		}
		if m.group != nil {
			return nil, fmt.Errorf("radio group %q: %w: %s belongs to %q", id, ErrAlreadyOwned, m, m.group.id)
		}
	}
	g := &RadioGroup{
		id:           id,
		members:      append([]*Command(nil), members...),
		defaultIndex: defaultIndex,
		current:      defaultIndex,
		log:          applog.WithComponent("command").With(slog.String("group", id)),
	}
	for i, m := range g.members {
		m.group = g
		m.setSelectedSilently(i == defaultIndex)
	}
	return g, nil
}

func (g *RadioGroup) ID() string { return g.id }

// Members returns the members in display order.
func (g *RadioGroup) Members() []*Command { return append([]*Command(nil), g.members...) }

// Selected returns the currently selected member.
func (g *RadioGroup) Selected() *Command { return g.members[g.current] }

// Default returns the member selected by ResetToDefault.
func (g *RadioGroup) Default() *Command { return g.members[g.defaultIndex] }

func (g *RadioGroup) indexOf(c *Command) int {
	if c == nil || c.group != g {
		return -1
	}
	for i, m := range g.members {
		if m == c {
			return i
		}
	}
	return -1
}

// Select deselects the current member, selects c and then runs c's effect.
// Selecting the already selected member is a no-op and does not re-run the
// effect. Panics with ErrInvalidSelection if c is not a member.
func (g *RadioGroup) Select(c *Command) {
	i := g.indexOf(c)
	if i < 0 {
		panic(fmt.Errorf("%w: %v is not a member of radio group %q", ErrInvalidSelection, c, g.id))
	}
	if i == g.current {
		return
	}
	prev := g.members[g.current]
	prev.setSelectedSilently(false)
	c.setSelectedSilently(true)
	g.current = i
	g.log.Debug("select", slog.String("from", prev.label), slog.String("to", c.label))
	prev.changed()
	c.changed()
	c.invoke()
}

// ResetToDefault restores the default selection without running any effect.
func (g *RadioGroup) ResetToDefault() {
	if g.current == g.defaultIndex {
		return
	}
	prev := g.members[g.current]
	prev.setSelectedSilently(false)
	def := g.members[g.defaultIndex]
	def.setSelectedSilently(true)
	g.current = g.defaultIndex
	g.log.Debug("reset", slog.String("to", def.label))
	prev.changed()
	def.changed()
}
