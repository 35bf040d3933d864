/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package command models user-facing actions that are rendered onto several
// presentation surfaces (button strip, pull-down menu) and kept in sync.
//
// A Command is a tagged union: plain commands only run an effect, toggle
// commands own an independent boolean, radio commands belong to exactly one
// RadioGroup. Selection state is mutated only by the owning ToggleSet or
// RadioGroup; surfaces read it and route user activations through Activate.
//
// Everything in this package runs on the UI event goroutine and is not safe
// for concurrent use.
package command

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection reports a select/toggle on a command that is not a
	// member of the group or set. It signals a wiring bug and is raised as a panic.
	ErrInvalidSelection = errors.New("command: invalid selection")
	// ErrAlreadyOwned is returned when a toggle or radio command is claimed twice.
	ErrAlreadyOwned = errors.New("command: already owned")
	// ErrBadDefault is returned for an out-of-range radio default index.
	ErrBadDefault = errors.New("command: default index out of range")
	// ErrKind is returned when a command of the wrong kind is handed to a container.
	ErrKind = errors.New("command: wrong kind")
)

// Kind tags the Command variant.
type Kind uint8

const (
	KindPlain Kind = iota
	KindToggle
	KindRadio
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindToggle:
		return "toggle"
	case KindRadio:
		return "radio"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Activation is passed to an Effect. Selected holds the post-change state
// for toggle and radio commands and is false for plain commands.
type Activation struct {
	Command  *Command
	Selected bool
}

// Effect is the side effect of a command.
type Effect func(Activation)

// Command is a named, effectful user action.
type Command struct {
	label   string
	glyph   string
	tooltip string
	preview string
	effect  Effect
	kind    Kind
	enabled bool

	selected bool
	group    *RadioGroup
	set      *ToggleSet
	onChange func(*Command)
}

// Option customizes a Command at construction time.
type Option func(*Command)

// WithGlyph sets the identifier of the icon shown for the command.
func WithGlyph(id string) Option { return func(c *Command) { c.glyph = id } }

// WithTooltip sets the short description shown on hover.
func WithTooltip(s string) Option { return func(c *Command) { c.tooltip = s } }

// WithPreview sets a rendering hint for the label, e.g. the font family a
// font-name entry should be drawn with.
func WithPreview(s string) Option { return func(c *Command) { c.preview = s } }

// Disabled creates the command in the disabled state.
func Disabled() Option { return func(c *Command) { c.enabled = false } }

func newCommand(kind Kind, label string, effect Effect, opts []Option) *Command {
	c := &Command{label: label, effect: effect, kind: kind, enabled: true}
	for _, o := range opts {
		o(c)
	}
	return c
}

// New creates a plain command.
func New(label string, effect Effect, opts ...Option) *Command {
	return newCommand(KindPlain, label, effect, opts)
}

// Toggle creates an unowned toggle command; hand it to NewToggleSet.
func Toggle(label string, effect Effect, opts ...Option) *Command {
	return newCommand(KindToggle, label, effect, opts)
}

// Radio creates an unowned radio command; hand it to NewRadioGroup.
func Radio(label string, effect Effect, opts ...Option) *Command {
	return newCommand(KindRadio, label, effect, opts)
}

func (c *Command) Label() string   { return c.label }
func (c *Command) Glyph() string   { return c.glyph }
func (c *Command) Tooltip() string { return c.tooltip }
func (c *Command) Preview() string { return c.preview }
func (c *Command) Kind() Kind      { return c.kind }
func (c *Command) Enabled() bool   { return c.enabled }

// Selected reports the selection state; always false for plain commands.
func (c *Command) Selected() bool { return c.selected }

// GroupID returns the id of the owning RadioGroup, or "".
func (c *Command) GroupID() string {
	if c.group == nil {
		return ""
	}
	return c.group.id
}

// SetEnabled enables or disables the command. Disabled commands ignore Activate.
func (c *Command) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	c.changed()
}

// Activate is the user-driven path used by surfaces: it toggles, selects or
// simply runs the command depending on its kind. Disabled commands do nothing.
func (c *Command) Activate() {
	if !c.enabled {
		return
	}
	switch c.kind {
	case KindToggle:
		if c.set == nil {
			panic(fmt.Errorf("%w: toggle %q has no set", ErrInvalidSelection, c.label))
		}
		c.set.Toggle(c)
	case KindRadio:
		if c.group == nil {
			panic(fmt.Errorf("%w: radio %q has no group", ErrInvalidSelection, c.label))
		}
		c.group.Select(c)
	default:
		c.invoke()
	}
}

func (c *Command) invoke() {
	if c.effect != nil {
		c.effect(Activation{Command: c, Selected: c.selected})
	}
}

// setSelectedSilently is the only write path for selection state. It never
// runs the effect.
func (c *Command) setSelectedSilently(v bool) { c.selected = v }

func (c *Command) changed() {
	if c.onChange != nil {
		c.onChange(c)
	}
}

func (c *Command) String() string {
	return fmt.Sprintf("%s %q", c.kind, c.label)
}
