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
	"stampkit/internal/partition"
)

type entry struct {
	cmd *Command
	sub *Registry
	sep bool
}

// Registry is an ordered list of commands, separators and nested sections
// built once per UI context. Sub-registries created with AddSubmenu share the
// root's bookkeeping: groups, toggle sets and change listeners.
type Registry struct {
	label    string
	root     *Registry
	entries  []entry
	trailing *Command

	groups    []*RadioGroup
	sets      []*ToggleSet
	listeners []func(*Command)
	log       *slog.Logger
}

// NewRegistry creates an empty root registry.
func NewRegistry(label string) *Registry {
	r := &Registry{label: label, log: applog.WithComponent("command").With(slog.String("menu", label))}
	r.root = r
	return r
}

func (r *Registry) Label() string { return r.label }

func (r *Registry) track(c *Command) {
	root := r.root
	c.onChange = root.notify
}

func (r *Registry) notify(c *Command) {
	for _, fn := range r.root.listeners {
		fn(c)
	}
}

// OnChange registers fn to run whenever the selection or enabled state of a
// command in the registry changes, including silent resets. Listeners are
// for surfaces to refresh their state; they are not command effects.
func (r *Registry) OnChange(fn func(*Command)) {
	r.root.listeners = append(r.root.listeners, fn)
}

// Add appends plain commands. Toggle and radio commands must be added through
// their owning set or group.
func (r *Registry) Add(cmds ...*Command) error {
	for _, c := range cmds {
		if c.kind != KindPlain {
			return fmt.Errorf("registry %q: %w: %s must be added via its set or group", r.label, ErrKind, c)
		}
	}
	for _, c := range cmds {
		r.track(c)
		r.entries = append(r.entries, entry{cmd: c})
	}
	return nil
}

// AddToggleSet appends the members of s in order and makes s part of ResetAll.
func (r *Registry) AddToggleSet(s *ToggleSet) {
	r.root.sets = append(r.root.sets, s)
	for _, m := range s.members {
		r.track(m)
		r.entries = append(r.entries, entry{cmd: m})
	}
}

// AddRadioGroup appends the members of g in order and makes g part of ResetAll.
func (r *Registry) AddRadioGroup(g *RadioGroup) {
	r.root.groups = append(r.root.groups, g)
	for _, m := range g.members {
		r.track(m)
		r.entries = append(r.entries, entry{cmd: m})
	}
}

func (r *Registry) AddSeparator() {
	r.entries = append(r.entries, entry{sep: true})
}

// AddSubmenu appends a nested section and returns it for population.
func (r *Registry) AddSubmenu(label string) *Registry {
	sub := &Registry{label: label, root: r.root, log: r.log}
	r.entries = append(r.entries, entry{sub: sub})
	return sub
}

// AddChoices appends one command per label, built by mk. Short lists are
// added flat; long ones are split into alphabetic sub-menus by
// partition.Partition. labels must already be sorted with partition.SortLabels.
func (r *Registry) AddChoices(labels []string, mk func(label string) *Command) error {
	p := partition.Partition(labels)
	r.log.Debug("choices", slog.Int("labels", len(labels)), slog.Int("nodes", len(p)))
	for _, n := range p {
		if !n.IsGroup() {
			if err := r.Add(mk(n.Label)); err != nil {
				return err
			}
			continue
		}
		sub := r.AddSubmenu(n.Label)
		for _, l := range n.Children {
			if err := sub.Add(mk(l)); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetTrailing sets the always-last command, rendered after a separator.
func (r *Registry) SetTrailing(c *Command) error {
	if c.kind != KindPlain {
		return fmt.Errorf("registry %q: %w: trailing %s", r.label, ErrKind, c)
	}
	r.track(c)
	r.trailing = c
	return nil
}

// Trailing returns the visually separated last command, or nil.
func (r *Registry) Trailing() *Command { return r.trailing }

// ForEachCommand replays the registry onto s in order.
func (r *Registry) ForEachCommand(s Surface) {
	for _, e := range r.entries {
		switch {
		case e.sep:
			s.AddSeparator()
		case e.sub != nil:
			e.sub.ForEachCommand(s.AddGroup(e.sub.label))
		default:
			s.AddCommand(e.cmd)
		}
	}
	if r.trailing != nil {
		s.AddSeparator()
		s.AddCommand(r.trailing)
	}
}

// ResetAll restores every group and toggle set to its default without
// running any effect.
func (r *Registry) ResetAll() {
	root := r.root
	for _, g := range root.groups {
		g.ResetToDefault()
	}
	for _, s := range root.sets {
		s.ResetToDefault()
	}
	root.log.Debug("reset all", slog.Int("groups", len(root.groups)), slog.Int("toggle_sets", len(root.sets)))
}

// Commands returns every command in traversal order, sub-menus included.
func (r *Registry) Commands() []*Command {
	var out []*Command
	for _, e := range r.entries {
		switch {
		case e.sub != nil:
			out = append(out, e.sub.Commands()...)
		case e.cmd != nil:
			out = append(out, e.cmd)
		}
	}
	if r.trailing != nil {
		out = append(out, r.trailing)
	}
	return out
}

// Find resolves a command by its label path, e.g. Find("Justify", "Center").
// It returns nil if nothing matches.
func (r *Registry) Find(path ...string) *Command {
	if len(path) == 0 {
		return nil
	}
	head := path[0]
	for _, e := range r.entries {
		switch {
		case e.sub != nil && e.sub.label == head:
			if c := e.sub.Find(path[1:]...); c != nil {
				return c
			}
		case e.cmd != nil && len(path) == 1 && e.cmd.label == head:
			return e.cmd
		}
	}
	if r.trailing != nil && len(path) == 1 && r.trailing.label == head {
		return r.trailing
	}
	return nil
}
