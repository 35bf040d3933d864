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

// ToggleSet owns toggle commands with independent boolean state. Every member
// starts, and resets to, unselected.
type ToggleSet struct {
	members []*Command
	log     *slog.Logger
}

// NewToggleSet claims members for a new set.
func NewToggleSet(members ...*Command) (*ToggleSet, error) {
	for _, m := range members {
		if m.kind != KindToggle {
			return nil, fmt.Errorf("toggle set: %w: %s", ErrKind, m)
		}
		if m.set != nil {
			return nil, fmt.Errorf("toggle set: %w: %s", ErrAlreadyOwned, m)
		}
	}
	s := &ToggleSet{members: append([]*Command(nil), members...), log: applog.WithComponent("command")}
	for _, m := range s.members {
		m.set = s
		m.setSelectedSilently(false)
	}
	return s, nil
}

// Members returns the members in display order.
func (s *ToggleSet) Members() []*Command { return append([]*Command(nil), s.members...) }

// Toggle flips c and then runs its effect with the new value. Panics with
// ErrInvalidSelection if c is not a member.
func (s *ToggleSet) Toggle(c *Command) {
	if c == nil || c.set != s {
		panic(fmt.Errorf("%w: %v is not a member of this toggle set", ErrInvalidSelection, c))
	}
	c.setSelectedSilently(!c.selected)
	s.log.Debug("toggle", slog.String("command", c.label), slog.Bool("selected", c.selected))
	c.changed()
	c.invoke()
}

// ResetToDefault clears every member without running any effect.
func (s *ToggleSet) ResetToDefault() {
	for _, m := range s.members {
		if m.selected {
			m.setSelectedSilently(false)
			m.changed()
		}
	}
}
