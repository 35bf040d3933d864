/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textmenu

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Scripted answers dialogs from a queue, for headless runs and tests. An
// exhausted queue behaves like the user pressing Cancel. Colours are given
// as hex strings such as "#c03020".
type Scripted struct {
	Answers  []string
	Prompts  []string
	Messages []string
}

func (s *Scripted) next(prompt string) (string, bool) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return "", false
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, true
}

func (s *Scripted) PromptText(title, _ string, done func(string)) {
	if a, ok := s.next(title); ok {
		done(a)
	}
}

func (s *Scripted) PromptValue(message, _ string, done func(string)) {
	if a, ok := s.next(message); ok {
		done(a)
	}
}

func (s *Scripted) ChooseColor(title string, _ color.Color, done func(color.Color)) {
	a, ok := s.next(title)
	if !ok {
		return
	}
	c, err := colorful.Hex(strings.TrimSpace(a))
	if err != nil {
		s.ShowMessage(a + " is not a colour.")
		return
	}
	done(c)
}

func (s *Scripted) ShowMessage(msg string) { s.Messages = append(s.Messages, msg) }
