/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stampkit/internal/command"
	"stampkit/internal/surface"
	"stampkit/internal/textmenu"
)

func addMenu(topLevel *cobra.Command, ro *RootOptions) {
	cmd := &cobra.Command{
		Use:   "menu [stamper|text]",
		Short: "Print the menus with their current state.",
		Example: `
stampkit menu
stampkit menu text --font-dir ./fonts
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"stamper", "text"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := ro.session(&textmenu.Scripted{})
			if err != nil {
				return err
			}
			menus := s.Menus()
			if len(args) == 1 {
				r := s.Menu(args[0])
				if r == nil {
					return fmt.Errorf("unknown menu %q", args[0])
				}
				menus = []*command.Registry{r}
			}
			out := cmd.OutOrStdout()
			for i, r := range menus {
				if i > 0 {
					_, _ = fmt.Fprintln(out)
				}
				_, _ = fmt.Fprintln(out, surface.Render(r).String())
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
