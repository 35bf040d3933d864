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

	"stampkit/internal/textmenu"
)

func addActivate(topLevel *cobra.Command, ro *RootOptions) {
	var answers []string
	cmd := &cobra.Command{
		Use:   "activate <menu> <label>...",
		Short: "Activate one menu command on a blank drawing and print the result.",
		Example: `
stampkit activate stamper star
stampkit activate text "Justify" "Center"
stampkit activate text "Set Size..." --answer 48
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dlg := &textmenu.Scripted{Answers: answers}
			s, canvas, err := ro.session(dlg)
			if err != nil {
				return err
			}
			if err := s.ActivatePath(args[0], args[1:]...); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range dlg.Messages {
				_, _ = fmt.Fprintf(out, "message: %s\n", m)
			}
			_, _ = fmt.Fprint(out, canvas.Summary())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&answers, "answer", nil, "Answer for the next dialog prompt; repeatable. Prompts without an answer are cancelled.")
	topLevel.AddCommand(cmd)
}
