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
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"stampkit/internal/fonts"
	"stampkit/internal/partition"
)

func addFonts(topLevel *cobra.Command, ro *RootOptions) {
	var flat bool
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the installed font families as the Font Name menu groups them.",
		Example: `
stampkit fonts
stampkit fonts --flat --font-dir /usr/share/fonts/truetype
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := fonts.DirSource{Dirs: ro.Config().Fonts.Dirs}.Labels()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				_, _ = fmt.Fprintln(out, "no font families found")
				return nil
			}
			if flat {
				for _, n := range names {
					_, _ = fmt.Fprintln(out, n)
				}
				return nil
			}
			_, _ = fmt.Fprint(out, fontTable(partition.Partition(names)).String(), "\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "Print one family per line without grouping.")
	topLevel.AddCommand(cmd)
}

func fontTable(res partition.Result) *uitable.Table {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.MaxColWidth = 70
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("GROUP"), bold.Sprint("COUNT"), bold.Sprint("FAMILIES"))
	for _, n := range res {
		if !n.IsGroup() {
			tbl.AddRow("", 1, n.Label)
			continue
		}
		tbl.AddRow(n.Label, len(n.Children), strings.Join(n.Children, ", "))
	}
	return tbl
}
