/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package commands

import (
	"github.com/spf13/cobra"

	"stampkit/internal/ui"
)

func addUI(topLevel *cobra.Command, ro *RootOptions) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Launch the desktop window (build with -tags fyne).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ui.Run(ro.Config())
		},
	}
	topLevel.AddCommand(cmd)
}
