/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package command

// Surface is a presentation target commands are rendered onto. A button
// strip and a pull-down menu both implement it; a Registry replays the same
// traversal onto each so they never diverge in content or order.
type Surface interface {
	AddCommand(c *Command)
	AddSeparator()
	// AddGroup opens a nested section (sub-menu) and returns the surface
	// its entries are rendered onto.
	AddGroup(label string) Surface
}
