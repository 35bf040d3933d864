/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package partition regroups a long, sorted list of labels into alphabetic
// buckets of browsable size, e.g. installed font families into "A to C",
// "D", ... sub-menus.
package partition

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// FlatThreshold is the largest list presented without grouping.
	FlatThreshold = 20
	// MaxBucket is the size at which a bucket may be closed.
	MaxBucket = 12
	// MinTail is the least number of remaining labels that allows closing a
	// bucket; shorter tails are merged into it.
	MinTail = 4
)

const (
	firstLetter = 'a'
	lastLetter  = 'z'
)

// Node is either a leaf (Children == nil) holding one label, or a group
// whose Label is a letter range like "A" or "B to D".
type Node struct {
	Label    string
	Children []string
}

// IsGroup reports whether n is a group node.
func (n Node) IsGroup() bool { return n.Children != nil }

// Result is the ordered output of Partition.
type Result []Node

// Leaves concatenates all leaves in order. For any input it equals the input.
func (p Result) Leaves() []string {
	var out []string
	for _, n := range p {
		if n.IsGroup() {
			out = append(out, n.Children...)
		} else {
			out = append(out, n.Label)
		}
	}
	return out
}

// Groups returns only the group nodes.
func (p Result) Groups() []Node {
	var out []Node
	for _, n := range p {
		if n.IsGroup() {
			out = append(out, n)
		}
	}
	return out
}

var folder = cases.Fold()

func fold(s string) string { return folder.String(s) }

// leadingKey is the case-folded first rune of label.
func leadingKey(label string) rune {
	r, _ := utf8.DecodeRuneInString(fold(label))
	return r
}

// SortLabels sorts labels in place, case-insensitively, keeping the relative
// order of labels that fold to the same string.
func SortLabels(labels []string) {
	keys := make(map[string]string, len(labels))
	for _, l := range labels {
		if _, ok := keys[l]; !ok {
			keys[l] = fold(l)
		}
	}
	sort.SliceStable(labels, func(i, j int) bool { return keys[labels[i]] < keys[labels[j]] })
}

// IsSorted reports whether labels are in SortLabels order.
func IsSorted(labels []string) bool {
	for i := 1; i < len(labels); i++ {
		if fold(labels[i]) < fold(labels[i-1]) {
			return false
		}
	}
	return true
}

func rangeLabel(from, to rune) string {
	a := string(from - firstLetter + 'A')
	if from == to {
		return a
	}
	return a + " to " + string(to-firstLetter+'A')
}

// Partition groups labels, which must be sorted as by SortLabels.
//
// Lists of up to FlatThreshold labels come back as one leaf per label.
// Longer lists are scanned once with a ceiling letter ch starting at 'A':
// labels whose leading letter is <= ch (or any label once ch is 'Z') join the
// current bucket. When the next label is past ch the bucket is closed if the
// input is exhausted, or if it holds at least MaxBucket labels and at least
// MinTail labels remain; otherwise ch advances and the bucket keeps growing.
// The tail merge can yield buckets larger than MaxBucket.
//
// Unsorted input is a precondition violation: no label is lost, but letter
// ranges may not be contiguous.
func Partition(labels []string) Result {
	n := len(labels)
	if n <= FlatThreshold {
		out := make(Result, n)
		for i, l := range labels {
			out[i] = Node{Label: l}
		}
		return out
	}

	var out Result
	start, ch := rune(firstLetter), rune(firstLetter)
	bucket := make([]string, 0, MaxBucket)
	i := 0
	for i < n {
		for i < n && (leadingKey(labels[i]) <= ch || ch >= lastLetter) {
			bucket = append(bucket, labels[i])
			i++
		}
		remaining := n - i
		if remaining == 0 || (len(bucket) >= MaxBucket && remaining >= MinTail) {
			out = append(out, Node{Label: rangeLabel(start, ch), Children: bucket})
			bucket = make([]string, 0, MaxBucket)
			ch++
			start = ch
			continue
		}
		ch++
	}
	return out
}
