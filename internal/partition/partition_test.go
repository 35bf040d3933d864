/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package partition

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsFor(spec map[rune]int, order string) []string {
	var out []string
	for _, r := range order {
		for i := 0; i < spec[r]; i++ {
			out = append(out, fmt.Sprintf("%c%02d", r, i))
		}
	}
	return out
}

func groupLabels(p Result) []string {
	var out []string
	for _, g := range p.Groups() {
		out = append(out, g.Label)
	}
	return out
}

func TestFlatThreshold(t *testing.T) {
	labels := labelsFor(map[rune]int{'A': 10, 'M': 10}, "AM")
	require.Len(t, labels, FlatThreshold)

	p := Partition(labels)
	require.Len(t, p, FlatThreshold)
	assert.Empty(t, p.Groups())
	assert.Equal(t, labels, p.Leaves())

	labels = append(labels, "Z00")
	p = Partition(labels)
	assert.NotEmpty(t, p.Groups(), "21 labels must be grouped")
	assert.Equal(t, labels, p.Leaves())
}

func TestEmptyAndShortInput(t *testing.T) {
	assert.Empty(t, Partition(nil))
	p := Partition([]string{"Arial"})
	require.Len(t, p, 1)
	assert.False(t, p[0].IsGroup())
	assert.Equal(t, "Arial", p[0].Label)
}

func TestTailOfFourClosesBucket(t *testing.T) {
	labels := labelsFor(map[rune]int{'A': 20, 'B': 3, 'C': 1}, "ABC")
	p := Partition(labels)

	assert.Equal(t, []string{"A", "B to C"}, groupLabels(p))
	require.Len(t, p, 2)
	assert.Len(t, p[0].Children, 20)
	assert.Len(t, p[1].Children, 4)
	assert.Equal(t, labels, p.Leaves())
}

func TestTailOfThreeMerges(t *testing.T) {
	labels := labelsFor(map[rune]int{'A': 20, 'B': 2, 'C': 1}, "ABC")
	p := Partition(labels)

	require.Len(t, p, 1)
	assert.Equal(t, "A to C", p[0].Label)
	assert.Len(t, p[0].Children, 23)
	assert.Equal(t, labels, p.Leaves())
}

func TestSmallLettersAccumulateIntoRanges(t *testing.T) {
	labels := labelsFor(map[rune]int{'A': 5, 'B': 5, 'C': 5, 'D': 5, 'E': 5, 'F': 5}, "ABCDEF")
	p := Partition(labels)

	// A+B+C reaches 15 >= MaxBucket with 15 remaining; D+E+F is closed at exhaustion.
	assert.Equal(t, []string{"A to C", "D to F"}, groupLabels(p))
	assert.Equal(t, labels, p.Leaves())
}

func TestGapsInAlphabetAreSpanned(t *testing.T) {
	labels := labelsFor(map[rune]int{'A': 13, 'D': 13, 'X': 2}, "ADX")
	p := Partition(labels)

	// After A closes the next bucket starts at the empty letter B, and the
	// two X labels are too short a tail to stand alone.
	assert.Equal(t, []string{"A", "B to X"}, groupLabels(p))
	assert.Equal(t, labels, p.Leaves())
}

func TestLastLetterTakesEverythingLeft(t *testing.T) {
	labels := labelsFor(map[rune]int{'A': 12, 'Y': 12, 'Z': 3}, "AYZ")
	labels = append(labels, "Étoile", "Øresund")
	p := Partition(labels)

	assert.Equal(t, labels, p.Leaves())
	last := p[len(p)-1]
	assert.Contains(t, last.Children, "Øresund")
	assert.True(t, strings.HasSuffix(last.Label, "Z"), last.Label)
}

func TestLeadingLetterIsCaseFolded(t *testing.T) {
	labels := []string{"abadi", "Arial", "arial black", "Bahnschrift", "bitstream"}
	for i := 0; len(labels) < 24; i++ {
		labels = append(labels, fmt.Sprintf("c%02d", i))
	}
	SortLabels(labels)
	require.True(t, IsSorted(labels))

	p := Partition(labels)
	assert.Equal(t, labels, p.Leaves())
	assert.Equal(t, []string{"A to C"}, groupLabels(p))
}

func TestNonLettersFallIntoFirstBucket(t *testing.T) {
	labels := []string{"3270", "8514oem"}
	labels = append(labels, labelsFor(map[rune]int{'A': 12, 'B': 10}, "AB")...)
	p := Partition(labels)

	require.NotEmpty(t, p)
	assert.Equal(t, "A", p[0].Label)
	assert.Equal(t, "3270", p[0].Children[0])
	assert.Equal(t, labels, p.Leaves())
}

func TestPartitionIsLossless(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	letters := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123"
	for round := 0; round < 200; round++ {
		n := rng.Intn(120)
		labels := make([]string, n)
		for i := range labels {
			b := make([]byte, 1+rng.Intn(6))
			for j := range b {
				b[j] = letters[rng.Intn(len(letters))]
			}
			labels[i] = string(b)
		}
		SortLabels(labels)
		want := append([]string(nil), labels...)

		p := Partition(labels)
		require.Equal(t, want, p.Leaves(), "round %d", round)
		if n > FlatThreshold {
			for _, node := range p {
				require.True(t, node.IsGroup(), "round %d", round)
				require.NotEmpty(t, node.Children, "round %d", round)
			}
		}
	}
}

func TestSortLabels(t *testing.T) {
	labels := []string{"b", "A", "a", "C", "B"}
	SortLabels(labels)
	assert.Equal(t, []string{"A", "a", "b", "B", "C"}, labels)
	assert.True(t, IsSorted(labels))
	assert.False(t, IsSorted([]string{"b", "a"}))
}
