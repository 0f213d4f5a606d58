// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"math"
	"strings"
	"testing"

	"github.com/cybrota/arbor/tree"
)

func TestStatsTable(t *testing.T) {
	perfect := newIntTree(4, 2, 6, 1, 3, 5, 7)
	out := statsTable(
		namedStats{Name: "perfect", Stats: perfect.Stats()},
		namedStats{Name: "empty", Stats: tree.New[int]().Stats()},
	)

	for _, row := range []string{
		"distinct values",
		"rotations",
		"sum of sums of node depths",
	} {
		if !strings.Contains(out, row) {
			t.Errorf("table has no %q row:\n%s", row, out)
		}
	}

	var depthRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "sum of sums of node depths") {
			depthRow = line
		}
	}
	if !strings.Contains(depthRow, "14") || !strings.Contains(depthRow, "-1") {
		t.Errorf("depth row = %q; want 14 for the perfect tree and -1 for the empty one", depthRow)
	}
}

func TestDepthsOf(t *testing.T) {
	d := depthsOf(newIntTree(4, 2, 6, 1, 3, 5, 7))
	if d.Nodes != 7 {
		t.Errorf("Nodes = %d; want 7", d.Nodes)
	}
	if d.Max != 2 {
		t.Errorf("Max = %d; want 2", d.Max)
	}
	if math.Abs(d.Mean-10.0/7) > 0.01 {
		t.Errorf("Mean = %f; want %f", d.Mean, 10.0/7)
	}

	vine := tree.New[int]()
	for i := 0; i < 100; i++ {
		vine.Insert(i)
	}
	if d := depthsOf(vine); d.Max != 99 || d.Nodes != 100 {
		t.Errorf("vine depths = %s; want max 99 over 100 nodes", d)
	}

	if d := depthsOf(tree.New[int]()); d != (depthDistribution{}) {
		t.Errorf("empty tree depths = %s; want zero", d)
	}
}

func TestHeightPlot(t *testing.T) {
	out := heightPlot([]float64{0, 1, 1, 2, 2, 2, 3}, 4, "height after each insert")
	if !strings.Contains(out, "height after each insert") {
		t.Errorf("plot has no caption:\n%s", out)
	}
	if got := heightPlot(nil, 4, "x"); got != emptyView {
		t.Errorf("heightPlot(nil) = %q; want %q", got, emptyView)
	}
}
