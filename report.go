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
	"bytes"
	"fmt"
	"strconv"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cybrota/arbor/tree"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

type namedStats struct {
	Name  string
	Stats tree.Stats
}

// statsTable lays out the statistics of several trees side by side, one
// column per tree.
func statsTable(columns ...namedStats) string {
	var buf bytes.Buffer
	tbl := tablewriter.NewWriter(&buf)

	header := []string{"Metric"}
	for _, c := range columns {
		header = append(header, c.Name)
	}
	tbl.SetHeader(header)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	rows := []struct {
		label string
		value func(tree.Stats) int
	}{
		{"distinct values", func(s tree.Stats) int { return s.Size }},
		{"values", func(s tree.Stats) int { return s.Len }},
		{"height", func(s tree.Stats) int { return s.Height }},
		{"rotations", func(s tree.Stats) int { return s.Rotations }},
		{"sum of subtree heights", func(s tree.Stats) int { return s.SumSubtreeHeights }},
		{"sum of sums of subtree heights", func(s tree.Stats) int { return s.SumOfSumSubtreeHeights }},
		{"sum of node depths", func(s tree.Stats) int { return s.SumNodeDepths }},
		{"sum of sums of node depths", func(s tree.Stats) int { return s.SumOfSumNodeDepths }},
	}
	for _, r := range rows {
		line := []string{r.label}
		for _, c := range columns {
			line = append(line, strconv.Itoa(r.value(c.Stats)))
		}
		tbl.Append(line)
	}
	tbl.Render()
	return buf.String()
}

type depthDistribution struct {
	Nodes int64
	Mean  float64
	P50   int64
	P90   int64
	Max   int64
}

func (d depthDistribution) String() string {
	return fmt.Sprintf("nodes=%d mean=%.2f p50=%d p90=%d max=%d", d.Nodes, d.Mean, d.P50, d.P90, d.Max)
}

// depthsOf records the depth of every distinct value.
func depthsOf[T any](t *tree.Tree[T]) depthDistribution {
	// Depths never exceed the node count; two significant figures keep every
	// value below 256 exact.
	hist := hdrhistogram.New(0, int64(max(t.Size(), 2)), 2)
	t.Walk(tree.PreOrder, func(e tree.Entry[T]) bool {
		_ = hist.RecordValue(int64(e.Depth))
		return true
	})
	if hist.TotalCount() == 0 {
		return depthDistribution{}
	}
	return depthDistribution{
		Nodes: hist.TotalCount(),
		Mean:  hist.Mean(),
		P50:   hist.ValueAtQuantile(50),
		P90:   hist.ValueAtQuantile(90),
		Max:   hist.Max(),
	}
}

// heightPlot charts a height series, one point per insertion.
func heightPlot(series []float64, rows int, caption string) string {
	if len(series) == 0 {
		return emptyView
	}
	return asciigraph.Plot(series, asciigraph.Height(rows), asciigraph.Caption(caption))
}
