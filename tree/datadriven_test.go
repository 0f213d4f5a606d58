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

package tree

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

// formatLevels renders one line per level, duplicates as value(count).
func formatLevels(t *Tree[int]) string {
	var b strings.Builder
	row := -1
	t.Walk(LevelOrder, func(e Entry[int]) bool {
		switch {
		case e.Depth != row && row >= 0:
			b.WriteByte('\n')
		case e.Depth == row:
			b.WriteByte(' ')
		}
		row = e.Depth
		b.WriteString(formatEntry(e))
		return true
	})
	b.WriteByte('\n')
	return b.String()
}

func formatEntry(e Entry[int]) string {
	if e.Count > 1 {
		return fmt.Sprintf("%d(%d)", e.Value, e.Count)
	}
	return strconv.Itoa(e.Value)
}

func parseInts(t *testing.T, input string) []int {
	var out []int
	for _, f := range strings.Fields(input) {
		v, err := strconv.Atoi(f)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		tr := New[int]()
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "new":
				tr = New[int]()
				return ""

			case "insert":
				for _, v := range parseInts(t, d.Input) {
					if d.HasArg("balanced") {
						tr.InsertBalanced(v)
					} else {
						tr.Insert(v)
					}
				}
				return formatLevels(tr)

			case "remove":
				for _, v := range parseInts(t, d.Input) {
					if d.HasArg("balanced") {
						tr.RemoveBalanced(v)
					} else {
						tr.Remove(v)
					}
				}
				return formatLevels(tr)

			case "balance":
				tr.BalanceWholeTree()
				return formatLevels(tr)

			case "walk":
				var name string
				d.ScanArgs(t, "order", &name)
				order, err := ParseOrder(name)
				require.NoError(t, err)
				var parts []string
				tr.Walk(order, func(e Entry[int]) bool {
					parts = append(parts, formatEntry(e))
					return true
				})
				return strings.Join(parts, " ") + "\n"

			case "stats":
				s := tr.Stats()
				return fmt.Sprintf("size=%d len=%d height=%d\n", s.Size, s.Len, s.Height)

			case "rotations":
				return fmt.Sprintf("%d\n", tr.Rotations())

			case "check":
				check := tr.Check
				if d.HasArg("balanced") {
					check = tr.CheckBalanced
				}
				if err := check(); err != nil {
					return err.Error() + "\n"
				}
				return "ok\n"

			default:
				return fmt.Sprintf("unknown command: %s\n", d.Cmd)
			}
		})
	})
}
