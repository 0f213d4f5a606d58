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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(walk func(Order, VisitFunc[int]), order Order) []int {
	var out []int
	walk(order, func(e Entry[int]) bool {
		out = append(out, e.Value)
		return true
	})
	return out
}

func TestWalkOrders(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80)

	expected := map[Order][]int{
		PreOrder:                  {50, 30, 20, 40, 70, 60, 80},
		InOrder:                   {20, 30, 40, 50, 60, 70, 80},
		PostOrder:                 {20, 40, 30, 60, 80, 70, 50},
		ReversePreOrder:           {50, 70, 80, 60, 30, 40, 20},
		ReverseInOrder:            {80, 70, 60, 50, 40, 30, 20},
		ReversePostOrder:          {80, 60, 70, 40, 20, 30, 50},
		LevelOrder:                {50, 30, 70, 20, 40, 60, 80},
		InvertedLevelOrder:        {50, 70, 30, 80, 60, 40, 20},
		ReverseLevelOrder:         {20, 40, 60, 80, 30, 70, 50},
		ReverseInvertedLevelOrder: {80, 60, 40, 20, 70, 30, 50},
	}
	require.Len(t, expected, len(Orders()))

	for order, want := range expected {
		t.Run(order.String(), func(t *testing.T) {
			require.Equal(t, want, collect(tr.WalkRecursive, order))
			require.Equal(t, want, collect(tr.WalkIterative, order))
			require.Equal(t, want, collect(tr.Walk, order))
		})
	}
}

func TestWalkReportsDepth(t *testing.T) {
	tr := build(50, 30, 70, 20)
	depths := map[int]int{}
	tr.Walk(PostOrder, func(e Entry[int]) bool {
		depths[e.Value] = e.Depth
		return true
	})
	require.Equal(t, map[int]int{50: 0, 30: 1, 70: 1, 20: 2}, depths)
}

// TestRecursiveAndIterativeAgree compares both forms, depth included, on
// random unbalanced trees.
func TestRecursiveAndIterativeAgree(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 42))
		tr := New[int]()
		n := rng.IntN(60)
		for i := 0; i < n; i++ {
			tr.Insert(rng.IntN(40))
		}

		for _, order := range Orders() {
			var rec, it []Entry[int]
			tr.WalkRecursive(order, func(e Entry[int]) bool {
				rec = append(rec, e)
				return true
			})
			tr.WalkIterative(order, func(e Entry[int]) bool {
				it = append(it, e)
				return true
			})
			require.Equal(t, rec, it, "seed %d order %s", seed, order)
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80)
	for _, order := range Orders() {
		for name, walk := range map[string]func(Order, VisitFunc[int]){
			"recursive": tr.WalkRecursive,
			"iterative": tr.WalkIterative,
		} {
			visited := 0
			walk(order, func(Entry[int]) bool {
				visited++
				return visited < 3
			})
			require.Equal(t, 3, visited, "%s %s", name, order)
		}
	}
}

func TestWalkEmptyTree(t *testing.T) {
	tr := New[int]()
	for _, order := range Orders() {
		require.Empty(t, collect(tr.WalkRecursive, order))
		require.Empty(t, collect(tr.WalkIterative, order))
	}
}

func TestEntriesIterator(t *testing.T) {
	tr := build(2, 1, 3, 3)
	var got []Entry[int]
	for e := range tr.Entries(InOrder) {
		got = append(got, e)
	}
	require.Equal(t, []Entry[int]{
		{Value: 1, Count: 1, Depth: 1},
		{Value: 2, Count: 1, Depth: 0},
		{Value: 3, Count: 2, Depth: 1},
	}, got)

	for e := range tr.Entries(LevelOrder) {
		require.Equal(t, 2, e.Value)
		break
	}
}

func TestParseOrder(t *testing.T) {
	for _, order := range Orders() {
		got, err := ParseOrder(order.String())
		require.NoError(t, err)
		require.Equal(t, order, got)
	}

	got, err := ParseOrder(" Reverse-Level ")
	require.NoError(t, err)
	require.Equal(t, ReverseLevelOrder, got)

	_, err = ParseOrder("sideways")
	require.Error(t, err)
	require.Equal(t, "unknown", Order(99).String())
}
