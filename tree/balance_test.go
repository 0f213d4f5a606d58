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

func TestRotationsPreserveOrder(t *testing.T) {
	tr := build(4, 2, 6, 1, 3, 5, 7)
	want := tr.ToSortedSlice()

	tr.root = tr.rotateLeft(tr.root)
	require.Equal(t, 6, tr.root.Value)
	require.Equal(t, 4, tr.root.Left.Value)
	require.Equal(t, 5, tr.root.Left.Right.Value)
	require.Equal(t, want, tr.ToSortedSlice())
	require.NoError(t, tr.Check())

	tr.root = tr.rotateRight(tr.root)
	require.Equal(t, 4, tr.root.Value)
	require.Equal(t, 6, tr.root.Right.Value)
	require.Equal(t, 5, tr.root.Right.Left.Value)
	require.Equal(t, want, tr.ToSortedSlice())
	require.NoError(t, tr.CheckBalanced())

	require.Equal(t, 2, tr.Rotations())
}

func TestRotateWithoutPivotIsNoop(t *testing.T) {
	tr := build(1)
	require.Same(t, tr.root, tr.rotateLeft(tr.root))
	require.Same(t, tr.root, tr.rotateRight(tr.root))
	require.Nil(t, tr.rotateLeft(nil))
	require.Zero(t, tr.Rotations())
}

func TestRebalanceCases(t *testing.T) {
	testCases := []struct {
		name      string
		values    []int
		rotations int
	}{
		{name: "left-left", values: []int{3, 2, 1}, rotations: 1},
		{name: "left-right", values: []int{3, 1, 2}, rotations: 2},
		{name: "right-right", values: []int{1, 2, 3}, rotations: 1},
		{name: "right-left", values: []int{1, 3, 2}, rotations: 2},
		{name: "balanced", values: []int{2, 1, 3}, rotations: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(tc.values...)
			tr.root = tr.rebalance(tr.root)

			require.Equal(t, 2, tr.root.Value)
			require.Equal(t, 1, tr.root.Left.Value)
			require.Equal(t, 3, tr.root.Right.Value)
			require.Equal(t, 1, tr.Height())
			require.Equal(t, tc.rotations, tr.Rotations())
			require.NoError(t, tr.CheckBalanced())
		})
	}
}

func TestInsertBalancedExample(t *testing.T) {
	tr := buildAVL(50, 30, 70, 20, 40, 60, 80)
	require.Equal(t, 2, tr.Height())
	require.Equal(t, 50, tr.Root().Value)

	tr.RemoveBalanced(20)
	tr.RemoveBalanced(30)

	require.Equal(t, 50, tr.Root().Value)
	require.Equal(t, 40, tr.Root().Left.Value)
	require.Equal(t, 2, tr.Height())
	require.NoError(t, tr.CheckBalanced())
}

func TestInsertBalancedSortedInput(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 1023; i++ {
		tr.InsertBalanced(i)
		require.NoError(t, tr.CheckBalanced())
	}
	// 1023 = 2^10 - 1 keys inserted in order end up in a perfect tree.
	require.Equal(t, 9, tr.Height())
	require.Equal(t, 1023, tr.Size())
}

func TestRemoveBalancedKeepsInvariant(t *testing.T) {
	tr := New[int]()
	for i := 0; i < 200; i++ {
		tr.InsertBalanced(i)
	}
	// Removing the whole left half forces rotations at the root.
	for i := 0; i < 100; i++ {
		require.True(t, tr.RemoveBalanced(i))
		require.NoError(t, tr.CheckBalanced())
	}
	require.Equal(t, 100, tr.Size())
	minV, _ := tr.Min()
	require.Equal(t, 100, minV)
}

func TestBalanceWholeTree(t *testing.T) {
	t.Run("vine", func(t *testing.T) {
		tr := New[int]()
		for i := 0; i < 256; i++ {
			tr.Insert(i)
		}
		require.Equal(t, 255, tr.Height())

		want := tr.ToSortedSlice()
		tr.BalanceWholeTree()

		require.NoError(t, tr.CheckBalanced())
		require.Equal(t, want, tr.ToSortedSlice())
		require.Less(t, tr.Height(), 12)
		require.Positive(t, tr.Rotations())
	})

	t.Run("random", func(t *testing.T) {
		for seed := uint64(1); seed <= 10; seed++ {
			rng := rand.New(rand.NewPCG(seed, 0))
			tr := New[int]()
			for i := 0; i < 300; i++ {
				tr.Insert(rng.IntN(1000))
			}
			want := tr.ToSortedSlice()
			size := tr.Size()

			tr.BalanceWholeTree()

			require.NoError(t, tr.CheckBalanced(), "seed %d", seed)
			require.Equal(t, want, tr.ToSortedSlice(), "seed %d", seed)
			require.Equal(t, size, tr.Size(), "seed %d", seed)
		}
	})

	t.Run("already balanced", func(t *testing.T) {
		tr := build(4, 2, 6, 1, 3, 5, 7)
		tr.BalanceWholeTree()
		require.Zero(t, tr.Rotations())
		require.Equal(t, 4, tr.Root().Value)
	})

	t.Run("empty", func(t *testing.T) {
		tr := New[int]()
		tr.BalanceWholeTree()
		require.Nil(t, tr.Root())
	})
}
