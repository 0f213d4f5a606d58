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

// Stats summarises the shape of a tree.
type Stats struct {
	Size      int // distinct values
	Len       int // values including duplicates
	Height    int
	Rotations int

	SumSubtreeHeights      int
	SumOfSumSubtreeHeights int
	SumNodeDepths          int
	SumOfSumNodeDepths     int
}

// Stats collects every structural statistic in a single pass.
func (t *Tree[T]) Stats() Stats {
	s := Stats{Height: t.Height(), Rotations: t.rotations}
	if t.root == nil {
		s.SumSubtreeHeights = -1
		s.SumOfSumSubtreeHeights = -1
		s.SumNodeDepths = -1
		s.SumOfSumNodeDepths = -1
		return s
	}
	t.walkNodes(func(n *Node[T], depth int) {
		s.Size++
		s.Len += n.Count
		s.SumSubtreeHeights += n.height
		s.SumOfSumSubtreeHeights += n.height * (depth + 1)
		s.SumNodeDepths += depth
		s.SumOfSumNodeDepths += depth * (depth + 1) / 2
	})
	return s
}

// SumSubtreeHeights adds up the height of the subtree rooted at every node.
// It returns -1 for an empty tree.
func (t *Tree[T]) SumSubtreeHeights() int {
	return t.Stats().SumSubtreeHeights
}

// SumOfSumSubtreeHeights adds up SumSubtreeHeights of the subtree rooted at
// every node. A node of height h at depth d lies in d+1 such subtrees, so it
// contributes h*(d+1). It returns -1 for an empty tree.
func (t *Tree[T]) SumOfSumSubtreeHeights() int {
	return t.Stats().SumOfSumSubtreeHeights
}

// SumNodeDepths adds up the depth of every node. It returns -1 for an empty
// tree.
func (t *Tree[T]) SumNodeDepths() int {
	return t.Stats().SumNodeDepths
}

// SumOfSumNodeDepths adds up SumNodeDepths of the subtree rooted at every
// node, each measured from that subtree's own root. A node at depth d
// contributes 0+1+...+d. It returns -1 for an empty tree.
func (t *Tree[T]) SumOfSumNodeDepths() int {
	return t.Stats().SumOfSumNodeDepths
}

// walkNodes is a pre-order walk over the nodes themselves, with an explicit
// stack.
func (t *Tree[T]) walkNodes(fn func(n *Node[T], depth int)) {
	if t.root == nil {
		return
	}
	stack := []frame[T]{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.node, f.depth)
		if f.node.Right != nil {
			stack = append(stack, frame[T]{node: f.node.Right, depth: f.depth + 1})
		}
		if f.node.Left != nil {
			stack = append(stack, frame[T]{node: f.node.Left, depth: f.depth + 1})
		}
	}
}
