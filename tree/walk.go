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
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

// Entry is what a traversal hands to its visitor.
type Entry[T any] struct {
	Value T
	Count int
	Depth int // edges from the root
}

// VisitFunc is called once per node. Returning false stops the traversal.
type VisitFunc[T any] func(e Entry[T]) bool

// Order selects a traversal order.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	// ReversePreOrder, ReverseInOrder and ReversePostOrder visit the right
	// subtree before the left one. ReverseInOrder yields non-increasing values.
	ReversePreOrder
	ReverseInOrder
	ReversePostOrder
	// LevelOrder visits the top row first, each row left to right.
	LevelOrder
	// InvertedLevelOrder visits the top row first, each row right to left.
	InvertedLevelOrder
	// ReverseLevelOrder visits the bottom row first, each row left to right.
	ReverseLevelOrder
	// ReverseInvertedLevelOrder visits the bottom row first, each row right to left.
	ReverseInvertedLevelOrder
)

var orderNames = [...]string{
	PreOrder:                  "pre",
	InOrder:                   "in",
	PostOrder:                 "post",
	ReversePreOrder:           "reverse-pre",
	ReverseInOrder:            "reverse-in",
	ReversePostOrder:          "reverse-post",
	LevelOrder:                "level",
	InvertedLevelOrder:        "inverted-level",
	ReverseLevelOrder:         "reverse-level",
	ReverseInvertedLevelOrder: "reverse-inverted-level",
}

// Orders lists every traversal order.
func Orders() []Order {
	orders := make([]Order, len(orderNames))
	for i := range orders {
		orders[i] = Order(i)
	}
	return orders
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "unknown"
	}
	return orderNames[o]
}

// ParseOrder maps a name printed by Order.String back to the Order.
func ParseOrder(name string) (Order, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, errors.Newf("unknown traversal order %q", name)
}

// IsLevel reports whether o is one of the breadth-first orders.
func (o Order) IsLevel() bool {
	return o >= LevelOrder
}

type visit uint8

const (
	visitPre visit = iota
	visitIn
	visitPost
)

// shape splits an order into where the node is visited relative to its
// children, whether the right child goes first, and, for level orders,
// whether the rows are produced bottom-up.
func (o Order) shape() (at visit, mirror, bottomUp bool) {
	switch o {
	case PreOrder:
		return visitPre, false, false
	case InOrder:
		return visitIn, false, false
	case PostOrder:
		return visitPost, false, false
	case ReversePreOrder:
		return visitPre, true, false
	case ReverseInOrder:
		return visitIn, true, false
	case ReversePostOrder:
		return visitPost, true, false
	case LevelOrder:
		return 0, false, false
	case InvertedLevelOrder:
		return 0, true, false
	case ReverseLevelOrder:
		return 0, false, true
	case ReverseInvertedLevelOrder:
		return 0, true, true
	}
	panic(errors.AssertionFailedf("unknown traversal order %d", int(o)))
}

func children[T any](n *Node[T], mirror bool) (first, second *Node[T]) {
	if mirror {
		return n.Right, n.Left
	}
	return n.Left, n.Right
}

// Walk visits every node in the given order. It uses the explicit
// stack/queue form, so its memory use does not depend on call-stack depth.
func (t *Tree[T]) Walk(order Order, fn VisitFunc[T]) {
	t.WalkIterative(order, fn)
}

// Entries returns the nodes in the given order as an iterator.
func (t *Tree[T]) Entries(order Order) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		t.WalkIterative(order, VisitFunc[T](yield))
	}
}

// WalkRecursive visits every node in the given order using plain recursion.
// Stack use grows with the height of the tree.
func (t *Tree[T]) WalkRecursive(order Order, fn VisitFunc[T]) {
	at, mirror, bottomUp := order.shape()
	if !order.IsLevel() {
		walkDepthFirst(t.root, 0, at, mirror, fn)
		return
	}

	height := t.root.Height()
	for i := 0; i <= height; i++ {
		level := i
		if bottomUp {
			level = height - i
		}
		if !walkLevel(t.root, 0, level, mirror, fn) {
			return
		}
	}
}

func walkDepthFirst[T any](n *Node[T], depth int, at visit, mirror bool, fn VisitFunc[T]) bool {
	if n == nil {
		return true
	}
	first, second := children(n, mirror)

	if at == visitPre && !fn(n.entry(depth)) {
		return false
	}
	if !walkDepthFirst(first, depth+1, at, mirror, fn) {
		return false
	}
	if at == visitIn && !fn(n.entry(depth)) {
		return false
	}
	if !walkDepthFirst(second, depth+1, at, mirror, fn) {
		return false
	}
	if at == visitPost && !fn(n.entry(depth)) {
		return false
	}
	return true
}

// walkLevel visits the nodes found exactly `level` edges below n.
func walkLevel[T any](n *Node[T], depth, level int, mirror bool, fn VisitFunc[T]) bool {
	if n == nil {
		return true
	}
	if depth == level {
		return fn(n.entry(depth))
	}
	first, second := children(n, mirror)
	return walkLevel(first, depth+1, level, mirror, fn) &&
		walkLevel(second, depth+1, level, mirror, fn)
}

// WalkIterative visits every node in the given order using an explicit stack
// (depth-first orders) or queue (level orders). It visits nodes in exactly
// the same order as WalkRecursive.
func (t *Tree[T]) WalkIterative(order Order, fn VisitFunc[T]) {
	if t.root == nil {
		return
	}
	at, mirror, bottomUp := order.shape()
	switch {
	case !order.IsLevel():
		iterateDepthFirst(t.root, at, mirror, fn)
	case bottomUp:
		iterateLevelsBottomUp(t.root, mirror, fn)
	default:
		iterateLevels(t.root, mirror, fn)
	}
}

type frame[T any] struct {
	node  *Node[T]
	depth int
	stage visit // next point to reach: before first child, between, after second
}

func iterateDepthFirst[T any](root *Node[T], at visit, mirror bool, fn VisitFunc[T]) {
	stack := []frame[T]{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n, depth, stage := top.node, top.depth, top.stage
		first, second := children(n, mirror)

		if stage == at && !fn(n.entry(depth)) {
			return
		}
		switch stage {
		case visitPre:
			top.stage = visitIn
			if first != nil {
				stack = append(stack, frame[T]{node: first, depth: depth + 1})
			}
		case visitIn:
			top.stage = visitPost
			if second != nil {
				stack = append(stack, frame[T]{node: second, depth: depth + 1})
			}
		default:
			stack = stack[:len(stack)-1]
		}
	}
}

func iterateLevels[T any](root *Node[T], mirror bool, fn VisitFunc[T]) {
	queue := []frame[T]{{node: root}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if !fn(f.node.entry(f.depth)) {
			return
		}
		first, second := children(f.node, mirror)
		if first != nil {
			queue = append(queue, frame[T]{node: first, depth: f.depth + 1})
		}
		if second != nil {
			queue = append(queue, frame[T]{node: second, depth: f.depth + 1})
		}
	}
}

// iterateLevelsBottomUp runs a breadth-first pass with the child order
// flipped, pushing every node on a stack; popping the stack then yields the
// deepest row first in the requested direction.
func iterateLevelsBottomUp[T any](root *Node[T], mirror bool, fn VisitFunc[T]) {
	var stack []frame[T]
	queue := []frame[T]{{node: root}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		stack = append(stack, f)
		first, second := children(f.node, !mirror)
		if first != nil {
			queue = append(queue, frame[T]{node: first, depth: f.depth + 1})
		}
		if second != nil {
			queue = append(queue, frame[T]{node: second, depth: f.depth + 1})
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if !fn(stack[i].node.entry(stack[i].depth)) {
			return
		}
	}
}
