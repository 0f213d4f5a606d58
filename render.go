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
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/arbor/tree"
)

const emptyView = "(empty)"

// formatEntry prints a value, followed by its count in parentheses when it
// was inserted more than once.
func formatEntry[T any](p palette, value T, count int) string {
	if count > 1 {
		return p.Duplicate(fmt.Sprintf("%v(%d)", value, count))
	}
	return fmt.Sprint(value)
}

func renderWalk[T any](p palette, t *tree.Tree[T], order tree.Order, recursive bool) string {
	walk := t.WalkIterative
	if recursive {
		walk = t.WalkRecursive
	}
	var parts []string
	walk(order, func(e tree.Entry[T]) bool {
		parts = append(parts, formatEntry(p, e.Value, e.Count))
		return true
	})
	if len(parts) == 0 {
		return emptyView
	}
	return strings.Join(parts, " ")
}

// renderLevels prints one row per tree level, prefixed with its depth. order
// must be one of the level orders; it decides the row order and the
// direction within each row.
func renderLevels[T any](p palette, t *tree.Tree[T], order tree.Order) string {
	if t.Root() == nil {
		return emptyView
	}
	var b strings.Builder
	row := -1
	t.Walk(order, func(e tree.Entry[T]) bool {
		if e.Depth != row {
			if row >= 0 {
				b.WriteByte('\n')
			}
			row = e.Depth
			b.WriteString(p.Muted(fmt.Sprintf("%3d |", row)))
		}
		b.WriteByte(' ')
		b.WriteString(formatEntry(p, e.Value, e.Count))
		return true
	})
	return b.String()
}

// renderSideways draws the tree rotated a quarter turn: the root sits in the
// first column, larger values above it, and every level is indented by
// indent more spaces.
func renderSideways[T any](p palette, t *tree.Tree[T], indent int) string {
	if t.Root() == nil {
		return emptyView
	}
	var lines []string
	t.Walk(tree.ReverseInOrder, func(e tree.Entry[T]) bool {
		lines = append(lines, strings.Repeat(" ", e.Depth*indent)+formatEntry(p, e.Value, e.Count))
		return true
	})
	return strings.Join(lines, "\n")
}

// renderNodeSideways is renderSideways for a detached node structure, which
// need not be ordered.
func renderNodeSideways[T any](p palette, root *tree.Node[T], indent int) string {
	if root == nil {
		return emptyView
	}
	var lines []string
	var draw func(n *tree.Node[T], depth int)
	draw = func(n *tree.Node[T], depth int) {
		if n == nil {
			return
		}
		draw(n.Right, depth+1)
		lines = append(lines, strings.Repeat(" ", depth*indent)+formatEntry(p, n.Value, n.Count))
		draw(n.Left, depth+1)
	}
	draw(root, 0)
	return strings.Join(lines, "\n")
}

var listKinds = []string{"singly", "doubly", "circular", "circular-doubly"}

// renderList converts t into the named kind of linked list and prints it by
// following the links. Doubly-linked kinds are printed in both directions.
func renderList[T any](p palette, t *tree.Tree[T], kind string) (string, error) {
	var head, tail *tree.ListNode[T]
	var double, circular bool
	switch kind {
	case "singly":
		head, tail = t.ToSinglyLinkedList()
	case "doubly":
		head, tail = t.ToDoublyLinkedList()
		double = true
	case "circular":
		head, tail = t.ToCircularSinglyLinkedList()
		circular = true
	case "circular-doubly":
		head, tail = t.ToCircularDoublyLinkedList()
		double, circular = true, true
	default:
		return "", errors.Newf("unknown list kind %q, want one of %s", kind, strings.Join(listKinds, ", "))
	}
	if head == nil {
		return emptyView, nil
	}

	sep := " -> "
	if double {
		sep = " <-> "
	}
	chain := func(links func(func(*tree.ListNode[T]) bool), wrap *tree.ListNode[T]) string {
		var parts []string
		for n := range links {
			parts = append(parts, formatEntry(p, n.Value, n.Count))
		}
		if circular {
			parts = append(parts, p.Muted("↺ "+fmt.Sprint(wrap.Value)))
		}
		return strings.Join(parts, sep)
	}

	out := chain(tree.Forward(head, tail), head)
	if double {
		out += "\n" + chain(tree.Backward(head, tail), tail)
	}
	return out, nil
}
