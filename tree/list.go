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

import "iter"

// ListNode is one link of a list built from a tree. Prev is only set on
// doubly-linked lists.
type ListNode[T any] struct {
	Value T
	Count int
	Next  *ListNode[T]
	Prev  *ListNode[T]
}

// Forward yields the links from head to tail inclusive by following Next.
// It stops at tail, so it also terminates on circular lists.
func Forward[T any](head, tail *ListNode[T]) iter.Seq[*ListNode[T]] {
	return func(yield func(*ListNode[T]) bool) {
		for n := head; n != nil; n = n.Next {
			if !yield(n) || n == tail {
				return
			}
		}
	}
}

// Backward yields the links from tail to head inclusive by following Prev.
func Backward[T any](head, tail *ListNode[T]) iter.Seq[*ListNode[T]] {
	return func(yield func(*ListNode[T]) bool) {
		for n := tail; n != nil; n = n.Prev {
			if !yield(n) || n == head {
				return
			}
		}
	}
}
