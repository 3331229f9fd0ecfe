// Copyright 2014 Google Inc.
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

package bst

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// KeyIterator allows callers of the traversal methods to visit the keys of a
// tree.  When this function returns false, iteration will stop and the
// associated traversal will immediately return.
//
// The tree must not be modified while a traversal is running.
type KeyIterator func(key int) bool

// printIndent is the number of spaces Print emits per level of depth.
const printIndent = 3

// Each depth-first walker returns false once the iterator has asked to stop.

func (n *node) preOrder(iter KeyIterator) bool {
	if n == nil {
		return true
	}
	return iter(n.key) && n.left.preOrder(iter) && n.right.preOrder(iter)
}

func (n *node) inOrder(iter KeyIterator) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(iter) && iter(n.key) && n.right.inOrder(iter)
}

func (n *node) reverseInOrder(iter KeyIterator) bool {
	if n == nil {
		return true
	}
	return n.right.reverseInOrder(iter) && iter(n.key) && n.left.reverseInOrder(iter)
}

func (n *node) postOrder(iter KeyIterator) bool {
	if n == nil {
		return true
	}
	return n.left.postOrder(iter) && n.right.postOrder(iter) && iter(n.key)
}

// PreOrder calls the iterator for each key, visiting a node before its left
// subtree and then its right subtree.
func (t *Tree) PreOrder(iterator KeyIterator) {
	t.root.preOrder(iterator)
}

// InOrder calls the iterator for each key in ascending order.
func (t *Tree) InOrder(iterator KeyIterator) {
	t.root.inOrder(iterator)
}

// ReverseInOrder calls the iterator for each key in descending order.
func (t *Tree) ReverseInOrder(iterator KeyIterator) {
	t.root.reverseInOrder(iterator)
}

// PostOrder calls the iterator for each key, visiting both subtrees of a node
// (left first) before the node itself.
func (t *Tree) PostOrder(iterator KeyIterator) {
	t.root.postOrder(iterator)
}

// BreadthFirst calls the iterator for each key level by level, starting at
// the root, and left to right within a level.
func (t *Tree) BreadthFirst(iterator KeyIterator) {
	if t.root == nil {
		return
	}
	queue := []*node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]
		if !iterator(n.key) {
			return
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}

func collect(walk func(KeyIterator)) (out []int) {
	walk(func(key int) bool {
		out = append(out, key)
		return true
	})
	return
}

// PreOrderKeys returns the keys in pre-order.
func (t *Tree) PreOrderKeys() []int { return collect(t.PreOrder) }

// InOrderKeys returns the keys in ascending order.
func (t *Tree) InOrderKeys() []int { return collect(t.InOrder) }

// ReverseInOrderKeys returns the keys in descending order.
func (t *Tree) ReverseInOrderKeys() []int { return collect(t.ReverseInOrder) }

// PostOrderKeys returns the keys in post-order.
func (t *Tree) PostOrderKeys() []int { return collect(t.PostOrder) }

// BreadthFirstKeys returns the keys in level order.
func (t *Tree) BreadthFirstKeys() []int { return collect(t.BreadthFirst) }

func (n *node) print(w *bufio.Writer, level int) {
	if n == nil {
		return
	}
	w.WriteString(strings.Repeat(" ", level*printIndent))
	w.WriteString(strconv.Itoa(n.key))
	w.WriteByte('\n')
	n.left.print(w, level+1)
	n.right.print(w, level+1)
}

// Print writes the tree to w in pre-order, one key per line, each key
// indented by three spaces per level of depth.  The root has depth 0.
func (t *Tree) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.root.print(bw, 0)
	return bw.Flush()
}
