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

// Package bst implements an unbalanced in-memory binary search tree of
// unique int keys.
//
// Every node holds one key and owns at most two children.  All keys in a
// node's left subtree are smaller than its key and all keys in its right
// subtree are larger.  No rebalancing is ever done, so the shape of the tree
// (and the cost of each operation) depends entirely on insertion order:
// inserting keys in sorted order degrades the tree into a list.
//
// Mutations are written as structural recursion.  Each recursive call takes a
// subtree, and returns the (possibly new, possibly nil) root of that subtree,
// which the caller stores back into its own child slot.
//
// A Tree is not safe for concurrent use.  Callers sharing a Tree between
// goroutines must hold a lock across every call, including reads that run
// concurrently with a write.
package bst

import (
	"errors"
	"sync"
)

// ErrEmptyTree is returned by Min and Max when the tree holds no keys.
var ErrEmptyTree = errors.New("bst: empty tree")

// DefaultFreeListSize is the number of released nodes a tree created by New
// keeps for reuse.
const DefaultFreeListSize = 32

// FreeList holds nodes released by Delete and Clear so that later inserts can
// reuse them.  Its methods lock, so one FreeList may back several trees; each
// of those trees still needs its own external synchronization.
type FreeList struct {
	mu    sync.Mutex
	nodes []*node
}

// NewFreeList creates a free list that holds at most size nodes.
func NewFreeList(size int) *FreeList {
	return &FreeList{nodes: make([]*node, 0, size)}
}

// get pops a recycled node, or allocates one when the list is empty.
func (f *FreeList) get(key int) *node {
	f.mu.Lock()
	last := len(f.nodes) - 1
	if last < 0 {
		f.mu.Unlock()
		return &node{key: key}
	}
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	f.mu.Unlock()
	n.key = key
	return n
}

// put clears n and keeps it for reuse.  It reports false, dropping n, once
// the list is at capacity.
func (f *FreeList) put(n *node) bool {
	*n = node{}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.nodes) == cap(f.nodes) {
		return false
	}
	f.nodes = append(f.nodes, n)
	return true
}

// New creates an empty tree with its own freelist.
func New() *Tree {
	return NewWithFreeList(NewFreeList(DefaultFreeListSize))
}

// NewWithFreeList creates an empty tree that uses the given node free list.
func NewWithFreeList(f *FreeList) *Tree {
	if f == nil {
		panic("nil freelist")
	}
	return &Tree{freelist: f}
}

// node is an internal node in a tree.
//
// left and right are exclusively owned by the node: no node is ever reachable
// through two different parents.
type node struct {
	key         int
	left, right *node
}

// Tree is an unbalanced binary search tree of unique int keys.
//
// The zero value is an empty tree ready to use; it allocates nodes directly
// instead of through a freelist.
type Tree struct {
	root     *node
	freelist *FreeList
}

func (t *Tree) newNode(key int) *node {
	if t.freelist == nil {
		return &node{key: key}
	}
	return t.freelist.get(key)
}

func (t *Tree) freeNode(n *node) {
	if t.freelist == nil {
		return
	}
	t.freelist.put(n)
}

// insert inserts key into the subtree rooted at n and returns the new root of
// that subtree.  The boolean reports whether a node was created.
func (n *node) insert(t *Tree, key int) (*node, bool) {
	if n == nil {
		return t.newNode(key), true
	}
	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = n.left.insert(t, key)
	case key > n.key:
		n.right, inserted = n.right.insert(t, key)
	}
	return n, inserted
}

// remove deletes key from the subtree rooted at n and returns the new root of
// that subtree.  The boolean reports whether key was found.
func (n *node) remove(t *Tree, key int) (*node, bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < n.key:
		n.left, removed = n.left.remove(t, key)
		return n, removed
	case key > n.key:
		n.right, removed = n.right.remove(t, key)
		return n, removed
	}
	// Zero or one child: splice the node out.
	if n.left == nil || n.right == nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		t.freeNode(n)
		return child, true
	}
	// Two children: take over the in-order successor's key, then remove the
	// successor, which has no left child.
	n.key = n.right.min().key
	n.right, _ = n.right.remove(t, n.key)
	return n, true
}

// min returns the leftmost node of a non-nil subtree.
func (n *node) min() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of a non-nil subtree.
func (n *node) max() *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node) has(key int) bool {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}
	return false
}

func (n *node) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.count() + n.right.count()
}

// bound is an optional key limit used by verify.  A bound that is not set
// places no restriction, so keys at math.MinInt and math.MaxInt need no
// special casing.
type bound struct {
	key int
	set bool
}

func limit(key int) bound { return bound{key: key, set: true} }

// verify reports whether every key in the subtree lies strictly between lo
// and hi, and whether each node orders its children correctly.
func (n *node) verify(lo, hi bound) bool {
	if n == nil {
		return true
	}
	if (lo.set && n.key <= lo.key) || (hi.set && n.key >= hi.key) {
		return false
	}
	return n.left.verify(lo, limit(n.key)) && n.right.verify(limit(n.key), hi)
}

// Insert adds key to the tree.  It returns true if a new node was created,
// and false if key was already present, in which case the tree is unchanged.
func (t *Tree) Insert(key int) bool {
	var inserted bool
	t.root, inserted = t.root.insert(t, key)
	return inserted
}

// Delete removes key from the tree, returning true if it was present.
// Deleting an absent key leaves the tree unchanged.
func (t *Tree) Delete(key int) bool {
	var deleted bool
	t.root, deleted = t.root.remove(t, key)
	return deleted
}

// Has returns true if key is in the tree.
func (t *Tree) Has(key int) bool {
	return t.root.has(key)
}

// Min returns the smallest key in the tree, or ErrEmptyTree.
func (t *Tree) Min() (int, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}
	return t.root.min().key, nil
}

// Max returns the largest key in the tree, or ErrEmptyTree.
func (t *Tree) Max() (int, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}
	return t.root.max().key, nil
}

// Len returns the number of keys in the tree.  It walks every node.
func (t *Tree) Len() int {
	return t.root.count()
}

// Verify reports whether the tree satisfies the binary search tree ordering:
// for every node, all keys to its left are smaller and all keys to its right
// are larger.  An empty tree is valid.
func (t *Tree) Verify() bool {
	return t.root.verify(bound{}, bound{})
}

// VerifyRange is like Verify, and additionally requires every key to lie
// within [lo, hi].
func (t *Tree) VerifyRange(lo, hi int) bool {
	if lo > hi {
		return t.root == nil
	}
	if t.root == nil {
		return true
	}
	// Check the extremes against the closed range, then the ordering with
	// open bounds so no key arithmetic can overflow.
	if t.root.min().key < lo || t.root.max().key > hi {
		return false
	}
	return t.Verify()
}

// Clear removes all keys from the tree.  If addNodesToFreelist is true, the
// released nodes are added to the tree's freelist until it is full; otherwise
// the root is simply dereferenced and the nodes left to the garbage collector.
func (t *Tree) Clear(addNodesToFreelist bool) {
	if addNodesToFreelist && t.freelist != nil {
		t.root.reset(t.freelist)
	}
	t.root = nil
}

// reset returns the subtree's nodes to the freelist in post-order.  It
// returns false once the freelist is full.
func (n *node) reset(f *FreeList) bool {
	if n == nil {
		return true
	}
	if !n.left.reset(f) || !n.right.reset(f) {
		return false
	}
	return f.put(n)
}
