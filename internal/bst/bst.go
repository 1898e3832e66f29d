package bst

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Delete when no entry carries the given key.
var ErrKeyNotFound = errors.New("key not found")

// node is a plain binary tree node. No parent pointers: every operation
// walks down from the root, so the tree carries no back-links to maintain.
type node[V any] struct {
	key   float64
	value V
	left  *node[V]
	right *node[V]
}

// Tree is a binary search tree keyed by float64. It does not self-balance:
// depth depends entirely on insertion order, so callers that need shallow
// trees must feed keys in a favorable order (median-first from a sorted
// sequence gives roughly halved depth). Keys are compared with exact float
// equality; callers must keep keys unique and recompute them from the same
// expression when looking entries up again.
type Tree[V any] struct {
	root *node[V]
	size int
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Len returns the number of entries.
func (t *Tree[V]) Len() int {
	return t.size
}

// Set inserts value at key, replacing any existing entry with the same key.
func (t *Tree[V]) Set(key float64, value V) {
	if t.root == nil {
		t.root = &node[V]{key: key, value: value}
		t.size++
		return
	}
	cur := t.root
	for {
		switch {
		case key == cur.key:
			cur.value = value
			return
		case key < cur.key:
			if cur.left == nil {
				cur.left = &node[V]{key: key, value: value}
				t.size++
				return
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = &node[V]{key: key, value: value}
				t.size++
				return
			}
			cur = cur.right
		}
	}
}

// Get returns the value stored at key, and whether the key was present.
func (t *Tree[V]) Get(key float64) (V, bool) {
	cur := t.root
	for cur != nil {
		switch {
		case key == cur.key:
			return cur.value, true
		case key < cur.key:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry at key. Deleting an absent key returns an error
// wrapping ErrKeyNotFound and leaves the tree untouched.
func (t *Tree[V]) Delete(key float64) error {
	var parent *node[V]
	cur := t.root
	for cur != nil && cur.key != key {
		parent = cur
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		return fmt.Errorf("delete %g: %w", key, ErrKeyNotFound)
	}

	// Two children: swap in the in-order successor (leftmost of the right
	// subtree), then splice that successor out instead. The successor has
	// no left child, so the removal below is always the easy case.
	if cur.left != nil && cur.right != nil {
		succParent := cur
		succ := cur.right
		for succ.left != nil {
			succParent = succ
			succ = succ.left
		}
		cur.key = succ.key
		cur.value = succ.value
		parent = succParent
		cur = succ
	}

	// Zero or one child: lift the child (possibly nil) into cur's place.
	child := cur.left
	if child == nil {
		child = cur.right
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == cur:
		parent.left = child
	default:
		parent.right = child
	}
	t.size--
	return nil
}

// Min returns the smallest key and its value, or ok=false on an empty tree.
func (t *Tree[V]) Min() (float64, V, bool) {
	if t.root == nil {
		var zero V
		return 0, zero, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.key, cur.value, true
}

// Ascend walks the entries in ascending key order, calling fn for each.
// The walk stops early when fn returns false. Iterative with an explicit
// stack, so an early stop after k entries costs O(k + depth), not a full
// traversal.
func (t *Tree[V]) Ascend(fn func(key float64, value V) bool) {
	stack := make([]*node[V], 0, 16)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur.key, cur.value) {
			return
		}
		cur = cur.right
	}
}
