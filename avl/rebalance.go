// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk from node up to the root, rotating wherever the sub-tree
// heights differ by more than one
//
// every ancestor is examined even after a rotation; equal heights in
// the heavy child select the single rotation
func (tree *Tree) rebalance(node *Node) {
	for nil != node {
		bf := height(node.Left()) - height(node.Right())

		switch {
		case bf > 1: // left heavy
			left := node.Left()
			if height(left.Left()) >= height(left.Right()) {
				tree.rotateRight(node) // left-left
			} else {
				tree.rotateLeft(left) // left-right
				tree.rotateRight(node)
			}

		case bf < -1: // right heavy
			right := node.Right()
			if height(right.Right()) >= height(right.Left()) {
				tree.rotateLeft(node) // right-right
			} else {
				tree.rotateRight(right) // right-left
				tree.rotateLeft(node)
			}
		}

		node = node.Parent()
	}
}

// recursive height probe: nil is 0 and a leaf is 1
func height(node *Node) int {
	if nil == node {
		return 0
	}
	hl := height(node.Left())
	hr := height(node.Right())
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}
