// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
)

// Delete - removes a specific item from the tree
//
// returns the removed value and true; a key that is not in the tree
// leaves the tree unchanged and returns nil and false
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	z := tree.Find(key)
	if nil == z {
		return nil, false
	}

	// reduce to the at most one child case, the predecessor
	// never has a right child
	if nil != z.Left() && nil != z.Right() {
		tree.nodeSwap(z, bst.Predecessor(z))
	}

	parent := z.Parent()
	child := z.Left()
	if nil == child {
		child = z.Right()
	}
	if nil != child {
		child.SetParent(parent)
	}

	switch {
	case nil == parent:
		tree.SetRoot(child)
	case parent.Left() == z:
		parent.SetLeft(child)
	default:
		parent.SetRight(child)
	}

	value := z.Value()
	tree.Release(z)

	if nil != parent {
		tree.rebalance(parent)
	}
	if !tree.IsEmpty() {
		updateHeightAndBalance(tree.Root())
	}
	return value, true
}

// exchange the positions of two nodes together with their balance
// factors, the balance belongs to the position not the key
func (tree *Tree) nodeSwap(n1 *Node, n2 *Node) {
	tree.NodeSwap(n1, n2)
	b := n1.Balance()
	n1.SetBalance(n2.Balance())
	n2.SetBalance(b)
}
