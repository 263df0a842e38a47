// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// post-order pass storing height(left) - height(right) in every node
// of the sub-tree, returns the sub-tree height
//
// the narrowing to int8 is safe only because rebalance has already
// restored |balance| <= 1
func updateHeightAndBalance(node *Node) int {
	if nil == node {
		return 0
	}

	hl := updateHeightAndBalance(node.Left())
	hr := updateHeightAndBalance(node.Right())
	node.SetBalance(int8(hl - hr))

	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}
