// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckBalance - every node is within one level of balance and its
// stored balance matches its sub-tree heights
func (tree *Tree) CheckBalance() bool {
	_, err := checkBalance(tree.Root())
	return nil == err
}

// Verify - check all tree invariants, returns the first failure
func (tree *Tree) Verify() error {
	if !tree.CheckUp() {
		return fault.ErrParentLink
	}
	if !tree.CheckOrder() {
		return fault.ErrKeyOrder
	}
	_, err := checkBalance(tree.Root())
	return err
}

// returns the height of the sub-tree
func checkBalance(node *Node) (int, error) {
	if nil == node {
		return 0, nil
	}
	hl, err := checkBalance(node.Left())
	if nil != err {
		return 0, err
	}
	hr, err := checkBalance(node.Right())
	if nil != err {
		return 0, err
	}

	bf := hl - hr
	if bf < -1 || bf > 1 {
		return 0, fault.ErrBalanceFactor
	}
	if int8(bf) != node.Balance() {
		return 0, fault.ErrBalanceMismatch
	}

	if hl > hr {
		return 1 + hl, nil
	}
	return 1 + hr, nil
}
