// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/counter"
)

// Item - a key item must implement the Compare function
type Item = bst.Item

// Node - a node in the tree
type Node = bst.Node

// Tree - type to hold the root node of a tree
//
// the search, iteration and print methods come from bst.Tree; Insert
// and Delete are replaced by the balancing versions
type Tree struct {
	bst.Tree
	rotations counter.Counter
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{}
}

// Rotations - total single rotations performed on this tree, a
// double rotation counts as two
func (tree *Tree) Rotations() uint64 {
	return tree.rotations.Uint64()
}
