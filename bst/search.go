// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - the node holding key or nil
func (tree *Tree) Find(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Get - the value stored for key
func (tree *Tree) Get(key Item) (interface{}, error) {
	p := tree.Find(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Has - true if key is in the tree
func (tree *Tree) Has(key Item) bool {
	return nil != tree.Find(key)
}

// locate - the node holding key, or nil and the node that would
// become its parent
func (tree *Tree) locate(key Item) (*Node, *Node) {
	var parent *Node
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0:
			parent, p = p, p.left
		case c < 0:
			parent, p = p, p.right
		default:
			return p, p.up
		}
	}
	return nil, parent
}
