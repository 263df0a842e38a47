// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.first()
	}
	// climb until arriving from a left sub-tree
	up := p.up
	for nil != up && p == up.right {
		p, up = up, up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.last()
	}
	// climb until arriving from a right sub-tree
	up := p.up
	for nil != up && p == up.left {
		p, up = up, up.up
	}
	return up
}

// Predecessor - in-order predecessor of node; when node has a left
// child this is the rightmost node of that sub-tree
func Predecessor(node *Node) *Node {
	if nil == node {
		return nil
	}
	return node.Prev()
}

// Successor - in-order successor of node
func Successor(node *Node) *Node {
	if nil == node {
		return nil
	}
	return node.Next()
}
