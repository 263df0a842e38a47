// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 when the receiver is less than, equal to
// or greater than the argument; any negative or positive value is
// accepted as less or greater
type Item interface {
	Compare(interface{}) int
}

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int8        // height(left) - height(right)
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// SetValue - replace the value, the key is never changed
func (p *Node) SetValue(value interface{}) {
	p.value = value
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// SetLeft - replace the left link; the child's parent link is not changed
func (p *Node) SetLeft(child *Node) {
	p.left = child
}

// SetRight - replace the right link; the child's parent link is not changed
func (p *Node) SetRight(child *Node) {
	p.right = child
}

// SetParent - replace the parent link
func (p *Node) SetParent(parent *Node) {
	p.up = parent
}

// Balance - the stored balance factor
func (p *Node) Balance() int8 {
	return p.balance
}

// SetBalance - store a balance factor
func (p *Node) SetBalance(balance int8) {
	p.balance = balance
}

// UpdateBalance - add diff to the stored balance factor
func (p *Node) UpdateBalance(diff int8) {
	p.balance += diff
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node) Depth() uint {
	count := uint(0)
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}

// GetChildrenByDepth - returns all descendants at a specific depth
// below this node, from left to right
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	if 0 == depth {
		return []*Node{p}
	}

	nodes := []*Node{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
