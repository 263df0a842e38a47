// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Visitor - called for each node during a traversal, returning false
// stops the traversal
type Visitor func(node *Node) bool

// InOrder - visit nodes in ascending key order
func (tree *Tree) InOrder(f Visitor) {
	inOrder(tree.root, f)
}

// PreOrder - visit each node before its sub-trees
func (tree *Tree) PreOrder(f Visitor) {
	preOrder(tree.root, f)
}

// PostOrder - visit each node after its sub-trees
func (tree *Tree) PostOrder(f Visitor) {
	postOrder(tree.root, f)
}

func inOrder(p *Node, f Visitor) bool {
	if nil == p {
		return true
	}
	return inOrder(p.left, f) && f(p) && inOrder(p.right, f)
}

func preOrder(p *Node, f Visitor) bool {
	if nil == p {
		return true
	}
	return f(p) && preOrder(p.left, f) && preOrder(p.right, f)
}

func postOrder(p *Node, f Visitor) bool {
	if nil == p {
		return true
	}
	return postOrder(p.left, f) && postOrder(p.right, f) && f(p)
}
