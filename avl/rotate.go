// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateLeft rotates the sub-tree rooted at x,
// turning (x a (y b c)) into (y (x a b) c).
// Balance factors are left for updateHeightAndBalance.
func (tree *Tree) rotateLeft(x *Node) {
	if nil == x {
		return
	}
	y := x.Right()
	if nil == y {
		return
	}

	b := y.Left()
	p := x.Parent()

	y.SetLeft(x)
	x.SetParent(y)
	x.SetRight(b)
	if nil != b {
		b.SetParent(x)
	}

	y.SetParent(p)
	tree.ReplaceChild(p, x, y)
	tree.rotations.Increment()
}

// rotateRight rotates the sub-tree rooted at x,
// turning (x (y a b) c) into (y a (x b c)).
func (tree *Tree) rotateRight(x *Node) {
	if nil == x {
		return
	}
	y := x.Left()
	if nil == y {
		return
	}

	b := y.Right()
	p := x.Parent()

	y.SetRight(x)
	x.SetParent(y)
	x.SetLeft(b)
	if nil != b {
		b.SetParent(x)
	}

	y.SetParent(p)
	tree.ReplaceChild(p, x, y)
	tree.rotations.Increment()
}
