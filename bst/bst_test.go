// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// build a tree from keys in insertion order
func makeTree(keys ...int) *bst.Tree {
	tree := bst.New()
	for _, k := range keys {
		tree.Insert(item.Integer(k), k*10)
	}
	return tree
}

func keysOf(tree *bst.Tree, walk func(bst.Visitor)) []int {
	keys := []int{}
	walk(func(node *bst.Node) bool {
		keys = append(keys, int(node.Key().(item.Integer)))
		return true
	})
	return keys
}

func TestInsertAndFind(t *testing.T) {
	tree := makeTree(50, 30, 70, 20, 40, 60, 80)

	assert.Equal(t, 7, tree.Count(), "wrong count")
	assert.True(t, tree.CheckUp(), "inconsistent up pointers")
	assert.True(t, tree.CheckOrder(), "keys out of order")

	for _, k := range []int{20, 30, 40, 50, 60, 70, 80} {
		v, err := tree.Get(item.Integer(k))
		assert.Nil(t, err, "get error")
		assert.Equal(t, k*10, v, "wrong value")
	}

	v, err := tree.Get(item.Integer(55))
	assert.Equal(t, fault.ErrKeyNotFound, err, "missing key error")
	assert.Nil(t, v, "value for missing key")
	assert.False(t, tree.Has(item.Integer(55)), "has missing key")
}

func TestInsertOverwrite(t *testing.T) {
	tree := makeTree(2, 1, 3)
	root := tree.Root()

	added := tree.Insert(item.Integer(2), "new")
	assert.False(t, added, "overwrite reported as add")
	assert.Equal(t, 3, tree.Count(), "count changed on overwrite")
	assert.Equal(t, root, tree.Root(), "root replaced on overwrite")
	assert.Equal(t, "new", root.Value(), "value not overwritten")
}

func TestTraversals(t *testing.T) {
	tree := makeTree(4, 2, 6, 1, 3, 5, 7)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keysOf(tree, tree.InOrder), "in-order")
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, keysOf(tree, tree.PreOrder), "pre-order")
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, keysOf(tree, tree.PostOrder), "post-order")

	// early stop
	n := 0
	tree.InOrder(func(node *bst.Node) bool {
		n += 1
		return n < 3
	})
	assert.Equal(t, 3, n, "traversal did not stop")
}

func TestIterators(t *testing.T) {
	tree := makeTree(4, 2, 6, 1, 3, 5, 7)

	forward := []int{}
	for p := tree.First(); nil != p; p = p.Next() {
		forward = append(forward, int(p.Key().(item.Integer)))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, forward, "forward iteration")

	backward := []int{}
	for p := tree.Last(); nil != p; p = p.Prev() {
		backward = append(backward, int(p.Key().(item.Integer)))
	}
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, backward, "backward iteration")

	root := tree.Root()
	assert.Equal(t, item.Integer(3), bst.Predecessor(root).Key(), "predecessor of root")
	assert.Equal(t, item.Integer(5), bst.Successor(root).Key(), "successor of root")
	assert.Nil(t, bst.Predecessor(tree.First()), "predecessor of first")
	assert.Nil(t, bst.Successor(tree.Last()), "successor of last")
	assert.Nil(t, bst.Predecessor(nil), "predecessor of nil")

	empty := bst.New()
	assert.Nil(t, empty.First(), "first of empty tree")
	assert.Nil(t, empty.Last(), "last of empty tree")
}

func TestDelete(t *testing.T) {
	tree := makeTree(50, 30, 70, 20, 40, 60, 80)

	// absent key
	v, ok := tree.Delete(item.Integer(99))
	assert.False(t, ok, "deleted absent key")
	assert.Nil(t, v, "value for absent key")
	assert.Equal(t, 7, tree.Count(), "count changed")

	// leaf, single child, two children, root
	for _, k := range []int{20, 30, 50, 70, 40, 80, 60} {
		v, ok := tree.Delete(item.Integer(k))
		assert.True(t, ok, "not deleted: %d", k)
		assert.Equal(t, k*10, v, "wrong value for: %d", k)
		assert.True(t, tree.CheckUp(), "inconsistent up pointers after: %d", k)
		assert.True(t, tree.CheckOrder(), "keys out of order after: %d", k)
		assert.False(t, tree.Has(item.Integer(k)), "still present: %d", k)
	}
	assert.True(t, tree.IsEmpty(), "tree not empty")
	assert.Equal(t, 0, tree.Count(), "count not zero")
}

// deleting a node with two children keeps the other nodes at the
// same addresses
func TestDeleteNodeStability(t *testing.T) {
	tree := makeTree(50, 30, 70, 20, 40)
	n40 := tree.Find(item.Integer(40))
	n20 := tree.Find(item.Integer(20))

	tree.Delete(item.Integer(50))

	assert.Equal(t, n40, tree.Root(), "predecessor did not take the root")
	assert.Equal(t, n40, tree.Find(item.Integer(40)), "node moved")
	assert.Equal(t, n20, tree.Find(item.Integer(20)), "node moved")
	assert.True(t, tree.CheckUp(), "inconsistent up pointers")
}

func TestNodeSwapDistant(t *testing.T) {
	tree := makeTree(4, 2, 6, 1, 3, 5, 7)
	n2 := tree.Find(item.Integer(2))
	n7 := tree.Find(item.Integer(7))
	n2.SetBalance(1)
	n7.SetBalance(-1)

	tree.NodeSwap(n2, n7)

	assert.True(t, tree.CheckUp(), "inconsistent up pointers")
	assert.Equal(t, n7, tree.Root().Left(), "7 not moved to left of root")
	assert.Equal(t, n2, tree.Root().Right().Right(), "2 not moved")
	assert.Equal(t, item.Integer(1), n7.Left().Key(), "children not moved")
	assert.Nil(t, n2.Left(), "leaf position has children")
	assert.Equal(t, int8(1), n2.Balance(), "balance must stay with the node")
	assert.Equal(t, int8(-1), n7.Balance(), "balance must stay with the node")
}

func TestNodeSwapAdjacent(t *testing.T) {
	// child on the left of its parent which is the root
	tree := makeTree(4, 2, 6, 1, 3)
	n4 := tree.Root()
	n2 := n4.Left()
	tree.NodeSwap(n4, n2)
	assert.Equal(t, n2, tree.Root(), "root not swapped")
	assert.Equal(t, n4, n2.Left(), "old root not below")
	assert.Equal(t, item.Integer(6), n2.Right().Key(), "right sub-tree lost")
	assert.Equal(t, item.Integer(1), n4.Left().Key(), "grandchild lost")
	assert.Equal(t, item.Integer(3), n4.Right().Key(), "grandchild lost")
	assert.True(t, tree.CheckUp(), "inconsistent up pointers")

	// argument order reversed, child on the right
	tree = makeTree(4, 2, 6, 5, 7)
	n4 = tree.Root()
	n6 := n4.Right()
	tree.NodeSwap(n6, n4)
	assert.Equal(t, n6, tree.Root(), "root not swapped")
	assert.Equal(t, n4, n6.Right(), "old root not below")
	assert.Equal(t, n6, n4.Parent(), "parent link")
	assert.True(t, tree.CheckUp(), "inconsistent up pointers")

	// siblings
	tree = makeTree(4, 2, 6)
	n2 = tree.Find(item.Integer(2))
	n6 = tree.Find(item.Integer(6))
	tree.NodeSwap(n2, n6)
	assert.Equal(t, n6, tree.Root().Left(), "siblings not swapped")
	assert.Equal(t, n2, tree.Root().Right(), "siblings not swapped")
	assert.True(t, tree.CheckUp(), "inconsistent up pointers")
}

func TestDepth(t *testing.T) {
	tree := makeTree(4, 2, 6, 1, 3, 5, 7)

	assert.Equal(t, uint(0), tree.Root().Depth(), "root depth")
	assert.Equal(t, uint(1), tree.First().Next().Depth(), "depth of 2")
	assert.Equal(t, uint(2), tree.First().Depth(), "depth of 1")

	assert.Equal(t, 2, len(tree.Root().GetChildrenByDepth(1)), "children at depth 1")
	assert.Equal(t, 4, len(tree.Root().GetChildrenByDepth(2)), "children at depth 2")
	assert.Equal(t, 0, len(tree.Root().GetChildrenByDepth(3)), "children at depth 3")
	assert.Equal(t, 3, tree.Height(), "height")
	assert.Equal(t, 0, bst.Height(nil), "height of nil")
}

func TestPrint(t *testing.T) {
	tree := makeTree(2, 1, 3)
	var b bytes.Buffer
	depth := tree.Fprint(&b, true)
	assert.Equal(t, 2, depth, "print depth")
	assert.Contains(t, b.String(), "|------+ \"2\"", "root line")
	assert.Contains(t, b.String(), "/------+ \"3\"", "right line")
	assert.Contains(t, b.String(), "\\------+ \"1\"", "left line")
}

func TestAllocatorReuse(t *testing.T) {
	tree := makeTree(1, 2, 3)
	tree.Delete(item.Integer(2))
	_, free := bst.Allocated()
	assert.True(t, free >= 1, "deleted node not in pool")

	totalBefore, _ := bst.Allocated()
	tree.Insert(item.Integer(9), 90)
	totalAfter, _ := bst.Allocated()
	assert.Equal(t, totalBefore, totalAfter, "pool node not reused")

	n := tree.Find(item.Integer(9))
	assert.Equal(t, 90, n.Value(), "reused node has stale value")
	assert.Nil(t, n.Left(), "reused node has stale link")
	assert.Equal(t, int8(0), n.Balance(), "reused node has stale balance")
}
