// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sync"

	"github.com/bitmark-inc/avltree/fault"
)

// global data for allocator, shared by all trees
var pool struct {
	sync.Mutex
	free       *Node // linked list of reclaimed nodes through the up pointer
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}, parent *Node) *Node {
	pool.Lock()
	defer pool.Unlock()

	if nil == pool.free {
		if 0 != pool.freeNodes {
			fault.Panicf("pool corrupt: free count: %d with empty list", pool.freeNodes)
		}
		pool.totalNodes += 1
		return &Node{
			key:   key,
			value: value,
			up:    parent,
		}
	}

	p := pool.free
	pool.free = p.up
	pool.freeNodes -= 1

	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = parent // also clears the free list link
	return p
}

// reclaim a node and keep it in the pool
func freeNode(node *Node) {
	pool.Lock()
	defer pool.Unlock()

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.balance = 0

	node.up = pool.free
	pool.free = node
	pool.freeNodes += 1
}

// Allocated - total nodes created and the number waiting in the pool
func Allocated() (total int, free int) {
	pool.Lock()
	defer pool.Unlock()
	return pool.totalNodes, pool.freeNodes
}
