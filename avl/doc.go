// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree built on the bst package, with
// parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insert and Delete make the plain structural change first, then walk
// from the point of change up to the root rotating any node whose
// sub-tree heights differ by more than one.  Rotations only move
// links; after every operation the balance factors of the whole tree
// are recomputed from the sub-tree heights.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Delete does not copy
// data between nodes so that a node pointer stays attached to its key
// until that key is deleted.
package avl
