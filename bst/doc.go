// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with parent
// pointers, used as the substrate for balanced trees
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes expose their links through setters so that a balancing tree
// can perform rotations; the plain Insert and Delete here never
// rebalance.  Every node carries a balance field that this package
// only stores and swaps, its meaning belongs to the balancing tree.
package bst
