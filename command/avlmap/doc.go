// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlmap - build a balanced tree from a configuration file and
// inspect it
//
// records are read from an optional LevelDB table and then from the
// insert list of the configuration, finally the keys of the delete
// list are removed.  The resulting tree can be checked, printed,
// listed, queried or edited from an interactive shell.  With --watch
// the tree is rebuilt every time the configuration file changes.
package main
