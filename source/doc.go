// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package source - feed key/value records into a balanced tree
//
// records come either from a range of a LevelDB database, where a
// single character prefix selects the table, or from a list held in
// the configuration file.
package source
