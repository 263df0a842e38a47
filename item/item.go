// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package item - key types that satisfy the tree Item interface
//
// Compare panics if given a different key type, a tree must only
// hold keys of one type.
package item

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
)

// String - text key ordered bytewise
type String string

// Compare - string comparison for AVL interface
func (s String) Compare(q interface{}) int {
	return strings.Compare(string(s), string(q.(String)))
}

// String - plain text for printing
func (s String) String() string {
	return string(s)
}

// Bytes - binary key ordered lexicographically, e.g. a database key
type Bytes []byte

// Compare - byte comparison for AVL interface
func (b Bytes) Compare(q interface{}) int {
	return bytes.Compare(b, q.(Bytes))
}

// String - hex string convert for AVL interface
func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// Integer - signed numeric key
type Integer int64

// Compare - numeric comparison for AVL interface
func (i Integer) Compare(q interface{}) int {
	j := q.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - decimal representation
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}
