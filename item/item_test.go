// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/item"
)

func TestCompareString(t *testing.T) {
	lowKey := item.String("1000")
	assert.Equal(t, 0, lowKey.Compare(item.String("1000")), "not equal")
	assert.Equal(t, -1, lowKey.Compare(item.String("8133")), "not less")
	assert.Equal(t, -1, lowKey.Compare(item.String("999")), "bytewise order expected")
	assert.Equal(t, 1, item.String("b").Compare(item.String("a")), "not greater")
	assert.Equal(t, "1000", lowKey.String(), "string form")
}

func TestCompareBytes(t *testing.T) {
	k := item.Bytes{0x01, 0x02}
	assert.Equal(t, 0, k.Compare(item.Bytes{0x01, 0x02}), "not equal")
	assert.Equal(t, -1, k.Compare(item.Bytes{0x01, 0x03}), "not less")
	assert.Equal(t, 1, k.Compare(item.Bytes{0x01}), "prefix should be less")
	assert.Equal(t, "0102", k.String(), "hex form")
}

func TestCompareInteger(t *testing.T) {
	assert.Equal(t, -1, item.Integer(-5).Compare(item.Integer(3)), "not less")
	assert.Equal(t, 1, item.Integer(999).Compare(item.Integer(1000)-2), "not greater")
	assert.Equal(t, 0, item.Integer(7).Compare(item.Integer(7)), "not equal")
	assert.Equal(t, "-42", item.Integer(-42).String(), "decimal form")
}

func TestMixedTypesPanic(t *testing.T) {
	assert.Panics(t, func() { item.String("a").Compare(item.Integer(1)) }, "mixed key types must panic")
}
