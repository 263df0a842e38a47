// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		name     string
		expected item.Encoding
	}{
		{"", item.Text},
		{"text", item.Text},
		{"HEX", item.Hex},
		{"base58", item.Base58},
	}
	for _, s := range tests {
		e, err := item.ParseEncoding(s.name)
		assert.Nil(t, err, "name: %q", s.name)
		assert.Equal(t, s.expected, e, "name: %q", s.name)
	}

	_, err := item.ParseEncoding("base64")
	assert.Equal(t, fault.ErrInvalidKeyEncoding, err, "unknown encoding")
}

func TestEncodings(t *testing.T) {
	raw := []byte("hello world")
	tests := []struct {
		encoding item.Encoding
		text     string
	}{
		{item.Text, "hello world"},
		{item.Hex, "68656c6c6f20776f726c64"},
		{item.Base58, "StV1DL6CwTryKyV"},
	}
	for _, s := range tests {
		assert.Equal(t, s.text, s.encoding.Encode(raw), "encode: %s", s.encoding)
		key, err := s.encoding.Decode(s.text)
		assert.Nil(t, err, "decode: %s", s.encoding)
		assert.Equal(t, item.Bytes(raw), key, "decode: %s", s.encoding)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := item.Hex.Decode("0g")
	assert.Equal(t, fault.ErrInvalidKey, err, "bad hex")

	_, err = item.Base58.Decode("0OIl")
	assert.Equal(t, fault.ErrInvalidKey, err, "bad base58")
}
