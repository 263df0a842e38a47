// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/avltree/fault"
)

// Encoding - textual representation of a Bytes key
type Encoding int

// possible encodings
const (
	Text Encoding = iota
	Hex
	Base58
)

// ParseEncoding - convert a configuration name to an encoding, empty
// selects Text
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "", "text", "string":
		return Text, nil
	case "hex":
		return Hex, nil
	case "base58":
		return Base58, nil
	default:
		return Text, fault.ErrInvalidKeyEncoding
	}
}

// Decode - convert text to a key
func (e Encoding) Decode(s string) (Bytes, error) {
	switch e {
	case Text:
		return Bytes(s), nil
	case Hex:
		b, err := hex.DecodeString(s)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return Bytes(b), nil
	case Base58:
		b, err := base58.Decode(s)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return Bytes(b), nil
	default:
		return nil, fault.ErrInvalidKeyEncoding
	}
}

// Encode - convert a key to text
func (e Encoding) Encode(b []byte) string {
	switch e {
	case Hex:
		return hex.EncodeToString(b)
	case Base58:
		return base58.Encode(b)
	default:
		return string(b)
	}
}

// String - name of the encoding
func (e Encoding) String() string {
	switch e {
	case Text:
		return "text"
	case Hex:
		return "hex"
	case Base58:
		return "base58"
	default:
		return "unknown"
	}
}
