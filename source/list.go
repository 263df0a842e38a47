// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

// Record - a single key/value pair
type Record struct {
	Key   []byte
	Value []byte
}

// List - records in the order they are to be inserted
type List []Record

// Map - run a function on all records, stop at the first error
func (l List) Map(f func(key []byte, value []byte) error) error {
	for _, r := range l {
		key := make([]byte, len(r.Key))
		copy(key, r.Key)

		value := make([]byte, len(r.Value))
		copy(value, r.Value)

		if err := f(key, value); nil != err {
			return err
		}
	}
	return nil
}
