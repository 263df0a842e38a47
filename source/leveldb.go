// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/fault"
)

// LevelDB - records from one table of a LevelDB database
type LevelDB struct {
	db        *leveldb.DB
	prefixLen int
	maxRange  *util.Range
}

// OpenLevelDB - open an existing database read only
//
// prefix is a single character selecting the table, the prefix is
// stripped from the keys given to Map; an empty prefix selects the
// whole database
func OpenLevelDB(name string, prefix string) (*LevelDB, error) {
	if len(prefix) > 1 {
		return nil, fault.ErrInvalidPrefix
	}

	db, err := leveldb.OpenFile(name, &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	})
	if nil != err {
		return nil, err
	}

	l := &LevelDB{
		db: db,
	}
	if 1 == len(prefix) {
		p := prefix[0]
		limit := []byte(nil)
		if p < 255 {
			limit = []byte{p + 1}
		}
		l.prefixLen = 1
		l.maxRange = &util.Range{
			Start: []byte{p}, // Start of key range, included in the range
			Limit: limit,     // Limit of key range, excluded from the range
		}
	}
	return l, nil
}

// Close - release the database
func (l *LevelDB) Close() error {
	return l.db.Close()
}

// Map - run a function on all elements in the range
func (l *LevelDB) Map(f func(key []byte, value []byte) error) error {
	iter := l.db.NewIterator(l.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-l.prefixLen) // strip the prefix
		copy(dataKey, key[l.prefixLen:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
