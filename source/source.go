// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// Source - anything that can enumerate key/value records
//
// the slices passed to f belong to f
type Source interface {
	Map(f func(key []byte, value []byte) error) error
}

// Result - counts from a load
type Result struct {
	Records int
	Added   int
	Updated int
}

// Load - insert every record of a source into the tree, later records
// overwrite earlier ones with the same key
func Load(tree *avl.Tree, src Source, log *logger.L) (Result, error) {
	result := Result{}

	if nil == tree || nil == src {
		return result, fault.ErrMissingParameters
	}

	err := src.Map(func(key []byte, value []byte) error {
		result.Records += 1
		if tree.Insert(item.Bytes(key), value) {
			result.Added += 1
		} else {
			result.Updated += 1
			if nil != log {
				log.Debugf("overwrite key: %x", key)
			}
		}
		return nil
	})
	if nil != err {
		if nil != log {
			log.Errorf("load stopped after: %d records  error: %s", result.Records, err)
		}
		return result, err
	}

	if nil != log {
		log.Infof("records: %d  added: %d  updated: %d  nodes: %d", result.Records, result.Added, result.Updated, tree.Count())
	}
	return result, nil
}

// Remove - delete keys from the tree, returns the number actually
// present
func Remove(tree *avl.Tree, keys [][]byte, log *logger.L) int {
	n := 0
	for _, key := range keys {
		if _, ok := tree.Delete(item.Bytes(key)); ok {
			n += 1
		} else if nil != log {
			log.Debugf("delete absent key: %x", key)
		}
	}
	if nil != log {
		log.Infof("deleted: %d of: %d  nodes: %d", n, len(keys), tree.Count())
	}
	return n
}
