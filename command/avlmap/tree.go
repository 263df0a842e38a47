// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/source"
)

// create a tree from the database, insert list and delete list of
// the configuration, in that order
func buildTree(options *Configuration, log *logger.L) (*avl.Tree, error) {
	tree := avl.New()

	if "" != options.Database.Name {
		log.Infof("database: %q  prefix: %q", options.Database.Name, options.Database.Prefix)

		db, err := source.OpenLevelDB(options.Database.Name, options.Database.Prefix)
		if nil != err {
			return nil, err
		}
		_, err = source.Load(tree, db, log)
		db.Close()
		if nil != err {
			return nil, err
		}
	}

	list := make(source.List, 0, len(options.Insert))
	for i, r := range options.Insert {
		key, err := options.encoding.Decode(r.Key)
		if nil != err {
			return nil, fmt.Errorf("insert[%d]: key: %q  error: %s", i+1, r.Key, err)
		}
		list = append(list, source.Record{
			Key:   key,
			Value: []byte(r.Value),
		})
	}
	if len(list) > 0 {
		if _, err := source.Load(tree, list, log); nil != err {
			return nil, err
		}
	}

	keys := make([][]byte, 0, len(options.Delete))
	for i, k := range options.Delete {
		key, err := options.encoding.Decode(k)
		if nil != err {
			return nil, fmt.Errorf("delete[%d]: key: %q  error: %s", i+1, k, err)
		}
		keys = append(keys, key)
	}
	if len(keys) > 0 {
		source.Remove(tree, keys, log)
	}

	log.Debugf("nodes: %d  rotations: %d", tree.Count(), tree.Rotations())
	return tree, nil
}
