// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultKeyEncoding   = "text"

	defaultLogDirectory = "log"
	defaultLogFile      = "avlmap.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - optional LevelDB table to load first
type DatabaseType struct {
	Name   string `gluamapper:"name" json:"name"`
	Prefix string `gluamapper:"prefix" json:"prefix"`
}

// RecordType - a key and value to insert
type RecordType struct {
	Key   string `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
}

// Configuration - the contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyEncoding   string               `gluamapper:"key_encoding" json:"key_encoding"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Insert        []RecordType         `gluamapper:"insert" json:"insert"`
	Delete        []string             `gluamapper:"delete" json:"delete"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	encoding item.Encoding
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, dataDirectory, err := util.SplitConfigurationPath(configurationFileName)
	if nil != err {
		return nil, err
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		KeyEncoding:   defaultKeyEncoding,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.encoding, err = item.ParseEncoding(options.KeyEncoding)
	if nil != err {
		return nil, fmt.Errorf("key encoding: %q  error: %s", options.KeyEncoding, err)
	}

	if len(options.Database.Prefix) > 1 {
		return nil, fault.ErrInvalidPrefix
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fault.ErrInvalidDataDirectory
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Database.Name,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	if err := util.CheckPlainFileName(options.Logging.File); nil != err {
		return nil, fmt.Errorf("log file: %q  error: %s", options.Logging.File, err)
	}

	return options, nil
}
