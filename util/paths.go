// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// SplitConfigurationPath - absolute path of a configuration file and
// the directory containing it
func SplitConfigurationPath(fileName string) (string, string, error) {
	absolute, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return "", "", err
	}
	directory, _ := filepath.Split(absolute)
	return absolute, filepath.Clean(directory), nil
}

// CheckPlainFileName - a name must not contain any directory part
func CheckPlainFileName(name string) error {
	if "" == name || name != filepath.Base(name) || "." == name || ".." == name {
		return fault.ErrNotPlainFileName
	}
	return nil
}
