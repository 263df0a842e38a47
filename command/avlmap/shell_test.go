// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/item"
)

func TestShellCommands(t *testing.T) {
	tree, options := makeTestTree(t)
	log := logger.New("test")

	tests := []struct {
		line     string
		expected string
	}{
		{"get 5", "\"five\"\r\n"},
		{"get 4", "error: key not found\r\n"},
		{"put 4 FOUR", "added\r\n"},
		{"put 4 four", "updated\r\n"},
		{"get 4", "\"four\"\r\n"},
		{"del 1", "deleted: \"one\"\r\n"},
		{"del 1", "absent\r\n"},
		{"check", "nodes: 6  height: 3  ok\r\n"},
		{"get", "usage: get KEY\r\n"},
		{"help", "commands: get KEY, put KEY VALUE, del KEY, list, check, quit\r\n"},
		{"", ""},
	}

	for _, s := range tests {
		buffer := &bytes.Buffer{}
		quit := shellCommand(buffer, tree, options.encoding, log, strings.Fields(s.line))
		assert.False(t, quit, "line: %q", s.line)
		assert.Equal(t, s.expected, buffer.String(), "line: %q", s.line)
	}

	assert.Nil(t, tree.Verify(), "verify")
	assert.True(t, shellCommand(&bytes.Buffer{}, tree, options.encoding, log, []string{"quit"}), "quit")
}

func TestShellHexKeys(t *testing.T) {
	tree, _ := makeTestTree(t)
	log := logger.New("test")

	buffer := &bytes.Buffer{}
	shellCommand(buffer, tree, item.Hex, log, []string{"get", "35"})
	assert.Equal(t, "\"five\"\r\n", buffer.String(), "hex key")

	buffer = &bytes.Buffer{}
	shellCommand(buffer, tree, item.Hex, log, []string{"get", "xx"})
	assert.Equal(t, "error: invalid key\r\n", buffer.String(), "bad hex key")
}

// terminal input and output
type console struct {
	input  *bytes.Buffer
	output bytes.Buffer
}

func (c *console) Read(b []byte) (int, error) {
	return c.input.Read(b)
}

func (c *console) Write(b []byte) (int, error) {
	return c.output.Write(b)
}

func TestShellSession(t *testing.T) {
	tree, options := makeTestTree(t)

	c := &console{
		input: bytes.NewBufferString("put 9 nine\rget 9\rquit\rget 5\r"),
	}

	err := shell(c, tree, options.encoding, logger.New("test"))
	assert.Nil(t, err, "shell error")
	assert.True(t, tree.Has(item.Bytes("9")), "put ignored")
	assert.Contains(t, c.output.String(), "\"nine\"", "get output")
	assert.NotContains(t, c.output.String(), "\"five\"", "command after quit was run")
}
