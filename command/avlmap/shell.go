// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/item"
)

const shellPrompt = "avlmap: "

// run the interactive shell on the controlling terminal
func shellOnTTY(tree *avl.Tree, encoding item.Encoding, log *logger.L) error {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return fmt.Errorf("shell: stdin is not a terminal")
	}

	oldState, err := terminal.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer terminal.Restore(fd, oldState)

	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	return shell(rw, tree, encoding, log)
}

// read lines until quit or end of input
func shell(rw io.ReadWriter, tree *avl.Tree, encoding item.Encoding, log *logger.L) error {
	console := terminal.NewTerminal(rw, shellPrompt)

	for {
		line, err := console.ReadLine()
		if io.EOF == err {
			return nil
		}
		if nil != err {
			return err
		}
		if shellCommand(console, tree, encoding, log, strings.Fields(line)) {
			return nil
		}
	}
}

// execute one shell command, returns true to quit
//
// output lines end in \r\n for a raw terminal
func shellCommand(w io.Writer, tree *avl.Tree, encoding item.Encoding, log *logger.L, words []string) bool {
	if 0 == len(words) {
		return false
	}

	command := strings.ToLower(words[0])
	arguments := words[1:]

	switch command {
	case "q", "quit", "exit":
		return true

	case "g", "get":
		if 1 != len(arguments) {
			fmt.Fprintf(w, "usage: get KEY\r\n")
			break
		}
		key, err := encoding.Decode(arguments[0])
		if nil != err {
			fmt.Fprintf(w, "error: %s\r\n", err)
			break
		}
		value, err := tree.Get(key)
		if nil != err {
			fmt.Fprintf(w, "error: %s\r\n", err)
			break
		}
		fmt.Fprintf(w, "%q\r\n", value)

	case "p", "put":
		if 2 != len(arguments) {
			fmt.Fprintf(w, "usage: put KEY VALUE\r\n")
			break
		}
		key, err := encoding.Decode(arguments[0])
		if nil != err {
			fmt.Fprintf(w, "error: %s\r\n", err)
			break
		}
		if tree.Insert(key, []byte(arguments[1])) {
			fmt.Fprintf(w, "added\r\n")
		} else {
			fmt.Fprintf(w, "updated\r\n")
		}
		log.Debugf("put: %q  nodes: %d", arguments[0], tree.Count())

	case "d", "del", "delete":
		if 1 != len(arguments) {
			fmt.Fprintf(w, "usage: del KEY\r\n")
			break
		}
		key, err := encoding.Decode(arguments[0])
		if nil != err {
			fmt.Fprintf(w, "error: %s\r\n", err)
			break
		}
		if value, ok := tree.Delete(key); ok {
			fmt.Fprintf(w, "deleted: %q\r\n", value)
		} else {
			fmt.Fprintf(w, "absent\r\n")
		}
		log.Debugf("del: %q  nodes: %d", arguments[0], tree.Count())

	case "l", "list":
		tree.InOrder(func(node *avl.Node) bool {
			fmt.Fprintf(w, "%s → %q\r\n", encodeKey(encoding, node.Key()), node.Value())
			return true
		})

	case "c", "check":
		if err := tree.Verify(); nil != err {
			fmt.Fprintf(w, "error: %s\r\n", err)
			break
		}
		fmt.Fprintf(w, "nodes: %d  height: %d  ok\r\n", tree.Count(), tree.Height())

	default:
		fmt.Fprintf(w, "commands: get KEY, put KEY VALUE, del KEY, list, check, quit\r\n")
	}
	return false
}
