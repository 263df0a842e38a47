// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/bst"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// setup commands
// these do not require the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "check", "c", "print", "p", "list", "l", "get", "g", "stats", "s", "shell", "sh":
		return false // defer processing until tree is built

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--watch] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  check                      (c)      - verify order, parent links and balance (default)\n")
		fmt.Printf("\n")

		fmt.Printf("  print                      (p)      - draw the tree with values and balance factors\n")
		fmt.Printf("\n")

		fmt.Printf("  list                       (l)      - display all keys and values in ascending order\n")
		fmt.Printf("\n")

		fmt.Printf("  get KEY                    (g)      - display the value of a single key\n")
		fmt.Printf("\n")

		fmt.Printf("  stats                      (s)      - display node, height and rotation counts\n")
		fmt.Printf("\n")

		fmt.Printf("  shell                      (sh)     - interactive get/put/del on the tree\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	if len(arguments) < 1 {
		return false
	}

	switch arguments[0] {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the tree has been built from the configuration
func processDataCommand(w io.Writer, tree *avl.Tree, encoding item.Encoding, quiet bool, arguments []string) error {

	command := "check"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "check", "c":
		if err := tree.Verify(); nil != err {
			return err
		}
		if !quiet {
			fmt.Fprintf(w, "nodes: %d  height: %d  ok\n", tree.Count(), tree.Height())
		}

	case "print", "p":
		depth := tree.Fprint(w, true)
		if !quiet {
			fmt.Fprintf(w, "depth: %d\n", depth)
		}

	case "list", "l":
		tree.InOrder(func(node *avl.Node) bool {
			fmt.Fprintf(w, "%s → %q\n", encodeKey(encoding, node.Key()), node.Value())
			return true
		})

	case "get", "g":
		if len(arguments) < 1 {
			return fault.ErrMissingParameters
		}
		key, err := encoding.Decode(arguments[0])
		if nil != err {
			return err
		}
		value, err := tree.Get(key)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%q\n", value)

	case "stats", "s":
		total, free := bst.Allocated()
		fmt.Fprintf(w, "nodes:     %d\n", tree.Count())
		fmt.Fprintf(w, "height:    %d\n", tree.Height())
		fmt.Fprintf(w, "rotations: %d\n", tree.Rotations())
		fmt.Fprintf(w, "allocated: %d\n", total)
		fmt.Fprintf(w, "pooled:    %d\n", free)
		if root := tree.Root(); nil != root {
			fmt.Fprintf(w, "root:      %s\n", encodeKey(encoding, root.Key()))
		}

	default:
		return fault.ErrInvalidCommand
	}

	return nil
}

// keys in the tree are always item.Bytes
func encodeKey(encoding item.Encoding, key avl.Item) string {
	return encoding.Encode(key.(item.Bytes))
}
