// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// minimum time between rebuilds in watch mode
const rebuildInterval = 2 * time.Second

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	watch := len(options["watch"]) > 0

	if verbose {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	sourceLog := logger.New("source")

	tree, err := buildTree(theConfiguration, sourceLog)
	if nil != err {
		log.Criticalf("build tree error: %s", err)
		exitwithstatus.Message("%s: build tree error: %s", program, err)
	}

	if len(arguments) > 0 && ("shell" == arguments[0] || "sh" == arguments[0]) {
		if err := shellOnTTY(tree, theConfiguration.encoding, log); nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		return
	}

	err = processDataCommand(os.Stdout, tree, theConfiguration.encoding, quiet, arguments)
	if !watch {
		if nil != err {
			log.Errorf("command: %v  error: %s", arguments, err)
			exitwithstatus.Message("%s: error: %s", program, err)
		}
		return
	}
	if nil != err {
		fmt.Printf("error: %s\n", err)
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix))
	if nil != err {
		log.Criticalf("watcher error: %s", err)
		exitwithstatus.Message("%s: watcher error: %s", program, err)
	}

	processes := background.Start(background.Processes{watcher}, nil)
	defer processes.Stop()

	watchLoop(os.Stdout, configurationFile, watcher, quiet, arguments, log, sourceLog)
}

// rebuild and rerun the command on each change until the file is
// removed or a signal arrives
func watchLoop(w io.Writer, configurationFile string, watcher *fileWatcher, quiet bool, arguments []string, log *logger.L, sourceLog *logger.L) {

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	limiter := rate.NewLimiter(rate.Every(rebuildInterval), 1)

	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Fprintf(w, "\nreceived signal: %v\n", sig)
			}
			return

		case <-watcher.remove:
			log.Warn("configuration removed")
			return

		case <-watcher.change:
			if r := limiter.Reserve(); r.OK() {
				time.Sleep(r.Delay())
			}
			watcher.drain()

			if err := rerun(w, configurationFile, quiet, arguments, sourceLog); nil != err {
				log.Errorf("rerun error: %s", err)
				fmt.Fprintf(w, "error: %s\n", err)
			}
		}
	}
}

// read the configuration again and repeat the command on a new tree
func rerun(w io.Writer, configurationFile string, quiet bool, arguments []string, log *logger.L) error {
	options, err := getConfiguration(configurationFile)
	if nil != err {
		return err
	}

	tree, err := buildTree(options, log)
	if nil != err {
		return err
	}

	if !quiet {
		fmt.Fprintf(w, "--- %s\n", time.Now().Format(time.RFC3339))
	}
	return processDataCommand(w, tree, options.encoding, quiet, arguments)
}
