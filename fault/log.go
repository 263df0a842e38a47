// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log writer to flush before a panic
const panicDelay = 100 * time.Millisecond

// channel for the last messages before an abort
var globalData struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		return ErrAlreadyInitialised
	}
	globalData.log = logger.New("PANIC")
	if nil == globalData.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.log {
		globalData.log.Flush()
		globalData.log = nil
	}
}

// Critical - log a simple string with the caller's position
func Critical(message string) {
	criticalf(2, "%s", message)
}

// Criticalf - log a formatted string with the caller's position
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panic - log the message then panic
func Panic(message string) {
	criticalf(2, "%s", message)
	time.Sleep(panicDelay)
	panic(message)
}

// Panicf - log a formatted message then panic
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	criticalf(2, "%s", message)
	time.Sleep(panicDelay)
	panic(message)
}

// PanicIfError - panic only if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %s", message, err)
	criticalf(2, "%s", s)
	time.Sleep(panicDelay)
	panic(s)
}

// prefix the caller's file and line, then write to the log or to
// stdout when Initialise has not been called
func criticalf(depth int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(depth); ok {
		format = fmt.Sprintf("(%q:%d) ", file, line) + format
	}

	globalData.Lock()
	log := globalData.log
	globalData.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
