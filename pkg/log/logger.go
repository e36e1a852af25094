// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log is the logger used by scmidtb. Everything goes to stdout so
// that build logs capture progress and diagnostics in one stream.
package log

import (
	"io"
	"log"
	"os"
)

// Logger describes a logger to be used in scmidtb.
type Logger interface {
	// Infof logs a progress message.
	Infof(format string, args ...interface{})

	// Fatalf logs a fatal message and immediately exits the application
	// with os.Exit(1).
	Fatalf(format string, args ...interface{})
}

// DefaultLogger is the logger used by default everywhere within scmidtb.
var DefaultLogger Logger

func init() {
	DefaultLogger = New(os.Stdout)
}

// New returns a Logger writing to w without timestamps.
func New(w io.Writer) Logger {
	return logWrapper{Logger: log.New(w, "", 0)}
}

type logWrapper struct {
	Logger *log.Logger
}

// Infof implements Logger.
func (logger logWrapper) Infof(format string, args ...interface{}) {
	logger.Logger.Printf("[scmidtb][INFO] "+format, args...)
}

// Fatalf implements Logger.
func (logger logWrapper) Fatalf(format string, args ...interface{}) {
	logger.Logger.Fatalf("[scmidtb][FATAL] "+format, args...)
}

// Fatalf logs a fatal message and immediately exits the application
// with os.Exit (which is expected to be called by the DefaultLogger.Fatalf).
func Fatalf(format string, args ...interface{}) {
	DefaultLogger.Fatalf(format, args...)
}
