// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pkg

import (
	"runtime/debug"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
)

// Go starts a goroutine with panic recovery and stack trace logging.
// If the goroutine panics, it logs the panic value and stack trace
// instead of crashing the process.
func Go(logger log.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("Goroutine panic recovered: %v\nStack: %s", r, string(debug.Stack()))
			}
		}()

		fn()
	}()
}

// GoNamed starts a named goroutine with panic recovery and stack trace logging.
// The name is included in the log message for easier identification during debugging.
func GoNamed(logger log.Logger, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("Goroutine %q panic recovered: %v\nStack: %s", name, r, string(debug.Stack()))
			}
		}()

		fn()
	}()
}
