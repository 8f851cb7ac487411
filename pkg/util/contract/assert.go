// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package contract

import (
	"fmt"

	"github.com/golang/glog"
)

const assertMsg = "An assertion has failed"
const requireMsg = "A precondition has failed for %v"

// Assert checks a condition and fails fast if it is false.
func Assert(cond bool) {
	if !cond {
		failfast(assertMsg)
	}
}

// Assertf checks a condition and fails fast if it is false, formatting and logging the given message.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v", assertMsg, fmt.Sprintf(msg, args...)))
	}
}

// Require checks a precondition pertaining to a function parameter, and fails fast if it is false.
func Require(cond bool, param string) {
	if !cond {
		failfast(fmt.Sprintf(requireMsg, param))
	}
}

// Requiref checks a precondition pertaining to a function parameter, and fails fast if it is false,
// formatting and logging the given message.
func Requiref(cond bool, param string, msg string, args ...interface{}) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v", fmt.Sprintf(requireMsg, param), fmt.Sprintf(msg, args...)))
	}
}

// failfast logs and panics the process in a way that is friendly to debugging.
func failfast(msg string) {
	glog.Fatal(msg)
}
