// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"github.com/pulumi/qwest/pkg/util/cmdutil"
)

func main() {
	if err := NewQwestCmd().Execute(); err != nil {
		cmdutil.Exit(err)
	}
}
