// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/runner"
	"github.com/pulumi/qwest/pkg/util/cmdutil"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <book> <spell>",
		Short: "Cast one spell: execute a named request from a spell-book",
		Args:  cobra.ExactArgs(2),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runner.HandleRun(args[0], args[1], envName)
		}),
	}
}
