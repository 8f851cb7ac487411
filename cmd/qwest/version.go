// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/util/cmdutil"
	"github.com/pulumi/qwest/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print qwest's version number",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			fmt.Printf("qwest version %v\n", version.Version)
			return nil
		}),
	}
}
