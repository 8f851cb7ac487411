// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/util/cmdutil"
	"github.com/pulumi/qwest/pkg/workspace"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the spell-books in the configuration directory",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			books, err := workspace.ListBooks()
			if err != nil {
				return err
			}
			for _, name := range books {
				fmt.Printf("- %s\n", name)
			}
			return nil
		}),
	}
}
