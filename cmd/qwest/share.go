// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/share"
	"github.com/pulumi/qwest/pkg/util/cmdutil"
	"github.com/pulumi/qwest/pkg/workspace"
)

func newShareCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "share <name>",
		Short: "Upload a spell-book to a remote endpoint",
		Args:  cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			name := args[0]
			path, err := workspace.BookPath(name)
			if err != nil {
				return err
			}
			contents, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading spell-book %v", path)
			}
			id, err := share.Upload(to, name, string(contents))
			if err != nil {
				return err
			}
			fmt.Printf("Shared spell-book '%s' as %s\n", name, id)
			return nil
		}),
	}
	cmd.PersistentFlags().StringVar(
		&to, "to", "", "The endpoint to POST the spell-book to")
	cmd.MarkPersistentFlagRequired("to")
	return cmd
}
