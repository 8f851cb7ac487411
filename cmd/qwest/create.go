// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/util/cmdutil"
	"github.com/pulumi/qwest/pkg/workspace"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new spell-book from a template and open it in your editor",
		Args:  cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, err := workspace.EnsureConfigDir(); err != nil {
				return err
			}
			path, err := workspace.BookPath(name)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				return errors.Errorf("spell-book '%v' already exists at %v", name, path)
			}
			if err := os.WriteFile(path, []byte(workspace.BookTemplate(name)), 0600); err != nil {
				return errors.Wrapf(err, "writing spell-book %v", path)
			}
			return openEditor(path)
		}),
	}
}
