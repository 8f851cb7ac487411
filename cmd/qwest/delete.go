// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	survey "gopkg.in/AlecAivazis/survey.v1"

	"github.com/pulumi/qwest/pkg/util/cmdutil"
	"github.com/pulumi/qwest/pkg/workspace"
)

func newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a spell-book file",
		Args:  cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			name := args[0]
			path, err := workspace.BookPath(name)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return errors.Errorf("spell-book '%v' does not exist", name)
			}

			if !yes {
				var confirmed bool
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Delete spell-book '%s'?", name),
				}
				if err := survey.AskOne(prompt, &confirmed, nil); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := os.Remove(path); err != nil {
				return errors.Wrapf(err, "removing %v", path)
			}
			fmt.Printf("Deleted spell-book '%s'\n", name)
			return nil
		}),
	}
	cmd.PersistentFlags().BoolVar(
		&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
