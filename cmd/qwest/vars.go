// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/store"
	"github.com/pulumi/qwest/pkg/util/cmdutil"
)

func newVarsCmd() *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Manage the persistent variable store",
	}
	cmd.PersistentFlags().StringVarP(
		&project, "project", "p", "", "The project whose variables to manage")
	cmd.MarkPersistentFlagRequired("project")

	cmd.AddCommand(newVarsListCmd(&project))
	cmd.AddCommand(newVarsSetCmd(&project))
	cmd.AddCommand(newVarsUnsetCmd(&project))
	return cmd
}

func newVarsListCmd(project *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the variables stored for a project and environment",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			vars, err := store.Open()
			if err != nil {
				return err
			}
			all, err := vars.Load(*project, envName)
			if err != nil {
				return err
			}

			fmt.Printf("%-32s %-32s\n", "NAME", "VALUE")
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%-32s %-32s\n", k, all[k])
			}
			return nil
		}),
	}
}

func newVarsSetCmd(project *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set a single variable",
		Args:  cobra.ExactArgs(2),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			vars, err := store.Open()
			if err != nil {
				return err
			}
			return vars.UpsertOne(*project, envName, args[0], args[1])
		}),
	}
}

func newVarsUnsetCmd(project *string) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <name>",
		Short: "Remove a single variable",
		Args:  cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			vars, err := store.Open()
			if err != nil {
				return err
			}
			return vars.Delete(*project, envName, args[0])
		}),
	}
}
