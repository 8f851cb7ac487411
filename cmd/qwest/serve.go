// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/server"
	"github.com/pulumi/qwest/pkg/store"
	"github.com/pulumi/qwest/pkg/util/cmdutil"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP API over the variable store",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			vars, err := store.Open()
			if err != nil {
				return err
			}
			return server.New(vars).ListenAndServe(addr)
		}),
	}
	cmd.PersistentFlags().StringVar(
		&addr, "addr", "127.0.0.1:8080", "The address to listen on")
	return cmd
}
