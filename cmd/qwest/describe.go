// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/runner"
	"github.com/pulumi/qwest/pkg/spellbook"
	"github.com/pulumi/qwest/pkg/store"
	"github.com/pulumi/qwest/pkg/util/cmdutil"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [<name>]",
		Short: "Pretty-print the contents of a spell-book",
		Args:  cobra.MaximumNArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			name := bookFromArgs(args)

			vars, err := store.Open()
			if err != nil {
				return err
			}
			seed, err := runner.SeedVars(vars, name, envName)
			if err != nil {
				return err
			}
			b, err := spellbook.LoadBook(name, seed)
			if err != nil {
				return err
			}

			fmt.Printf("Spell-book '%s':\n", b.Api.Name)
			if b.Api.Description != "" {
				fmt.Printf("   %s\n", b.Api.Description)
			}
			fmt.Printf("   base_url: %s\n\n", b.Api.BaseURL)
			for _, r := range b.Requests {
				fmt.Printf("┌─ %s\n", r.Name)
				fmt.Printf("│ method : %s\n", r.Method)
				fmt.Printf("│ path   : %s\n", r.Path)
				if len(r.Headers) > 0 {
					fmt.Println("│ headers:")
					for _, h := range r.Headers {
						fmt.Printf("│   %s: %s\n", h.Key, h.Value)
					}
				}
				if r.Body != nil {
					if pretty, err := json.MarshalIndent(r.Body.Value, "│   ", "  "); err == nil {
						fmt.Printf("│ body   : %s\n", pretty)
					}
				}
				if r.Params != nil {
					if pretty, err := json.MarshalIndent(r.Params.Value, "│   ", "  "); err == nil {
						fmt.Printf("│ params : %s\n", pretty)
					}
				}
				fmt.Println("└──────────────────────────────")
			}
			return nil
		}),
	}
}
