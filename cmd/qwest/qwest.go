// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/util/cmdutil"
)

// Global flags, shared by every subcommand.
var (
	book    string // the default spell-book name.
	envName string // the variable store environment partition.
	envFile string // an optional dotenv file loaded into the process environment.
)

// NewQwestCmd creates a new qwest Cmd instance.
func NewQwestCmd() *cobra.Command {
	var logToStderr bool
	var verbose int
	cmd := &cobra.Command{
		Use:   "qwest",
		Short: "Qwest casts spell-books of HTTP requests",
		Long: "Qwest casts spell-books of HTTP requests.\n" +
			"\n" +
			"A spell-book is a TOML file describing one API and its named requests.  Each request\n" +
			"may carry pre- and post-scripts that assert on responses and capture variables into a\n" +
			"persistent per-project store, which feeds ${NAME} placeholders on the next cast.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmdutil.InitLogging(logToStderr, verbose)
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					cmdutil.Exit(errors.Wrapf(err, "loading env file %v", envFile))
				}
			} else {
				// A .env in the working directory is picked up opportunistically.
				_ = godotenv.Load()
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	cmd.PersistentFlags().StringVarP(
		&book, "book", "b", "", "The spell-book to use when a command does not name one")
	cmd.PersistentFlags().StringVarP(
		&envName, "env", "e", "default", "The variable environment to read and write")
	cmd.PersistentFlags().StringVar(
		&envFile, "env-file", "", "A dotenv file to load into the process environment before execution")
	cmd.PersistentFlags().BoolVar(
		&logToStderr, "logtostderr", false, "Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(
		&verbose, "verbose", "v", 0, "Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newVarsCmd())
	cmd.AddCommand(newShareCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// bookFromArgs resolves the spell-book name from a positional argument, falling back to the global --book flag
// and finally to "default".
func bookFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if book != "" {
		return book
	}
	return "default"
}
