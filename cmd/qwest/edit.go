// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package main

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/qwest/pkg/util/cmdutil"
	"github.com/pulumi/qwest/pkg/workspace"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name>",
		Short: "Open an existing spell-book in your editor",
		Args:  cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			path, err := workspace.BookPath(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return errors.Errorf("spell-book '%v' does not exist; try 'qwest create %v'", args[0], args[0])
			}
			return openEditor(path)
		}),
	}
}

// openEditor launches $EDITOR (falling back to vi) on the given file, wired to the current terminal.
func openEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "editor %v exited abnormally", editor)
	}
	return nil
}
