// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package cmdutil

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// dragon is printed alongside fatal errors.  Spell-books are serious business.
const dragon = `
             __====-_  _-====__
       _--^^^#####//      \\#####^^^--_
    _-^##########// (    ) \\##########^-_
   -############//  |\^^/|  \\############-
 _/############//   (@::@)   \\############\_
/#############((     \\//     ))#############\
 -###############\\    (oo)    //###############-
   -#############\\  / "" \  //#############-
      -#########\\/          \//#########-
        _#/|##########/\######(   /\
`

// printErrorBanner renders a fatal error with the standard banner: a one-line summary in red, the dragon, and the
// full error text in yellow.
func printErrorBanner(msg string) {
	fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("Your qwest angered the dragon!"))
	fmt.Fprintf(os.Stderr, "%s\n", dragon)
	fmt.Fprintln(os.Stderr, color.YellowString("error: %s", msg))
}
