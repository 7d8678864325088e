// Command downlevel runs the ES6-to-ES5/ES3 down-leveling pass over one or
// more JavaScript files and prints the rewritten source.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "downlevel",
		Short: "Rewrite ES6 JavaScript into ES5/ES3-compatible source",
		Long: `downlevel rewrites classes, for-of loops, rest parameters, spread
elements, computed property keys and shorthand object literal members into
constructs available in ES5/ES3.`,
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newWatchCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
