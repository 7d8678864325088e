package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-fast/generator"
	"github.com/t14raptor/go-fast/parser"
	"github.com/t14raptor/go-fast/transform/downlevel"
)

func newWatchCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run the pass over a file every time it changes on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			if err := watcher.Add(path); err != nil {
				return err
			}

			metrics := downlevel.NewMetrics()
			rebuild := func() error {
				src, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				prog, err := parser.ParseFile(string(src))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					return nil
				}

				res := downlevel.Run(prog, downlevel.Options{}, metrics)
				for _, d := range res.Diagnostics.List {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", path, d.Severity, d.Message)
				}

				out := cmd.OutOrStdout()
				if outPath != "" {
					f, err := os.Create(outPath)
					if err != nil {
						return err
					}
					defer f.Close()
					out = f
				}
				if res.NeedsRuntime {
					fmt.Fprint(out, downlevel.RuntimeSource)
				}
				fmt.Fprintln(out, generator.Generate(prog))
				return nil
			}

			if err := rebuild(); err != nil {
				return err
			}

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						if err := rebuild(); err != nil {
							return err
						}
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write rewritten output to this path instead of stdout")

	return cmd
}
