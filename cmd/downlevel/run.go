package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-fast/generator"
	"github.com/t14raptor/go-fast/parser"
	"github.com/t14raptor/go-fast/transform/downlevel"
)

func newRunCommand() *cobra.Command {
	var (
		languageOut string
		metricsAddr string
		write       bool
	)

	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Down-level one or more files and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := downlevel.Options{}
			if languageOut == "es3" {
				opts.LanguageOut = downlevel.ES3
			}

			metrics := downlevel.NewMetrics()
			if metricsAddr != "" {
				serveMetrics(metricsAddr, metrics)
			}

			hadErrors := false
			for _, path := range args {
				src, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				prog, err := parser.ParseFile(string(src))
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				res := downlevel.Run(prog, opts, metrics)
				for _, d := range res.Diagnostics.List {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", path, d.Severity, d.Message)
					if d.Severity == downlevel.SeverityError {
						hadErrors = true
					}
				}

				var out strings.Builder
				if res.NeedsRuntime {
					out.WriteString(downlevel.RuntimeSource)
				}
				out.WriteString(generator.Generate(prog))
				out.WriteString("\n")

				if write {
					if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), out.String())
				}
			}

			if hadErrors {
				return fmt.Errorf("down-leveling failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&languageOut, "language-out", "es5", "output dialect: es5 or es3")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	cmd.Flags().BoolVar(&write, "write", false, "write the rewritten output back to each input file instead of stdout")

	return cmd
}

func serveMetrics(addr string, metrics *downlevel.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
}
