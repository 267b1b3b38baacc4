package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/common/expfmt"
	"github.com/specialistvlad/sysmlgraph/internal/app"
	"github.com/specialistvlad/sysmlgraph/internal/query"
	"github.com/spf13/cobra"
)

func newSelfCheckCommand(getApp func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify the built-in kind taxonomy and property schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := getApp().SelfCheck(cmd.Context()); err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}

func newDemoCommand(getApp func() *app.App) *cobra.Command {
	var (
		defects     bool
		showMetrics bool
		match       string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the sample vehicle model, validate it and print a report",
		Long: `Builds a small vehicle model with parts and requirements, validates it,
and prints the diagnostics, requirement coverage and model fingerprint.

Example:
  sysmlgraph demo --defects
  sysmlgraph demo --match 'VehicleModel::Requirements::**'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			w := cmd.OutOrStdout()

			g, err := app.DemoModel(defects)
			if err != nil {
				return fmt.Errorf("failed to build demo model: %w", err)
			}

			if match != "" {
				ids, err := query.MatchQualifiedName(g, match)
				if err != nil {
					return usageError(err)
				}
				for _, id := range ids {
					qn, _ := query.QualifiedName(g, id)
					fmt.Fprintln(w, qn)
				}
				return nil
			}

			report := a.Check(cmd.Context(), g)
			app.WriteReport(w, g, report)

			if showMetrics {
				if err := writeMetrics(cmd, a); err != nil {
					return err
				}
			}
			if report.Result.HasErrors() {
				return &ExitError{Code: 1, Message: "model has validation errors"}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&defects, "defects", false, "Add deliberate structural defects to the model.")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print the collected metrics after the report.")
	cmd.Flags().StringVar(&match, "match", "", "Only list the qualified names matching this glob pattern.")
	return cmd
}

func writeMetrics(cmd *cobra.Command, a *app.App) error {
	gatherer := a.Gatherer()
	if gatherer == nil {
		return &ExitError{Code: 2, Message: "metrics are disabled in the configuration"}
	}
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Metrics:")
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func newServeCommand(getApp func() *app.App) *cobra.Command {
	var (
		addr    string
		defects bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve health, metrics and validation reports for the sample model over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.DemoModel(defects)
			if err != nil {
				return fmt.Errorf("failed to build demo model: %w", err)
			}
			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return getApp().Serve(ctx, addr, g, nil)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on.")
	cmd.Flags().BoolVar(&defects, "defects", false, "Add deliberate structural defects to the model.")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
