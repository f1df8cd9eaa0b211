// Command clargsdemo loads a declarative option schema from a YAML file and
// parses a trailing command line against it using clargs.
//
// # Usage
//
//	clargsdemo [flags] --schema demo.yaml [-- args...]
//
// Flags before "--" configure clargsdemo itself (schema path, logging,
// profiling, paging); everything after "--" is handed to the schema's
// parser.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/clargs"
	"go.jacobcolvin.com/clargs/log"
	"go.jacobcolvin.com/clargs/profile"
	"go.jacobcolvin.com/clargs/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		schemaPath  string
		page        bool
		listOptions bool
	)

	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "clargsdemo [flags] --schema FILE [-- args...]",
		Short:         "Parse a command line against a YAML-declared option schema",
		Version:       version.Revision,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, demoFlags{
				schemaPath:  schemaPath,
				page:        page,
				listOptions: listOptions,
			}, args, logCfg, profileCfg)
		},
	}

	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "path to a YAML option schema (required)")
	rootCmd.Flags().BoolVar(&page, "page", false, "page help/version output through a scrollable viewer")
	rootCmd.Flags().BoolVar(&listOptions, "list-options", false, "print schema option metadata and exit")
	logCfg.RegisterFlags(rootCmd.Flags())
	profileCfg.RegisterFlags(rootCmd.Flags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register log completions: %v\n", err)
	}

	if err := profileCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register profile completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return 1
	}

	return 0
}

// demoFlags holds the outer CLI's own options, as distinct from the
// YAML-declared schema the demo parses args against.
type demoFlags struct {
	schemaPath  string
	page        bool
	listOptions bool
}

func runDemo(cmd *cobra.Command, flags demoFlags, args []string, logCfg *log.Config, profileCfg *profile.Config) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	profiler := profileCfg.NewProfiler()
	if err := profiler.Start(); err != nil {
		return fmt.Errorf("starting profiler: %w", err)
	}

	defer func() {
		if err := profiler.Stop(); err != nil {
			logger.Error("stopping profiler", "error", err)
		}
	}()

	if flags.schemaPath == "" {
		return fmt.Errorf("--schema is required")
	}

	raw, err := os.ReadFile(flags.schemaPath)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	m, err := loadManifest(raw)
	if err != nil {
		return err
	}

	logger.Info("loaded schema", "name", m.Name, "options", len(m.Options))

	opts, err := m.buildOptions()
	if err != nil {
		return err
	}

	parser, err := clargs.New(opts)
	if err != nil {
		return fmt.Errorf("building schema: %w", err)
	}

	parser.WithManifestPath(flags.schemaPath)

	if flags.listOptions {
		for _, info := range parser.Describe() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-8s group=%q hidden=%v\n", info.Key, info.Kind, info.Group, info.Hide)
		}

		return nil
	}

	values, err := parser.ParseTokens(args)
	if err != nil {
		var ctrl *clargs.Control
		if errors.As(err, &ctrl) {
			if flags.page {
				return page(ctrl.Text)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ctrl.Text)

			return nil
		}

		return err
	}

	for _, opt := range opts {
		key := opt.Key()
		if values.Has(key) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, values[key])
		}
	}

	return nil
}

// page renders text through a scrollable bubbletea pager.
func page(text string) error {
	_, err := tea.NewProgram(newPager(text)).Run()

	return err
}
