package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/csheth/careerscout/internal/api"
	"github.com/csheth/careerscout/internal/config"
	"github.com/csheth/careerscout/internal/flows"
	"github.com/csheth/careerscout/internal/output"
	"github.com/csheth/careerscout/internal/tui"
)

type rootOptions struct {
	envFile       string
	apiBase       string
	timeout       time.Duration
	probeInterval time.Duration
	logFile       string
	noAltScreen   bool
	output        string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "careerscout",
		Short: "Explore graduate career outcomes from the terminal",
		Long: `CareerScout analyzes employment rates, salaries, support services and ROI
for Indian institutions using the career outcomes API.

Run without a subcommand to open the interactive dashboard.

Examples:
  # Open the dashboard against a local backend
  careerscout --api-base http://localhost:8000

  # Analyze Computer Science outcomes for 2025 as JSON
  careerscout analyze --degree "Computer Science" --year 2025 -o json

  # Compare two institutions
  careerscout compare --a "VIT University" --b "SRM University"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "optional .env file to load before reading the environment")
	flags.StringVar(&opts.apiBase, "api-base", "", "career outcomes API base URL (overrides "+config.EnvAPIBase+")")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout for flow calls, 0 for none")
	flags.StringVarP(&opts.output, "output", "o", string(output.FormatHuman), "Output format (human, json, yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	cmd.Flags().DurationVar(&opts.probeInterval, "probe-interval", 0, "how often the dashboard checks the backend, 0 to only check at startup")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write dashboard logs to this file")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newInsightsCmd(opts),
		newSamplesCmd(opts),
		newSupportCmd(opts),
		newROICmd(opts),
		newCompareCmd(opts),
		newStatusCmd(opts),
		newVersionCmd(),
		newMockBackendCmd(),
	)
	return cmd
}

// resolveConfig layers defaults, .env, the environment and flags. Duration
// flags apply whenever they were set, so an explicit 0 overrides the
// environment.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return config.Config{}, err
	}
	overrides := config.Config{
		APIBase: opts.apiBase,
		LogFile: opts.logFile,
	}
	cfg.Merge(&overrides)
	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.RequestTimeout = opts.timeout
	}
	if flags.Changed("probe-interval") {
		cfg.ProbeInterval = opts.probeInterval
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newClient(cfg config.Config) *api.Client {
	return api.New(cfg.APIBase,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithUserAgent("careerscout/"+version),
	)
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return reportError(cmd, err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "careerscout")
		if err != nil {
			return reportError(cmd, fmt.Errorf("open log file: %w", err))
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := newClient(cfg)
	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Mediator:      flows.New(client),
			Pinger:        client,
			ProbeInterval: cfg.ProbeInterval,
			ProbeTimeout:  cfg.ProbeTimeout,
			APIBase:       cfg.APIBase,
		}),
		programOpts...,
	)
	if _, err := program.Run(); err != nil {
		return reportError(cmd, fmt.Errorf("program error: %w", err))
	}
	return nil
}

// session is what every one-shot subcommand needs.
type session struct {
	cfg      config.Config
	client   *api.Client
	mediator *flows.Mediator
	format   output.Format
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	format, err := output.ParseFormat(opts.output)
	if err != nil {
		return nil, err
	}
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}
	client := newClient(cfg)
	return &session{cfg: cfg, client: client, mediator: flows.New(client), format: format}, nil
}

// run executes one flow behind a spinner and prints either the view or
// the single notice the flow produced.
func run[V any](cmd *cobra.Command, opts *rootOptions, action flows.Action, call func(context.Context, *session) (*V, error), human func(V) string) error {
	s, err := newSession(cmd, opts)
	if err != nil {
		return reportError(cmd, err)
	}
	stop := output.StartSpinner(flows.LoadingMessage(action))
	view, err := call(cmd.Context(), s)
	stop()
	if err != nil {
		return reportError(cmd, err)
	}
	out := cmd.OutOrStdout()
	if err := output.Display(out, s.format, view, func() string { return human(*view) }); err != nil {
		return err
	}
	if s.format == output.FormatHuman {
		output.Footer(out)
	}
	return nil
}

// reportError prints err once, as a warning for validation failures and as
// an error otherwise, and returns it so the exit status is non-zero.
func reportError(cmd *cobra.Command, err error) error {
	w := cmd.ErrOrStderr()
	if flows.IsValidation(err) {
		output.PrintWarning(w, err.Error())
	} else {
		output.PrintError(w, err.Error())
	}
	return err
}
