package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/csheth/careerscout/internal/health"
	"github.com/csheth/careerscout/internal/output"
)

var errUnhealthy = errors.New("backend unhealthy")

type statusReport struct {
	APIBase   string `json:"api_base" yaml:"api_base"`
	Status    string `json:"status" yaml:"status"`
	Label     string `json:"label" yaml:"label"`
	LatencyMS int64  `json:"latency_ms" yaml:"latency_ms"`
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the backend answers within the probe timeout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return reportError(cmd, err)
			}
			stop := output.StartSpinner("Checking backend...")
			result := health.Probe(cmd.Context(), s.client, s.cfg.ProbeTimeout)
			stop()

			report := statusReport{
				APIBase:   s.cfg.APIBase,
				Status:    result.Status.String(),
				Label:     result.Status.Label(),
				LatencyMS: result.Latency.Milliseconds(),
			}
			out := cmd.OutOrStdout()
			if s.format != output.FormatHuman {
				if err := output.Display(out, s.format, report, nil); err != nil {
					return err
				}
			} else if result.Status == health.StatusConnected {
				output.PrintSuccess(out, fmt.Sprintf("%s at %s (%s)", report.Label, report.APIBase, result.Latency.Round(time.Millisecond)))
			} else {
				output.PrintError(out, fmt.Sprintf("%s at %s", report.Label, report.APIBase))
			}
			if result.Status != health.StatusConnected {
				return errUnhealthy
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "careerscout %s\n", version)
		},
	}
}
