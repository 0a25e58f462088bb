package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csheth/careerscout/internal/flows"
	"github.com/csheth/careerscout/internal/guide"
	"github.com/csheth/careerscout/internal/output"
	"github.com/csheth/careerscout/internal/render"
)

const cliWidth = 100

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var degree, year string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze career outcomes for a degree program and year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedYear, err := flows.ParseYear(year)
			if err != nil {
				return reportError(cmd, err)
			}
			form := flows.AnalyzeForm{Degree: degree, Year: parsedYear}
			return run(cmd, opts, flows.ActionAnalyze,
				func(ctx context.Context, s *session) (*flows.AnalyzeView, error) {
					return s.mediator.Analyze(ctx, form)
				},
				func(view flows.AnalyzeView) string { return render.Analyze(view, cliWidth) })
		},
	}
	cmd.Flags().StringVar(&degree, "degree", "", "degree program, e.g. \"Computer Science\"")
	cmd.Flags().StringVar(&year, "year", strconv.Itoa(flows.DefaultYear), "graduation year (2020-2035), empty for all years")
	return cmd
}

func newInsightsCmd(opts *rootOptions) *cobra.Command {
	var sample int
	cmd := &cobra.Command{
		Use:   "insights [QUESTION]",
		Short: "Ask a free-text question about career outcomes",
		Long: `Ask a free-text question about career outcomes.

Pass the question as an argument or pick one of the sample questions with
--sample N (see "careerscout samples").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			if sample > 0 {
				samples := guide.SampleQuestions()
				if sample > len(samples) {
					return reportError(cmd, fmt.Errorf("--sample must be between 1 and %d", len(samples)))
				}
				question = samples[sample-1]
			}
			form := flows.InsightsForm{Question: question}
			return run(cmd, opts, flows.ActionInsights,
				func(ctx context.Context, s *session) (*flows.InsightsView, error) {
					return s.mediator.Insights(ctx, form)
				},
				func(view flows.InsightsView) string { return render.Insights(view, cliWidth, true) })
		},
	}
	cmd.Flags().IntVar(&sample, "sample", 0, "use sample question N instead of an argument")
	return cmd
}

func newSamplesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the sample questions for insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(opts.output)
			if err != nil {
				return reportError(cmd, err)
			}
			samples := guide.SampleQuestions()
			return output.Display(cmd.OutOrStdout(), format, samples, func() string {
				lines := []string{render.Header("Sample Questions")}
				for i, q := range samples {
					lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
				}
				return strings.Join(lines, "\n")
			})
		},
	}
}

func newSupportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "support",
		Short: "Show the post-graduation support services index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, flows.ActionSupport,
				func(ctx context.Context, s *session) (*flows.SupportView, error) {
					return s.mediator.SupportServices(ctx)
				},
				func(view flows.SupportView) string { return render.Support(view, cliWidth) })
		},
	}
}

func newROICmd(opts *rootOptions) *cobra.Command {
	form := flows.DefaultROIForm()
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Estimate the return on investment of a degree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, flows.ActionROI,
				func(ctx context.Context, s *session) (*flows.ROIView, error) {
					return s.mediator.ROI(ctx, form)
				},
				func(view flows.ROIView) string { return render.ROI(view, cliWidth) })
		},
	}
	cmd.Flags().StringVar(&form.Institution, "institution", "", "institution name, e.g. \"VIT University\"")
	cmd.Flags().StringVar(&form.Degree, "degree", "", "degree program")
	cmd.Flags().Float64Var(&form.TuitionTotal, "tuition", form.TuitionTotal, "total tuition in INR")
	cmd.Flags().IntVar(&form.Years, "years", form.Years, "program length in years")
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var a, b, year string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare employment and salary outcomes of two institutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedYear, err := flows.ParseYear(year)
			if err != nil {
				return reportError(cmd, err)
			}
			form := flows.CompareForm{InstitutionA: a, InstitutionB: b, Year: parsedYear}
			return run(cmd, opts, flows.ActionCompare,
				func(ctx context.Context, s *session) (*flows.CompareView, error) {
					return s.mediator.Compare(ctx, form)
				},
				func(view flows.CompareView) string { return render.Compare(view, cliWidth) })
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "first institution")
	cmd.Flags().StringVar(&b, "b", "", "second institution")
	cmd.Flags().StringVar(&year, "year", strconv.Itoa(flows.DefaultYear), "graduation year (2020-2035), empty for all years")
	return cmd
}
