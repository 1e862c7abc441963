package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jongio/urljudge/cliout"
	"github.com/jongio/urljudge/compare"
	"github.com/jongio/urljudge/logutil"
	"github.com/jongio/urljudge/subject"
	"github.com/jongio/urljudge/urlgen"
	"github.com/jongio/urljudge/urljudge"
)

// fuzzResult is the JSON shape of a fuzz run.
type fuzzResult struct {
	Seed uint64 `json:"seed"`
	*compare.Report
}

func newFuzzCmd(g *globalOptions) *cobra.Command {
	var (
		seed        uint64
		count       int
		subjectName string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Compare a validator with the judge on generated URLs",
		Long: `Generate URLs from a seeded generator and report every URL where the
validator under test disagrees with the judge.

A seed of 0 picks one from the clock; the seed used is always printed so the
run can be repeated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			if subjectName == "" {
				subjectName = g.resolved.Subject
			}
			if workers == 0 {
				workers = g.resolved.Workers
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			opts := g.resolved.Options()
			checker, err := subject.Lookup(subjectName, opts)
			if err != nil {
				return err
			}

			logutil.Debug("fuzzing", "seed", seed, "count", count, "subject", subjectName)
			urls := urlgen.New(seed).Batch(count)

			runner := &compare.Runner{
				Name:    subjectName,
				Oracle:  urljudge.New(opts),
				Subject: checker,
				Workers: workers,
			}
			report, err := runner.Run(cmd.Context(), urls)
			if err != nil {
				return err
			}

			result := fuzzResult{Seed: seed, Report: report}
			return cliout.Print(result, func() {
				printReport("Fuzz", report)
				cliout.Info("seed %d", seed)
			})
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Generator seed (0 picks one from the clock)")
	cmd.Flags().IntVarP(&count, "count", "n", 1000, "Number of URLs to generate")
	cmd.Flags().StringVar(&subjectName, "subject", "", fmt.Sprintf("Validator to compare (%v); defaults to the profile's subject", subject.Names()))
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent checks (0 uses the profile, then one per CPU)")
	return cmd
}
