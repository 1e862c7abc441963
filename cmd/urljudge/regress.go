package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/urljudge/cliout"
	"github.com/jongio/urljudge/compare"
	"github.com/jongio/urljudge/fixtures"
	"github.com/jongio/urljudge/subject"
)

func newRegressCmd(g *globalOptions) *cobra.Command {
	var (
		subjectName string
		casesPath   string
	)

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Check a validator against the fixed case table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if subjectName == "" {
				subjectName = g.resolved.Subject
			}
			checker, err := subject.Lookup(subjectName, g.resolved.Options())
			if err != nil {
				return err
			}

			cases, err := loadCases(casesPath)
			if err != nil {
				return err
			}

			runner := &compare.Runner{Name: subjectName, Subject: checker, Workers: g.resolved.Workers}
			report, err := runner.RunCases(cmd.Context(), cases)
			if err != nil {
				return err
			}

			if err := cliout.Print(report, func() { printReport("Regression", report) }); err != nil {
				return err
			}
			if !report.Agreed() {
				return fmt.Errorf("%s disagreed on %d of %d cases", subjectName, len(report.Mismatches), report.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectName, "subject", "", fmt.Sprintf("Validator to check (%v); defaults to the profile's subject", subject.Names()))
	cmd.Flags().StringVar(&casesPath, "cases", "", "YAML case table (defaults to the built-in table)")
	return cmd
}

func loadCases(path string) ([]fixtures.Case, error) {
	if path == "" {
		return fixtures.Default()
	}
	return fixtures.LoadFile(path)
}

func printReport(title string, report *compare.Report) {
	cliout.Header(fmt.Sprintf("%s: %s", title, report.Subject))
	cliout.Label("Checked", fmt.Sprintf("%d", report.Total))
	cliout.Label("Mismatches", fmt.Sprintf("%d", len(report.Mismatches)))
	cliout.Label("Elapsed", report.Elapsed.String())
	cliout.Newline()

	if report.Agreed() {
		cliout.Success("%s agrees with the judge", report.Subject)
		return
	}

	rows := make([]cliout.TableRow, 0, len(report.Mismatches))
	for _, m := range report.Mismatches {
		rows = append(rows, cliout.TableRow{
			"URL":      m.URL,
			"Expected": fmt.Sprintf("%t", m.Expected),
			"Actual":   fmt.Sprintf("%t", m.Actual),
			"Note":     m.Note,
		})
	}
	cliout.Table([]string{"URL", "Expected", "Actual", "Note"}, rows)
}
