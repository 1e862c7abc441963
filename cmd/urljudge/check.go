package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/urljudge/cliout"
	"github.com/jongio/urljudge/urljudge"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check URL...",
		Short: "Explain the verdict for each URL",
		Long: `Judge each URL and show which component rule failed.

The command exits with an error when any URL is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := urljudge.New(g.resolved.Options())

			verdicts := make([]urljudge.Verdict, 0, len(args))
			invalid := 0
			for _, raw := range args {
				verdict := v.Explain(raw)
				if !verdict.Valid {
					invalid++
				}
				verdicts = append(verdicts, verdict)
			}

			if err := cliout.Print(verdicts, func() { printVerdicts(verdicts) }); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d URLs are invalid", invalid, len(args))
			}
			return nil
		},
	}
}

func printVerdicts(verdicts []urljudge.Verdict) {
	for _, v := range verdicts {
		if v.Valid {
			cliout.Success("%s %s %s", v.URL, cliout.Arrow(), cliout.Bool(true))
			continue
		}
		cliout.Error("%s %s %s", v.URL, cliout.Arrow(), cliout.Bool(false))
		for _, c := range v.Failed() {
			cliout.ItemError("%s %s", c.Component, describe(c))
		}
	}
}

func describe(c urljudge.Check) string {
	if !c.Present {
		return "(missing)"
	}
	if strings.TrimSpace(c.Value) == "" {
		return "(empty)"
	}
	return fmt.Sprintf("%q", c.Value)
}
