// Package compare runs a URL validator against an oracle and reports every
// input where the two disagree.
package compare

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jongio/urljudge/fixtures"
	"github.com/jongio/urljudge/logutil"
	"github.com/jongio/urljudge/metrics"
)

// Checker is anything that can accept or reject a URL.
type Checker interface {
	IsValid(raw string) bool
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(raw string) bool

// IsValid calls f(raw).
func (f CheckerFunc) IsValid(raw string) bool { return f(raw) }

// Mismatch is one input where the subject disagreed with the expected verdict.
type Mismatch struct {
	URL      string `json:"url"`
	Expected bool   `json:"expected"`
	Actual   bool   `json:"actual"`
	Note     string `json:"note,omitempty"`
}

// Report summarizes one run.
type Report struct {
	Subject    string        `json:"subject"`
	Total      int           `json:"total"`
	Mismatches []Mismatch    `json:"mismatches"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Agreed reports whether no mismatch was found.
func (r *Report) Agreed() bool {
	return len(r.Mismatches) == 0
}

// Runner compares Subject with Oracle.
type Runner struct {
	// Name labels the subject in metrics and logs.
	Name    string
	Oracle  Checker
	Subject Checker
	// Workers bounds concurrent checks. Zero means GOMAXPROCS.
	Workers int
}

type outcome struct {
	expected bool
	actual   bool
}

// Run judges every URL with both the oracle and the subject. Mismatches are
// returned in input order. Cancelling ctx stops the run with ctx's error.
func (r *Runner) Run(ctx context.Context, urls []string) (*Report, error) {
	if r.Oracle == nil {
		return nil, fmt.Errorf("compare: oracle is required")
	}
	expected := func(i int) bool { return r.Oracle.IsValid(urls[i]) }
	return r.run(ctx, urls, expected, nil)
}

// RunCases checks the subject against a table of known verdicts. The oracle
// is not consulted.
func (r *Runner) RunCases(ctx context.Context, cases []fixtures.Case) (*Report, error) {
	if len(cases) == 0 {
		return nil, fixtures.ErrNoCases
	}
	expected := func(i int) bool { return cases[i].Valid }
	notes := make([]string, len(cases))
	for i, c := range cases {
		notes[i] = c.Note
	}
	return r.run(ctx, fixtures.URLs(cases), expected, notes)
}

func (r *Runner) run(ctx context.Context, urls []string, expected func(int) bool, notes []string) (*Report, error) {
	if r.Subject == nil {
		return nil, fmt.Errorf("compare: subject is required")
	}

	log := logutil.NewLogger("compare").WithSubject(r.name()).WithOperation("run")
	log.Debug("starting comparison", "urls", len(urls), "workers", r.workers())

	start := time.Now()
	results := make([]outcome, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = outcome{expected: expected(i), actual: r.judge(urls[i])}
			metrics.RecordComparison(r.name(), results[i].expected != results[i].actual)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("comparison cancelled", "error", err)
		return nil, fmt.Errorf("compare %s: %w", r.name(), err)
	}

	report := &Report{
		Subject:    r.name(),
		Total:      len(urls),
		Mismatches: []Mismatch{},
		Elapsed:    time.Since(start),
	}
	for i, o := range results {
		if o.expected == o.actual {
			continue
		}
		m := Mismatch{URL: urls[i], Expected: o.expected, Actual: o.actual}
		if notes != nil {
			m.Note = notes[i]
		}
		report.Mismatches = append(report.Mismatches, m)
	}

	log.Info("comparison finished", "total", report.Total, "mismatches", len(report.Mismatches), "elapsed", report.Elapsed)
	return report, nil
}

func (r *Runner) judge(raw string) bool {
	start := time.Now()
	valid := r.Subject.IsValid(raw)
	metrics.RecordVerdict(r.name(), valid, time.Since(start))
	return valid
}

func (r *Runner) name() string {
	if r.Name == "" {
		return "subject"
	}
	return r.Name
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}
