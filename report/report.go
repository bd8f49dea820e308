package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Outcome string

const (
	Succeeded Outcome = "succeeded"
	Skipped   Outcome = "skipped"
	Failed    Outcome = "failed"
)

var outcomeColors = map[Outcome]*color.Color{
	Succeeded: color.New(color.FgGreen),
	Skipped:   color.New(color.FgHiMagenta),
	Failed:    color.New(color.FgRed),
}

type Result struct {
	Err     error
	Item    string
	Message string
	Outcome Outcome
	Step    string
}

func (r Result) String() string {
	s := fmt.Sprintf("%s %s", r.Step, r.Outcome)
	if r.Item != "" {
		s += fmt.Sprintf(" [%s]", r.Item)
	}
	if r.Message != "" {
		s += ": " + r.Message
	}
	if r.Err != nil {
		s += fmt.Sprintf(": %v", r.Err)
	}
	return s
}

// Report collects item results in the order the steps produced them.
type Report struct {
	results []Result
}

func New() *Report {
	return &Report{}
}

func (r *Report) Add(result Result) {
	r.results = append(r.results, result)
}

func (r *Report) Succeeded(step, item, message string) {
	r.Add(Result{Step: step, Item: item, Message: message, Outcome: Succeeded})
}

func (r *Report) Skipped(step, item, message string) {
	r.Add(Result{Step: step, Item: item, Message: message, Outcome: Skipped})
}

func (r *Report) Failed(step, item string, err error) {
	r.Add(Result{Step: step, Item: item, Err: err, Outcome: Failed})
}

func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Step returns the results recorded for a single step.
func (r *Report) Step(name string) []Result {
	var out []Result
	for _, result := range r.results {
		if result.Step == name {
			out = append(out, result)
		}
	}
	return out
}

func (r *Report) Count(outcome Outcome) int {
	var n int
	for _, result := range r.results {
		if result.Outcome == outcome {
			n++
		}
	}
	return n
}

func (r *Report) HasFailures() bool {
	return r.Count(Failed) > 0
}

// Err joins the errors of every failed result, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, result := range r.results {
		if result.Outcome != Failed {
			continue
		}
		err := result.Err
		if err == nil {
			err = errors.New(result.Message)
		}
		errs = append(errs, fmt.Errorf("%s [%s]: %w", result.Step, result.Item, err))
	}

	return errors.Join(errs...)
}

func (r *Report) steps() []string {
	var names []string
	seen := map[string]bool{}
	for _, result := range r.results {
		if seen[result.Step] {
			continue
		}
		seen[result.Step] = true
		names = append(names, result.Step)
	}
	return names
}

func (r *Report) stepOutcome(name string) Outcome {
	outcome := Skipped
	for _, result := range r.Step(name) {
		switch result.Outcome {
		case Failed:
			return Failed
		case Succeeded:
			outcome = Succeeded
		}
	}
	return outcome
}

// Print writes a per-step summary followed by every failure.
func (r *Report) Print(w io.Writer) {
	width := 0
	for _, name := range r.steps() {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range r.steps() {
		results := r.Step(name)
		var counts []string
		for _, outcome := range []Outcome{Succeeded, Skipped, Failed} {
			n := 0
			for _, result := range results {
				if result.Outcome == outcome {
					n++
				}
			}
			if n > 0 {
				counts = append(counts, fmt.Sprintf("%d %s", n, outcome))
			}
		}

		outcome := r.stepOutcome(name)
		label := outcomeColors[outcome].Sprintf("%-9s", outcome)
		fmt.Fprintf(w, "%-*s  %s  %s\n", width, name, label, strings.Join(counts, ", "))
	}

	for _, result := range r.results {
		if result.Outcome != Failed {
			continue
		}
		outcomeColors[Failed].Fprintf(w, "%s\n", result)
	}
}
