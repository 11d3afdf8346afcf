// Package report renders a run result for people and for machines.
// The two renderings carry the same information: everything visible in
// the text output can be derived from the JSON document.
package report

import (
	"fmt"
	"io"
	"strings"

	"featrun/internal/runner"
)

const summaryRule = "--------------------------------------------------"

// TextReporter streams a human-readable rendering of the run as it
// progresses. It implements runner.RunObserver.
type TextReporter struct {
	w       io.Writer
	palette palette
}

// NewTextReporter builds a reporter for the writer. Styling is applied
// only when the writer is a terminal and noColor is false.
func NewTextReporter(w io.Writer, noColor bool) *TextReporter {
	return &TextReporter{
		w:       w,
		palette: palette{enabled: !noColor && shouldUseStyling(w)},
	}
}

// OnFeatureStart prints the feature header.
func (r *TextReporter) OnFeatureStart(info runner.FeatureInfo) {
	fmt.Fprintln(r.w, r.palette.apply(styleHeader, "Feature: "+info.Name))
}

// OnScenarioStart prints the scenario header.
func (r *TextReporter) OnScenarioStart(name string) {
	fmt.Fprintf(r.w, "\n  Scenario: %s\n", name)
}

// OnStepResult prints one step line with its status glyph, plus inline
// diagnostics for failed and undefined steps.
func (r *TextReporter) OnStepResult(step runner.StepResult) {
	glyph, role := stepMarker(step.Status)
	line := fmt.Sprintf("    %s %s %s", glyph, step.Keyword, step.Text)
	fmt.Fprintln(r.w, r.palette.apply(role, line))

	switch step.Status {
	case runner.StatusFailed:
		r.printDiagnostics(step)
	case runner.StatusUndefined:
		note := fmt.Sprintf("      no implementation found for: %s %s", step.Keyword, step.Text)
		fmt.Fprintln(r.w, r.palette.apply(styleUndefined, note))
	}
}

// OnScenarioEnd is a no-op; scenario status is visible from its steps.
func (r *TextReporter) OnScenarioEnd(runner.ScenarioResult) {}

// OnRunEnd prints the trailing count summary.
func (r *TextReporter) OnRunEnd(results runner.Results) {
	scenarios := results.Summary.Scenarios
	steps := results.Summary.Steps

	fmt.Fprintln(r.w, "\n"+summaryRule)
	fmt.Fprintln(r.w, "Run Summary:")
	fmt.Fprintf(r.w, "  Scenarios: %d total, %s, %s\n",
		scenarios.Total,
		r.palette.apply(stylePassed, fmt.Sprintf("%d passed", scenarios.Passed)),
		r.palette.apply(styleFailed, fmt.Sprintf("%d failed", scenarios.Failed)))
	fmt.Fprintf(r.w, "  Steps:     %d total, %s, %s, %s, %s\n",
		steps.Total,
		r.palette.apply(stylePassed, fmt.Sprintf("%d passed", steps.Passed)),
		r.palette.apply(styleFailed, fmt.Sprintf("%d failed", steps.Failed)),
		r.palette.apply(styleSkipped, fmt.Sprintf("%d skipped", steps.Skipped)),
		r.palette.apply(styleUndefined, fmt.Sprintf("%d undefined", steps.Undefined)))
	fmt.Fprintln(r.w, summaryRule)
}

func (r *TextReporter) printDiagnostics(step runner.StepResult) {
	if step.Output == nil {
		return
	}
	for _, section := range []struct {
		label string
		text  string
	}{
		{"stdout", step.Output.Stdout},
		{"stderr", step.Output.Stderr},
	} {
		text := strings.TrimRight(section.text, "\n")
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintln(r.w, r.palette.apply(styleFailed, "      "+section.label+": "+line))
		}
	}
}

// stepMarker returns the glyph and color role for a step status.
func stepMarker(status runner.Status) (string, styleRole) {
	switch status {
	case runner.StatusPassed:
		return "✓", stylePassed
	case runner.StatusFailed:
		return "✖", styleFailed
	case runner.StatusSkipped:
		return "-", styleSkipped
	case runner.StatusUndefined:
		return "?", styleUndefined
	}
	return " ", styleDim
}
