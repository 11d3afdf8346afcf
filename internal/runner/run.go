// Package runner drives the execution of a parsed feature against a
// compiled implementation catalog: it resolves each step, delegates
// execution to a shell executor, applies the skip cascade, and
// accumulates the run result.
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"featrun/internal/catalog"
	"featrun/internal/feature"
	"featrun/internal/shell"
)

// Params configures one run.
type Params struct {
	Executor shell.Executor
	Observer RunObserver
	// Debug enables ambiguity diagnostics on DebugWriter.
	Debug       bool
	DebugWriter io.Writer
}

// Run walks the feature's scenarios in document order and executes
// each resolvable step. Scenarios are isolated: the previous-stdout
// chain resets at every scenario start, and a failure only skips the
// remainder of its own scenario. A returned error is fatal and means
// no usable Results were produced.
func Run(ctx context.Context, feat *feature.Feature, cat *catalog.Catalog, params Params) (Results, error) {
	if params.Executor == nil {
		return Results{}, fmt.Errorf("run: executor is required")
	}
	observer := params.Observer
	if observer == nil {
		observer = NopObserver{}
	}

	results := Results{
		Feature: FeatureInfo{Name: feat.Name, Source: feat.Source},
	}
	observer.OnFeatureStart(results.Feature)

	for _, scenario := range feat.Scenarios {
		observer.OnScenarioStart(scenario.Name)
		scenarioResult, err := runScenario(ctx, feat, scenario, cat, params, observer, &results.Summary.Steps)
		if err != nil {
			return Results{}, err
		}

		results.Summary.Scenarios.Total++
		if scenarioResult.Status == StatusPassed {
			results.Summary.Scenarios.Passed++
		} else {
			results.Summary.Scenarios.Failed++
		}
		results.Scenarios = append(results.Scenarios, scenarioResult)
		observer.OnScenarioEnd(scenarioResult)
	}

	observer.OnRunEnd(results)
	return results, nil
}

func runScenario(
	ctx context.Context,
	feat *feature.Feature,
	scenario feature.Scenario,
	cat *catalog.Catalog,
	params Params,
	observer RunObserver,
	counts *StepCounts,
) (ScenarioResult, error) {
	result := ScenarioResult{Name: scenario.Name, Status: StatusPassed}

	steps := make([]feature.Step, 0, len(feat.Background)+len(scenario.Steps))
	steps = append(steps, feat.Background...)
	steps = append(steps, scenario.Steps...)

	previousStdout := ""
	halted := false

	for _, step := range steps {
		counts.Total++
		stepResult := StepResult{
			Keyword: string(step.Keyword),
			Text:    step.Text,
			Status:  StatusNotRun,
		}

		switch {
		case halted:
			stepResult.Status = StatusSkipped
			counts.Skipped++
		default:
			match, ok := Resolve(cat, step)
			if !ok {
				stepResult.Status = StatusUndefined
				counts.Undefined++
				halted = true
				if result.Status == StatusPassed {
					result.Status = StatusUndefined
				}
				break
			}
			warnAmbiguity(cat, step, params)

			execResult, err := params.Executor.Run(ctx, shell.Invocation{
				Script:         match.Entry.Script,
				Captures:       match.Captures,
				PreviousStdout: previousStdout,
			})
			if err != nil {
				return ScenarioResult{}, fmt.Errorf("step %q: %w", step.Text, err)
			}

			stepResult.Output = &StepOutput{Stdout: execResult.Stdout, Stderr: execResult.Stderr}
			if execResult.ExitCode == 0 {
				stepResult.Status = StatusPassed
				counts.Passed++
				previousStdout = strings.TrimSpace(execResult.Stdout)
			} else {
				stepResult.Status = StatusFailed
				counts.Failed++
				halted = true
				result.Status = StatusFailed
			}
		}

		result.Steps = append(result.Steps, stepResult)
		observer.OnStepResult(stepResult)
	}
	return result, nil
}

func warnAmbiguity(cat *catalog.Catalog, step feature.Step, params Params) {
	if !params.Debug || params.DebugWriter == nil {
		return
	}
	patterns := Ambiguities(cat, step)
	if len(patterns) < 2 {
		return
	}
	fmt.Fprintf(params.DebugWriter, "[debug] step %q matches %d patterns; using %q\n", step.Text, len(patterns), patterns[0])
}
