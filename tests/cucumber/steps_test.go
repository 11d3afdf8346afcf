package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"featrun/internal/cli"

	"github.com/cucumber/godog"
)

// runnerState holds per-scenario fixtures and the captured outcome of
// one runner invocation.
type runnerState struct {
	workDir     string
	featurePath string
	implPaths   []string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

// InitializeScenario wires the cucumber steps to the runner state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &runnerState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a feature file containing:$`, state.aFeatureFileContaining)
	ctx.Step(`^an implementation file containing:$`, state.anImplementationFileContaining)
	ctx.Step(`^the runner executes the feature$`, state.theRunnerExecutesTheFeature)
	ctx.Step(`^the runner exits with code (\d+)$`, state.theRunnerExitsWithCode)
	ctx.Step(`^the report output contains "([^"]*)"$`, state.theReportOutputContains)
}

func (s *runnerState) reset() error {
	dir, err := os.MkdirTemp("", "featrun-cucumber-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	s.featurePath = ""
	s.implPaths = nil
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	return nil
}

func (s *runnerState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

func (s *runnerState) aFeatureFileContaining(doc *godog.DocString) error {
	path := filepath.Join(s.workDir, "feature.gherkin")
	if err := os.WriteFile(path, []byte(doc.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write feature file: %w", err)
	}
	s.featurePath = path
	return nil
}

func (s *runnerState) anImplementationFileContaining(doc *godog.DocString) error {
	path := filepath.Join(s.workDir, fmt.Sprintf("impl-%d.gherkin", len(s.implPaths)))
	if err := os.WriteFile(path, []byte(doc.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write implementation file: %w", err)
	}
	s.implPaths = append(s.implPaths, path)
	return nil
}

func (s *runnerState) theRunnerExecutesTheFeature() error {
	if s.featurePath == "" {
		return fmt.Errorf("no feature file written")
	}
	args := append([]string{"run", "--no-color", s.featurePath}, s.implPaths...)
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *runnerState) theRunnerExitsWithCode(want int) error {
	if s.exitCode != want {
		return fmt.Errorf("exit code %d, want %d\nstdout:\n%s\nstderr:\n%s", s.exitCode, want, s.stdout.String(), s.stderr.String())
	}
	return nil
}

func (s *runnerState) theReportOutputContains(want string) error {
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("output does not contain %q:\n%s", want, s.stdout.String())
	}
	return nil
}
