package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPaths describes where a run's report artifact lands on disk.
type OutputPaths struct {
	Root  string
	RunID string
}

// NewOutputPaths validates and constructs output path metadata.
func NewOutputPaths(root, runID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is empty")
	}
	if strings.TrimSpace(runID) == "" {
		return OutputPaths{}, fmt.Errorf("run ID is empty")
	}
	return OutputPaths{Root: root, RunID: runID}, nil
}

// RunDir returns the directory for a specific run.
func (o OutputPaths) RunDir() string {
	return filepath.Join(o.Root, o.RunID)
}

// ResultsPath returns the path to results.json.
func (o OutputPaths) ResultsPath() string {
	return filepath.Join(o.RunDir(), "results.json")
}

// WriteRunOutputs writes the structured report under outputDir and
// returns the paths used.
func WriteRunOutputs(results Results, outputDir, runID string) (OutputPaths, error) {
	paths, err := NewOutputPaths(outputDir, runID)
	if err != nil {
		return OutputPaths{}, err
	}
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return OutputPaths{}, fmt.Errorf("create output dir: %w", err)
	}
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return OutputPaths{}, fmt.Errorf("marshal results: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(paths.ResultsPath(), payload, 0o644); err != nil {
		return OutputPaths{}, fmt.Errorf("write results.json: %w", err)
	}
	return paths, nil
}
