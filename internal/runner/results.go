package runner

// Status is a step or scenario outcome.
type Status string

const (
	// StatusNotRun marks a step that has not been considered yet.
	StatusNotRun Status = "not_run"
	// StatusPassed marks a step whose script exited zero.
	StatusPassed Status = "passed"
	// StatusFailed marks a step whose script exited non-zero.
	StatusFailed Status = "failed"
	// StatusSkipped marks a step not executed because an earlier step
	// in its scenario failed or was undefined.
	StatusSkipped Status = "skipped"
	// StatusUndefined marks a step with no matching implementation.
	StatusUndefined Status = "undefined"
)

// Results is the feature-scoped aggregate handed to the reporters.
type Results struct {
	Feature   FeatureInfo      `json:"feature"`
	Summary   Summary          `json:"summary"`
	Scenarios []ScenarioResult `json:"scenarios"`
}

// FeatureInfo identifies the feature document that was run.
type FeatureInfo struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Summary holds the aggregate counts for the run.
type Summary struct {
	Scenarios ScenarioCounts `json:"scenarios"`
	Steps     StepCounts     `json:"steps"`
}

// ScenarioCounts counts scenario outcomes. Undefined scenarios count
// under Failed so Passed+Failed always equals Total; the per-scenario
// status string keeps them distinguishable.
type ScenarioCounts struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// StepCounts counts step outcomes.
type StepCounts struct {
	Total     int `json:"total"`
	Passed    int `json:"passed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Undefined int `json:"undefined"`
}

// ScenarioResult is one scenario with its derived status and per-step
// outcomes, background steps included.
type ScenarioResult struct {
	Name   string       `json:"name"`
	Status Status       `json:"status"`
	Steps  []StepResult `json:"steps"`
}

// StepResult is one step outcome. Output is nil unless the step was
// actually executed.
type StepResult struct {
	Keyword string      `json:"keyword"`
	Text    string      `json:"text"`
	Status  Status      `json:"status"`
	Output  *StepOutput `json:"output"`
}

// StepOutput is the captured child process output for an executed step.
type StepOutput struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// Failed reports whether any scenario did not pass.
func (r Results) Failed() bool {
	return r.Summary.Scenarios.Failed > 0
}
