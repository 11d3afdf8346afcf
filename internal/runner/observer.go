package runner

// RunObserver receives run lifecycle events as they happen, so a
// reporter can stream output while the run is still in progress.
type RunObserver interface {
	// OnFeatureStart signals the start of the feature run.
	OnFeatureStart(info FeatureInfo)
	// OnScenarioStart signals that a scenario is about to run.
	OnScenarioStart(name string)
	// OnStepResult delivers one finished step outcome.
	OnStepResult(step StepResult)
	// OnScenarioEnd delivers a scenario's derived result.
	OnScenarioEnd(result ScenarioResult)
	// OnRunEnd delivers the final aggregate.
	OnRunEnd(results Results)
}

// NopObserver ignores all events.
type NopObserver struct{}

// OnFeatureStart implements RunObserver.
func (NopObserver) OnFeatureStart(FeatureInfo) {}

// OnScenarioStart implements RunObserver.
func (NopObserver) OnScenarioStart(string) {}

// OnStepResult implements RunObserver.
func (NopObserver) OnStepResult(StepResult) {}

// OnScenarioEnd implements RunObserver.
func (NopObserver) OnScenarioEnd(ScenarioResult) {}

// OnRunEnd implements RunObserver.
func (NopObserver) OnRunEnd(Results) {}
