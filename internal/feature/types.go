package feature

// Keyword is the literal leading token of a step line.
type Keyword string

const (
	// KeywordGiven introduces a context step.
	KeywordGiven Keyword = "Given"
	// KeywordWhen introduces an action step.
	KeywordWhen Keyword = "When"
	// KeywordThen introduces an expectation step.
	KeywordThen Keyword = "Then"
	// KeywordAnd continues the previous step's semantic type.
	KeywordAnd Keyword = "And"
	// KeywordBut continues the previous step's semantic type.
	KeywordBut Keyword = "But"
)

// StepType is the semantic category of a step after continuation
// keywords have been resolved.
type StepType string

const (
	// TypeContext marks a precondition step.
	TypeContext StepType = "context"
	// TypeAction marks an action step.
	TypeAction StepType = "action"
	// TypeExpectation marks an assertion step.
	TypeExpectation StepType = "expectation"
)

// Step is one keyworded line of a Background or Scenario block.
type Step struct {
	Keyword Keyword
	Type    StepType
	Text    string
	Line    int
}

// Scenario is one ordered test case. Steps holds only the scenario's
// own steps; background steps are prepended at run time.
type Scenario struct {
	Name  string
	Steps []Step
	Line  int
}

// Feature is the parsed form of one feature document. It is immutable
// after parsing.
type Feature struct {
	Name       string
	Source     string
	Narrative  string
	Background []Step
	Scenarios  []Scenario
}
