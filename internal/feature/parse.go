package feature

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed feature document with its location.
type ParseError struct {
	Source string
	Line   int
	Msg    string
}

// Error formats the parse error as source:line: message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

const (
	featurePrefix    = "Feature:"
	backgroundPrefix = "Background:"
	scenarioPrefix   = "Scenario:"
)

type parseState int

const (
	stateTitle parseState = iota
	stateNarrative
	stateBackground
	stateScenario
)

// Parse turns the text of one feature document into a Feature value.
// source identifies the document in error messages and in the report.
func Parse(source string, data []byte) (*Feature, error) {
	feat := &Feature{Source: source}
	lines := strings.Split(normalizeLineEndings(string(data)), "\n")

	state := stateTitle
	var narrative []string
	var block *[]Step
	var lastType StepType
	haveLastType := false
	scenarioLine := 0

	fail := func(line int, format string, args ...any) error {
		return &ParseError{Source: source, Line: line, Msg: fmt.Sprintf(format, args...)}
	}
	closeScenario := func(endLine int) error {
		if state != stateScenario {
			return nil
		}
		current := &feat.Scenarios[len(feat.Scenarios)-1]
		if len(current.Steps) == 0 {
			return fail(endLine, "scenario %q has no steps (defined at line %d)", current.Name, scenarioLine)
		}
		return nil
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if state == stateTitle {
			name, ok := blockName(line, featurePrefix)
			if !ok {
				return nil, fail(lineNo, "expected %q title line, got %q", featurePrefix, line)
			}
			if name == "" {
				return nil, fail(lineNo, "feature title is empty")
			}
			feat.Name = name
			state = stateNarrative
			continue
		}

		if _, ok := blockName(line, backgroundPrefix); ok {
			if state == stateBackground || len(feat.Background) > 0 {
				return nil, fail(lineNo, "multiple Background blocks")
			}
			if state != stateNarrative {
				return nil, fail(lineNo, "Background block must precede all scenarios")
			}
			state = stateBackground
			block = &feat.Background
			haveLastType = false
			continue
		}

		if name, ok := blockName(line, scenarioPrefix); ok {
			if err := closeScenario(lineNo); err != nil {
				return nil, err
			}
			if name == "" {
				return nil, fail(lineNo, "scenario name is empty")
			}
			feat.Scenarios = append(feat.Scenarios, Scenario{Name: name, Line: lineNo})
			state = stateScenario
			scenarioLine = lineNo
			block = &feat.Scenarios[len(feat.Scenarios)-1].Steps
			haveLastType = false
			continue
		}

		keyword, text, isStep := splitStep(line)
		switch state {
		case stateNarrative:
			if isStep {
				return nil, fail(lineNo, "step outside of a Background or Scenario block")
			}
			narrative = append(narrative, line)
		case stateBackground, stateScenario:
			if !isStep {
				return nil, fail(lineNo, "expected a step line, got %q", line)
			}
			stepType, ok := keywordType(keyword)
			if !ok {
				if !haveLastType {
					return nil, fail(lineNo, "%s step has no preceding Given/When/Then to continue", keyword)
				}
				stepType = lastType
			} else {
				lastType = stepType
				haveLastType = true
			}
			if text == "" {
				return nil, fail(lineNo, "step text is empty")
			}
			*block = append(*block, Step{Keyword: keyword, Type: stepType, Text: text, Line: lineNo})
		}
	}

	if state == stateTitle {
		return nil, fail(1, "document is empty")
	}
	if err := closeScenario(len(lines)); err != nil {
		return nil, err
	}
	if len(feat.Scenarios) == 0 {
		return nil, fail(len(lines), "feature has no scenarios")
	}
	feat.Narrative = strings.Join(narrative, "\n")
	return feat, nil
}

// blockName matches a "Prefix: name" header line and returns the name.
func blockName(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}

// splitStep splits a line into its leading keyword and remaining text.
func splitStep(line string) (Keyword, string, bool) {
	token, rest, _ := strings.Cut(line, " ")
	switch Keyword(token) {
	case KeywordGiven, KeywordWhen, KeywordThen, KeywordAnd, KeywordBut:
		return Keyword(token), strings.TrimSpace(rest), true
	}
	return "", "", false
}

// keywordType maps a concrete keyword to its semantic type. Continuation
// keywords return ok=false and inherit from the preceding step.
func keywordType(keyword Keyword) (StepType, bool) {
	switch keyword {
	case KeywordGiven:
		return TypeContext, true
	case KeywordWhen:
		return TypeAction, true
	case KeywordThen:
		return TypeExpectation, true
	}
	return "", false
}

// normalizeLineEndings rewrites CRLF and stray CR line endings to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
