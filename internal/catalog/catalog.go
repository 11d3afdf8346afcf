// Package catalog compiles step implementation documents into an
// ordered lookup table. Each document holds declaration blocks: an
// "IMPLEMENTS <pattern>" line followed by a shell script body running
// up to the next declaration or end of document.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

const implementsPrefix = "IMPLEMENTS "

// Entry binds one compiled step pattern to its script body. Entries are
// immutable once the catalog is built.
type Entry struct {
	Pattern *regexp.Regexp
	Raw     string
	Script  string
	Source  string
}

// Catalog is the flat ordered list of entries. Resolution order is
// source order, then declaration order within a source.
type Catalog struct {
	Entries []Entry
}

// CompileError reports a declaration whose pattern is not a valid
// regular expression. It aborts the run before any step executes.
type CompileError struct {
	Source  string
	Pattern string
	Err     error
}

// Error names the source and the offending pattern.
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: invalid step pattern %q: %v", e.Source, e.Pattern, e.Err)
}

// Unwrap exposes the underlying regexp error.
func (e *CompileError) Unwrap() error { return e.Err }

// Build scans the provider's sources and compiles every declaration.
// It returns the catalog plus warnings about duplicate patterns; a
// pattern that fails to compile is a fatal error.
func Build(provider Provider) (*Catalog, []string, error) {
	sources, err := provider.Sources()
	if err != nil {
		return nil, nil, err
	}
	return build(sources)
}

func build(sources []Source) (*Catalog, []string, error) {
	cat := &Catalog{}
	var warnings []string
	seen := map[string]string{}

	for _, source := range sources {
		declarations := scan(source)
		for _, decl := range declarations {
			pattern, err := compile(decl.pattern)
			if err != nil {
				return nil, nil, &CompileError{Source: source.Name, Pattern: decl.pattern, Err: err}
			}
			if prev, ok := seen[decl.pattern]; ok {
				warnings = append(warnings, fmt.Sprintf("duplicate implementation for step %q (first in %s, again in %s)", decl.pattern, prev, source.Name))
			} else {
				seen[decl.pattern] = source.Name
			}
			cat.Entries = append(cat.Entries, Entry{
				Pattern: pattern,
				Raw:     decl.pattern,
				Script:  CleanScript(decl.script),
				Source:  source.Name,
			})
		}
	}
	return cat, warnings, nil
}

// compile anchors the pattern and makes it case-insensitive, matching
// how step text is resolved against it.
func compile(raw string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)^(?:" + raw + ")$")
}

type declaration struct {
	pattern string
	script  string
}

// scan splits one source document into its declaration blocks.
func scan(source Source) []declaration {
	lines := strings.Split(normalizeLineEndings(source.Content), "\n")
	var declarations []declaration
	var pattern string
	var body []string

	flush := func() {
		if pattern == "" {
			return
		}
		declarations = append(declarations, declaration{pattern: pattern, script: strings.Join(body, "\n")})
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, implementsPrefix) {
			flush()
			pattern = strings.TrimSpace(trimmed[len(implementsPrefix):])
			body = body[:0]
			continue
		}
		if pattern != "" {
			body = append(body, line)
		}
	}
	flush()
	return declarations
}

// CleanScript prepares a script body for execution: line endings are
// normalized, a leading shebang is dropped since the runner invokes the
// shell explicitly, and trailing whitespace is stripped per line.
func CleanScript(script string) string {
	cleaned := normalizeLineEndings(script)
	lines := strings.Split(cleaned, "\n")
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "#!") {
		lines = lines[1:]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
