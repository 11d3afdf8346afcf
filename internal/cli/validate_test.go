package cli

import (
	"strings"
	"testing"
)

// TestValidateAllResolvable verifies the dry run reports success
// without executing anything.
func TestValidateAllResolvable(t *testing.T) {
	dir := t.TempDir()
	featurePath := writeFixture(t, dir, "math.gherkin", passingFeature)
	implPath := writeFixture(t, dir, "impls.gherkin", passingImpls)

	code, stdout, stderr := runCLI("validate", featurePath, implPath)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d\nstderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "OK: all 3 steps have implementations") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

// TestValidateReportsUndefinedSteps verifies unresolved steps are
// listed and the command exits non-zero.
func TestValidateReportsUndefinedSteps(t *testing.T) {
	dir := t.TempDir()
	featurePath := writeFixture(t, dir, "math.gherkin", passingFeature)
	implPath := writeFixture(t, dir, "impls.gherkin", `IMPLEMENTS the number (\d+)
echo "$MATCH_1"
`)

	code, _, stderr := runCLI("validate", featurePath, implPath)
	if code != ExitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "2 of 3 steps have no implementation") {
		t.Fatalf("unexpected stderr:\n%s", stderr)
	}
	if !strings.Contains(stderr, "? When I add 4") {
		t.Fatalf("missing undefined step listing:\n%s", stderr)
	}
}

// TestStepsListsCatalogOrder verifies the steps command prints entries
// in resolution order with provenance.
func TestStepsListsCatalogOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFixture(t, dir, "a.gherkin", "IMPLEMENTS alpha\ntrue\n")
	second := writeFixture(t, dir, "b.gherkin", "IMPLEMENTS beta\ntrue\n")

	code, stdout, stderr := runCLI("steps", first, second)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d\nstderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "2 step implementations:") {
		t.Fatalf("missing count:\n%s", stdout)
	}
	alphaIdx := strings.Index(stdout, "alpha")
	betaIdx := strings.Index(stdout, "beta")
	if alphaIdx < 0 || betaIdx < 0 || alphaIdx > betaIdx {
		t.Fatalf("unexpected order:\n%s", stdout)
	}
}

// TestStepsWarnsOnDuplicates verifies duplicate patterns are reported
// to stderr without failing the command.
func TestStepsWarnsOnDuplicates(t *testing.T) {
	dir := t.TempDir()
	first := writeFixture(t, dir, "a.gherkin", "IMPLEMENTS same step\necho one\n")
	second := writeFixture(t, dir, "b.gherkin", "IMPLEMENTS same step\necho two\n")

	code, _, stderr := runCLI("steps", first, second)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stderr, "duplicate implementation") {
		t.Fatalf("missing duplicate warning:\n%s", stderr)
	}
}
