package cli

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// requireBash skips tests that spawn real shell processes when no
// bash is available on the host.
func requireBash(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skipf("bash not available: %v", err)
	}
}

// writeFixture writes a file under dir and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// runCLI invokes the command dispatcher and captures its output.
func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

const passingFeature = `Feature: Arithmetic

Scenario: Addition works
Given the number 3
When I add 4
Then the result should be 7
`

const passingImpls = `IMPLEMENTS the number (\d+)
echo "$MATCH_1"

IMPLEMENTS I add (\d+)
echo $(( PREVIOUS_STEP_STDOUT + MATCH_1 ))

IMPLEMENTS the result should be (\d+)
test "$PREVIOUS_STEP_STDOUT" = "$MATCH_1"
`
