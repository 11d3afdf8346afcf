package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type memProvider struct {
	sources []Source
}

func (p memProvider) Sources() ([]Source, error) { return p.sources, nil }

// TestBuildScansDeclarations verifies blocks are split on IMPLEMENTS
// lines with bodies running to the next declaration.
func TestBuildScansDeclarations(t *testing.T) {
	doc := `IMPLEMENTS a cart with (\d+) items
echo "cart=$MATCH_1"

IMPLEMENTS I check out
true
`
	cat, warnings, err := Build(memProvider{sources: []Source{{Name: "impl.gherkin", Content: doc}}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(cat.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cat.Entries))
	}
	first := cat.Entries[0]
	if first.Raw != `a cart with (\d+) items` {
		t.Fatalf("unexpected pattern: %q", first.Raw)
	}
	if !strings.Contains(first.Script, `echo "cart=$MATCH_1"`) {
		t.Fatalf("unexpected script: %q", first.Script)
	}
	if first.Source != "impl.gherkin" {
		t.Fatalf("unexpected source: %q", first.Source)
	}
	if cat.Entries[1].Script != "true\n" && strings.TrimSpace(cat.Entries[1].Script) != "true" {
		t.Fatalf("unexpected second script: %q", cat.Entries[1].Script)
	}
}

// TestBuildPreservesSourceOrder verifies entries keep source order then
// declaration order, which the resolver's tie-break depends on.
func TestBuildPreservesSourceOrder(t *testing.T) {
	cat, _, err := Build(memProvider{sources: []Source{
		{Name: "a.gherkin", Content: "IMPLEMENTS second in file\ntrue\nIMPLEMENTS third in file\ntrue\n"},
		{Name: "b.gherkin", Content: "IMPLEMENTS from later source\ntrue\n"},
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := make([]string, 0, len(cat.Entries))
	for _, entry := range cat.Entries {
		got = append(got, entry.Raw)
	}
	want := []string{"second in file", "third in file", "from later source"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestBuildInvalidPatternIsFatal verifies a bad pattern fails the build
// before any step could run.
func TestBuildInvalidPatternIsFatal(t *testing.T) {
	_, _, err := Build(memProvider{sources: []Source{
		{Name: "bad.gherkin", Content: "IMPLEMENTS an (unclosed group\ntrue\n"},
	}})
	if err == nil {
		t.Fatalf("expected compile error")
	}
	cerr, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T: %v", err, err)
	}
	if cerr.Source != "bad.gherkin" || cerr.Pattern != "an (unclosed group" {
		t.Fatalf("unexpected compile error: %+v", cerr)
	}
}

// TestBuildWarnsOnDuplicatePatterns verifies duplicates warn but keep
// both entries.
func TestBuildWarnsOnDuplicatePatterns(t *testing.T) {
	cat, warnings, err := Build(memProvider{sources: []Source{
		{Name: "a.gherkin", Content: "IMPLEMENTS a step\necho one\n"},
		{Name: "b.gherkin", Content: "IMPLEMENTS a step\necho two\n"},
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "duplicate implementation") {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(cat.Entries) != 2 {
		t.Fatalf("expected both entries kept, got %d", len(cat.Entries))
	}
}

// TestCleanScript verifies shebang stripping, CRLF normalization, and
// per-line trailing whitespace removal.
func TestCleanScript(t *testing.T) {
	script := "#!/bin/bash\r\necho hi   \r\nexit 0\t\r\n"
	got := CleanScript(script)
	want := "echo hi\nexit 0\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestDirProviderListsSortedGherkinFiles verifies discovery filters by
// extension and sorts by name.
func TestDirProviderListsSortedGherkinFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.gherkin": "IMPLEMENTS b\ntrue\n",
		"a.gherkin": "IMPLEMENTS a\ntrue\n",
		"notes.txt": "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	sources, err := DirProvider{Dir: dir}.Sources()
	if err != nil {
		t.Fatalf("sources: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	if filepath.Base(sources[0].Name) != "a.gherkin" || filepath.Base(sources[1].Name) != "b.gherkin" {
		t.Fatalf("unexpected order: %v", sources)
	}
}

// TestDirProviderEmptyDirIsError verifies an empty implementation dir
// fails rather than silently producing an empty catalog.
func TestDirProviderEmptyDirIsError(t *testing.T) {
	dir := t.TempDir()
	_, err := DirProvider{Dir: dir}.Sources()
	if err == nil {
		t.Fatalf("expected error for empty dir")
	}
	if !strings.Contains(err.Error(), "no implementation files") {
		t.Fatalf("unexpected error: %v", err)
	}
}
