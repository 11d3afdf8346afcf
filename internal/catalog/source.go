package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is one implementation document to scan for declarations.
type Source struct {
	Name    string
	Content string
}

// Provider enumerates implementation sources. The CLI injects a
// filesystem-backed provider; tests substitute in-memory ones.
type Provider interface {
	Sources() ([]Source, error)
}

// DirProvider lists *.gherkin implementation files under Dir, in sorted
// name order.
type DirProvider struct {
	Dir string
}

// Sources reads every implementation file in the directory.
func (p DirProvider) Sources() ([]Source, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, fmt.Errorf("list implementation dir %s: %w", p.Dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gherkin") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no implementation files found in %s", p.Dir)
	}
	return readSources(p.Dir, names)
}

// FileProvider reads an explicit list of implementation files in the
// order given.
type FileProvider struct {
	Paths []string
}

// Sources reads each listed file.
func (p FileProvider) Sources() ([]Source, error) {
	if len(p.Paths) == 0 {
		return nil, fmt.Errorf("no implementation files given")
	}
	sources := make([]Source, 0, len(p.Paths))
	for _, path := range p.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read implementation file: %w", err)
		}
		sources = append(sources, Source{Name: path, Content: string(data)})
	}
	return sources, nil
}

func readSources(dir string, names []string) ([]Source, error) {
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read implementation file: %w", err)
		}
		sources = append(sources, Source{Name: path, Content: string(data)})
	}
	return sources, nil
}
