package shell

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Locator finds a POSIX-compatible command interpreter on the host.
// Discovery lives behind this interface so the executor stays
// platform-agnostic and tests can pin a shell.
type Locator interface {
	Locate() (string, error)
}

// FixedLocator returns a preconfigured shell path without searching.
type FixedLocator struct {
	Path string
}

// Locate returns the configured path.
func (l FixedLocator) Locate() (string, error) {
	if l.Path == "" {
		return "", fmt.Errorf("shell path is empty")
	}
	return l.Path, nil
}

// PathLocator searches the host for bash. On Windows it prefers Git
// Bash next to git.exe and rejects WSL, which would run scripts in a
// different environment than the one the runner prepared.
type PathLocator struct{}

// Locate returns the path of a usable bash executable.
func (PathLocator) Locate() (string, error) {
	if runtime.GOOS != "windows" {
		path, err := exec.LookPath("bash")
		if err != nil {
			return "", fmt.Errorf("bash not found in PATH")
		}
		return path, nil
	}
	return locateWindowsBash()
}

func locateWindowsBash() (string, error) {
	if gitPath, err := exec.LookPath("git"); err == nil {
		bashPath := filepath.Join(filepath.Dir(gitPath), "bash.exe")
		if _, err := os.Stat(bashPath); err == nil {
			return bashPath, nil
		}
	}
	for _, candidate := range windowsBashCandidates() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no suitable bash executable found; install Git for Windows and add its bin directory to PATH")
}

func windowsBashCandidates() []string {
	candidates := []string{
		filepath.Join(envOr("ProgramFiles", `C:\Program Files`), "Git", "bin", "bash.exe"),
		filepath.Join(envOr("ProgramFiles(x86)", `C:\Program Files (x86)`), "Git", "bin", "bash.exe"),
	}
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		candidates = append(candidates, filepath.Join(localAppData, "Programs", "Git", "bin", "bash.exe"))
	}
	return candidates
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
