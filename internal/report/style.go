package report

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type styleRole int

const (
	styleHeader styleRole = iota
	stylePassed
	styleFailed
	styleSkipped
	styleUndefined
	styleDim
)

var roleColors = map[styleRole]lipgloss.Color{
	styleHeader:    lipgloss.Color("12"),
	stylePassed:    lipgloss.Color("2"),
	styleFailed:    lipgloss.Color("1"),
	styleSkipped:   lipgloss.Color("3"),
	styleUndefined: lipgloss.Color("5"),
	styleDim:       lipgloss.Color("8"),
}

// palette applies role colors, or passes text through when styling is
// disabled.
type palette struct {
	enabled bool
}

func (p palette) apply(role styleRole, text string) string {
	if !p.enabled {
		return text
	}
	return lipgloss.NewStyle().Foreground(roleColors[role]).Render(text)
}

// shouldUseStyling reports whether colored output is appropriate for
// the writer: a terminal, with none of the usual opt-outs set.
func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
