package difftool

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Locator implements domain.DiffCommander. It probes a fixed list of install
// locations for a side-by-side diff viewer and falls back to plain diff.
// The command it builds is advisory text; it is never executed.
type Locator struct {
	candidates []string
	found      string
	probed     bool
}

// New creates a Locator that probes extra first, then the well-known
// install locations for the current platform.
func New(extra ...string) *Locator {
	candidates := append([]string{}, extra...)
	candidates = append(candidates, defaultCandidates()...)
	return &Locator{candidates: candidates}
}

// NewWithCandidates creates a Locator that probes only candidates.
func NewWithCandidates(candidates ...string) *Locator {
	return &Locator{candidates: append([]string{}, candidates...)}
}

// Find returns the first candidate that exists as a regular file.
func (l *Locator) Find() (string, bool) {
	if !l.probed {
		l.probed = true
		for _, c := range l.candidates {
			if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
				l.found = c
				break
			}
		}
	}
	return l.found, l.found != ""
}

// Command returns a command line that opens expected and actual side by side.
func (l *Locator) Command(expected, actual string) string {
	tool, ok := l.Find()
	if !ok {
		return fmt.Sprintf(`diff "%s" "%s"`, expected, actual)
	}
	if isBeyondCompare(tool) {
		return fmt.Sprintf(`"%s" "%s" "%s" /title1=Expected /title2=Actual`, tool, expected, actual)
	}
	return fmt.Sprintf(`"%s" "%s" "%s"`, tool, expected, actual)
}

func isBeyondCompare(tool string) bool {
	name := strings.ToLower(filepath.Base(tool))
	return strings.HasPrefix(name, "bcomp") || strings.HasPrefix(name, "bc2") ||
		strings.HasPrefix(name, "bcompare")
}

// defaultCandidates lists Beyond Compare install locations, newest version
// first.
func defaultCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		var dirs []string
		if pf := os.Getenv("ProgramFiles(x86)"); pf != "" {
			dirs = append(dirs, pf)
		}
		if pf := os.Getenv("ProgramFiles"); pf != "" {
			dirs = append(dirs, pf)
		}
		var out []string
		for _, d := range dirs {
			out = append(out,
				filepath.Join(d, "Beyond Compare 4", "BComp.exe"),
				filepath.Join(d, "Beyond Compare 3", "BComp.exe"),
				filepath.Join(d, "Beyond Compare 2", "BC2.exe"),
			)
		}
		return out
	case "darwin":
		return []string{
			"/Applications/Beyond Compare.app/Contents/MacOS/bcomp",
			"/usr/local/bin/bcomp",
		}
	default:
		return []string{
			"/usr/bin/bcompare",
			"/usr/local/bin/bcompare",
		}
	}
}
