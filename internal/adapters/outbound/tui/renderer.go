package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sqlskim/baseline/internal/domain"
	"github.com/sqlskim/baseline/internal/domain/rules"
)

// ── palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderBatch renders a summary of a batch for the terminal. The plain
// report text (report.Text) is printed separately by the caller.
func RenderBatch(batch *domain.BatchReport) string {
	var b strings.Builder

	// ── Header ──
	verdict := passStyle.Bold(true).Render("PASSED")
	if !batch.Passed() {
		verdict = failStyle.Bold(true).Render("FAILED")
	}
	title := headerStyle.Render("sqlskim-baseline")
	subtitle := dimStyle.Render(shortenPath(batch.Root))
	counts := fmt.Sprintf("%d fixtures  %d failed", len(batch.Fixtures), len(batch.Failures))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "  " + counts))
	b.WriteString("\n\n")

	// ── Fixtures ──
	failed := make(map[string]domain.FixtureFailure, len(batch.Failures))
	for _, f := range batch.Failures {
		failed[f.Fixture.Input] = f
	}

	for _, f := range batch.Fixtures {
		failure, ok := failed[f.Input]
		if !ok {
			fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("●"), f.Name)
			continue
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", failStyle.Render("●"), f.Name, kindTag(failure.Kind))
		renderFailureDetail(&b, failure)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")

	if batch.Passed() {
		b.WriteString("  " + passStyle.Render("All fixtures match their baselines.") + "\n")
	} else {
		b.WriteString("  " + hintStyle.Render("See the report below for diff commands and rebaseline steps.") + "\n")
	}
	return b.String()
}

func renderFailureDetail(b *strings.Builder, f domain.FixtureFailure) {
	if f.Kind != domain.FailureContentMismatch {
		if f.Detail != "" {
			fmt.Fprintf(b, "      %s\n", dimStyle.Render(f.Detail))
		}
		return
	}
	for _, r := range f.Outcome.Missing {
		fmt.Fprintf(b, "      %s %s\n", errorTagStyle.Render("-"), describeResult(r))
	}
	for _, r := range f.Outcome.Unexpected {
		fmt.Fprintf(b, "      %s %s\n", warnTagStyle.Render("+"), describeResult(r))
	}
}

func describeResult(r domain.Result) string {
	return fmt.Sprintf("%s %s %s",
		infoStyle.Render(r.RuleID),
		fileStyle.Render(r.Location.String()),
		dimStyle.Render(r.Message),
	)
}

func kindTag(kind domain.FailureKind) string {
	if kind == domain.FailureContentMismatch {
		return warnTagStyle.Render(kind.Label())
	}
	return errorTagStyle.Render(kind.Label())
}

// RenderDiff renders the outcome of comparing two logs.
func RenderDiff(outcome domain.DiffOutcome) string {
	if outcome.Match() {
		return "  " + passStyle.Render("Logs match.") + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s\n\n",
		titleStyle.Render("Differences"),
		dimStyle.Render(fmt.Sprintf("%d missing, %d unexpected", len(outcome.Missing), len(outcome.Unexpected))),
	)
	for _, r := range outcome.Missing {
		fmt.Fprintf(&b, "    %s %s\n", errorTagStyle.Render("missing   "), describeResult(r))
	}
	for _, r := range outcome.Unexpected {
		fmt.Fprintf(&b, "    %s %s\n", warnTagStyle.Render("unexpected"), describeResult(r))
	}
	return b.String()
}

// RenderRules lists the rule catalog. Reserved identifiers are shown only
// when showReserved is set.
func RenderRules(catalog []rules.Rule, showReserved bool) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Rules") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, r := range catalog {
		if r.Status == rules.StatusReserved {
			if showReserved {
				fmt.Fprintf(&b, "  %s  %s\n", faintStyle.Render(string(r.ID)), faintStyle.Render("reserved: "+r.Note))
			}
			continue
		}
		fmt.Fprintf(&b, "  %s  %s\n", infoStyle.Render(string(r.ID)), r.Title())
	}
	return b.String()
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		verdict := passStyle.Render(string(e.Verdict))
		if e.Verdict != domain.VerdictPassed {
			verdict = failStyle.Render(string(e.Verdict))
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			verdict,
			dimStyle.Render(fmt.Sprintf("%d/%d failed", e.Failed, e.Fixtures)),
		)

		if i > 0 {
			diff := e.Failed - entries[i-1].Failed
			if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}
