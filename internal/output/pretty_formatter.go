package output

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"charm.land/lipgloss/v2"

	"pigeonhole/internal/model"
)

// PrettyFormatter renders organize reports in a human-readable way
type PrettyFormatter struct{}

// NewPrettyFormatter creates a new PrettyFormatter instance
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{}
}

// Format renders the organize report in a human-readable way and writes it to the provided writer
func (f *PrettyFormatter) Format(report *model.Report, w io.Writer) error {
	// Define the styles using True Color (24-bit hex codes)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4DDC")).Bold(true)        // magenta pink
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF"))                     // deep sky blue
	categoryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF99")).Bold(true)      // spring green
	sizeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFFF"))                     // cyan blue
	overwriteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF7F50"))                // coral orange
	summaryHeaderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#B266FF")).Bold(true) // purple
	statLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))                // gray
	statValueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF99")).Bold(true)     // spring green
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF66"))                       // green
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3333"))                     // red

	verb := "Organized"
	if report.DryRun {
		verb = "Would organize"
	}
	header := headerStyle.Render(fmt.Sprintf("📦 %s %s:", verb, report.Root))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	// Print moves
	for _, move := range report.Moves {
		line := fileStyle.Render(fmt.Sprintf("📄 \"%s\"", displayName(report.Root, move.Source))) + " → " +
			categoryStyle.Render(move.Category) + " " +
			sizeStyle.Render(fmt.Sprintf("(%s)", FormatBytes(move.Size)))
		if move.Overwrote {
			line += " " + overwriteStyle.Render("(replaced existing file)")
		}
		if _, err := fmt.Fprintf(w, "   %s\n", line); err != nil {
			return err
		}
	}
	if len(report.Moves) == 0 {
		if _, err := fmt.Fprintf(w, "   %s\n", okStyle.Render("✅ Nothing to move, everything is in place")); err != nil {
			return err
		}
	}

	// Summary
	if _, err := fmt.Fprintln(w, summaryHeaderStyle.Render("\n📊 Summary:")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   %s %s\n", statLabelStyle.Render("📁 Files scanned:"), statValueStyle.Render(fmt.Sprintf("%d", report.Stats.Scanned))); err != nil {
		return err
	}
	movedLabel := "📦 Files moved:"
	if report.DryRun {
		movedLabel = "📦 Files to move:"
	}
	moved := statLabelStyle.Render(movedLabel) + " " + statValueStyle.Render(fmt.Sprintf("%d", report.Stats.Moved)) +
		" " + sizeStyle.Render(fmt.Sprintf("(%s)", FormatBytes(report.Stats.BytesMoved)))
	if _, err := fmt.Fprintf(w, "   %s\n", moved); err != nil {
		return err
	}
	if report.Stats.Overwrites > 0 {
		if _, err := fmt.Fprintf(w, "   %s %s\n", statLabelStyle.Render("♻️ Files overwritten:"), warnStyle.Render(fmt.Sprintf("%d", report.Stats.Overwrites))); err != nil {
			return err
		}
	}
	if report.EmptyDirsRemoved > 0 {
		if _, err := fmt.Fprintf(w, "   %s %s\n", statLabelStyle.Render("🧹 Empty directories removed:"), statValueStyle.Render(fmt.Sprintf("%d", report.EmptyDirsRemoved))); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "   %s %s\n", statLabelStyle.Render("⏱️ Processing time:"), statValueStyle.Render(report.Duration.Round(time.Millisecond).String())); err != nil {
		return err
	}

	// Per-category breakdown
	if len(report.Stats.PerCategory) > 0 {
		if _, err := fmt.Fprintln(w, summaryHeaderStyle.Render("\n🗂️ Files per category:")); err != nil {
			return err
		}
		names := make([]string, 0, len(report.Stats.PerCategory))
		for name := range report.Stats.PerCategory {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintf(w, "   %s %s\n", statLabelStyle.Render(name+":"), statValueStyle.Render(fmt.Sprintf("%d", report.Stats.PerCategory[name]))); err != nil {
				return err
			}
		}
	}

	return nil
}

// Name returns the name of the formatter
func (f *PrettyFormatter) Name() string {
	return "pretty"
}

// displayName shows a moved file relative to the organized root when possible.
func displayName(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
