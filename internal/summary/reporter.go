// Package summary prints a short terminal summary of a color scan.
package summary

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/yacobolo/colorscan"
)

// Reporter handles terminal output after a scan
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter. Colors are used when forced or when the
// environment supports them.
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(forceColors),
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintStatistics outputs scan counts and where the report went
func (r *Reporter) PrintStatistics(result *colorscan.Result, output string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Colour Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	variables := 0
	if result.Variables != nil {
		variables = result.Variables.Len()
	}
	fmt.Fprintf(r.w, "Unique Colours:   %d\n", len(result.Colors))
	fmt.Fprintf(r.w, "Total Uses:       %d\n", totalUses(result))
	fmt.Fprintf(r.w, "Variables:        %d\n", variables)
	fmt.Fprintf(r.w, "Files Scanned:    %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:    %d\n", result.FilesSkipped)
	if output != "" {
		fmt.Fprintf(r.w, "Report:           %s\n", RenderStyle(StyleGreen, output, r.useColors))
	}
}

// PrintTopColors lists the most used colors, at most limit of them
func (r *Reporter) PrintTopColors(result *colorscan.Result, limit int) {
	top := TopColors(result.Colors, limit)
	if len(top) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Most Used Colours", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	width := 0
	for _, c := range top {
		width = max(width, len(c.Key))
	}

	for i, c := range top {
		label := c.Key + strings.Repeat(" ", width-len(c.Key))
		if style, ok := SwatchStyle(c.Key); ok && r.useColors {
			label = style.Render(" "+label+" ")
		} else {
			label = " " + label + " "
		}
		fmt.Fprintf(r.w, "%2d. %s %s in %s\n", i+1, label,
			pluralizeCount(c.Uses(), "use", "uses"),
			pluralizeCount(len(c.Files), "file", "files"))
	}
}

// PrintWarnings shows files skipped during the scan
func (r *Reporter) PrintWarnings(result *colorscan.Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// TopColors returns up to limit colors ordered by use count, most used first.
// Ties keep hue order.
func TopColors(colors []colorscan.ColorUsage, limit int) []colorscan.ColorUsage {
	if limit <= 0 {
		return nil
	}
	sorted := make([]colorscan.ColorUsage, len(colors))
	copy(sorted, colors)
	slices.SortStableFunc(sorted, func(a, b colorscan.ColorUsage) int {
		return b.Uses() - a.Uses()
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func totalUses(result *colorscan.Result) int {
	n := 0
	for _, c := range result.Colors {
		n += c.Uses()
	}
	return n
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
