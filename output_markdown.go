package colorscan

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes a shareable Markdown report: a table of colors in hue
// order followed by the files each color appears in.
func WriteMarkdown(w io.Writer, result *Result) error {
	var b strings.Builder

	b.WriteString("# Colour Report\n\n")
	fmt.Fprintf(&b, "%d colours in %d files\n\n", len(result.Colors), result.FilesScanned)

	b.WriteString("| Colour | Uses | Files |\n")
	b.WriteString("|--------|------|-------|\n")
	for _, c := range result.Colors {
		fmt.Fprintf(&b, "| `%s` | %d | %d |\n", escapeMarkdownCell(c.Key), c.Uses(), len(c.Files))
	}

	if len(result.Colors) > 0 {
		b.WriteString("\n## File Locations\n")
	}
	for _, c := range result.Colors {
		fmt.Fprintf(&b, "\n### `%s`\n\n", c.Key)
		for _, file := range c.Files {
			fmt.Fprintf(&b, "- %s\n", file)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
