package colorscan

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputHTML renders swatches, a compact list and per-color file listings
	OutputHTML OutputFormat = "html"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputYAML exports the same structure as JSON in YAML
	OutputYAML OutputFormat = "yaml"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the report format. An explicit format wins;
// otherwise it is inferred from the output file extension, falling back to HTML.
func DetermineOutputFormat(formatFlag, outputPath string) (OutputFormat, error) {
	if formatFlag != "" {
		switch strings.ToLower(formatFlag) {
		case "html":
			return OutputHTML, nil
		case "json":
			return OutputJSON, nil
		case "yaml", "yml":
			return OutputYAML, nil
		case "markdown", "md":
			return OutputMarkdown, nil
		default:
			return "", fmt.Errorf("unknown output format %q (want html|json|yaml|markdown)", formatFlag)
		}
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".json":
		return OutputJSON, nil
	case ".yaml", ".yml":
		return OutputYAML, nil
	case ".md", ".markdown":
		return OutputMarkdown, nil
	}
	return OutputHTML, nil
}

// WriteReport writes the result in the given format
func WriteReport(w io.Writer, result *Result, format OutputFormat) error {
	switch format {
	case OutputHTML:
		return WriteHTML(w, result)
	case OutputJSON:
		return WriteJSON(w, result)
	case OutputYAML:
		return WriteYAML(w, result)
	case OutputMarkdown:
		return WriteMarkdown(w, result)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// WriteReportFile renders the report in memory and writes it to path, so a
// failed render never leaves a partial file behind.
func WriteReportFile(path string, result *Result, format OutputFormat) error {
	var buf bytes.Buffer
	if err := WriteReport(&buf, result, format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
