package colorscan

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// JSONOutput represents the structured export schema (JSON and YAML)
type JSONOutput struct {
	Version   string         `json:"version" yaml:"version"`
	Timestamp string         `json:"timestamp" yaml:"timestamp"`
	Summary   JSONSummary    `json:"summary" yaml:"summary"`
	Colors    []JSONColor    `json:"colors" yaml:"colors"`
	Variables []JSONVariable `json:"variables" yaml:"variables"`
	Warnings  []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Colors          int `json:"colors" yaml:"colors"`
	Variables       int `json:"variables" yaml:"variables"`
	FilesDiscovered int `json:"files_discovered" yaml:"files_discovered"`
	FilesScanned    int `json:"files_scanned" yaml:"files_scanned"`
	FilesSkipped    int `json:"files_skipped" yaml:"files_skipped"`
}

// JSONColor represents one color key in hue order
type JSONColor struct {
	Key   string   `json:"key" yaml:"key"`
	Hue   float64  `json:"hue" yaml:"hue"`
	Uses  int      `json:"uses" yaml:"uses"`
	Files []string `json:"files" yaml:"files"`
}

// JSONVariable is a resolved stylesheet variable
type JSONVariable struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// WriteJSON writes the result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

// WriteYAML writes the result as YAML
func WriteYAML(w io.Writer, result *Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(buildJSONOutput(result)); err != nil {
		return err
	}
	return encoder.Close()
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	colors := make([]JSONColor, len(result.Colors))
	for i, c := range result.Colors {
		colors[i] = JSONColor{
			Key:   c.Key,
			Hue:   c.Hue,
			Uses:  c.Uses(),
			Files: c.Files,
		}
	}

	var variables []JSONVariable
	numVariables := 0
	if result.Variables != nil {
		numVariables = result.Variables.Len()
		variables = make([]JSONVariable, 0, numVariables)
		for _, name := range result.Variables.Names() {
			color, _ := result.Variables.Lookup(name)
			variables = append(variables, JSONVariable{Name: name, Color: color})
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Colors:          len(result.Colors),
			Variables:       numVariables,
			FilesDiscovered: result.FilesDiscovered,
			FilesScanned:    result.FilesScanned,
			FilesSkipped:    result.FilesSkipped,
		},
		Colors:    colors,
		Variables: variables,
		Warnings:  result.Warnings,
	}
}
