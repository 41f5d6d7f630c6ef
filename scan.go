package colorscan

import (
	"context"
	"fmt"
	"log/slog"
)

// ColorUsage is one row of the sorted report.
type ColorUsage struct {
	Key   string
	Hue   float64
	Files []string
	Lines []string
}

// Uses is the number of occurrences of the color.
func (c ColorUsage) Uses() int {
	return len(c.Lines)
}

// Result contains a completed scan
type Result struct {
	Colors          []ColorUsage // sorted by hue
	Variables       *Variables
	FilesDiscovered int // every file found under the root
	FilesScanned    int // files that took part in the usage pass
	FilesSkipped    int // files dropped by extension or exclusion rules
	Warnings        []string
}

// scanState is the per-run state threaded through both passes.
type scanState struct {
	variables *Variables
	usage     *Usage
}

// Scan walks config.Root, resolves stylesheet variables over every eligible
// file, then aggregates color usage. Resolution finishes before aggregation
// starts, so a variable defined anywhere in the tree is credited everywhere.
func Scan(ctx context.Context, config Config) (*Result, error) {
	w := newWalker(config)

	slog.Info("Recursively searching everything inside of " + config.Root)

	paths, err := w.Walk()
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	var toRead []string
	usageFiles := make(map[string]bool)
	variableFiles := make(map[string]bool)
	for _, path := range paths {
		u, v := w.UsageEligible(path), w.VariableEligible(path)
		if u {
			usageFiles[path] = true
		}
		if v {
			variableFiles[path] = true
		}
		if u || v {
			toRead = append(toRead, path)
		}
	}

	files, warnings, err := w.ReadAll(ctx, toRead)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	state := &scanState{
		variables: NewVariables(),
		usage:     NewUsage(),
	}

	slog.Info("Finding all colour variables...")
	for _, f := range files {
		if !variableFiles[f.Path] {
			continue
		}
		slog.Debug("resolving variables", "path", f.Path)
		state.variables.ResolveLines(f.Lines)
		if config.CustomProperties {
			state.variables.ResolveCustomProperties(f.content)
		}
	}
	slog.Debug("variables resolved", "count", state.variables.Len())

	slog.Info("Finding all unique colours...")
	scanned := 0
	for _, f := range files {
		if !usageFiles[f.Path] {
			continue
		}
		slog.Debug("scanning", "path", f.Path)
		state.usage.AggregateLines(f.Path, f.Lines, state.variables)
		scanned++
	}

	result := &Result{
		Colors:          state.sortedColors(),
		Variables:       state.variables,
		FilesDiscovered: len(paths),
		FilesScanned:    scanned,
		FilesSkipped:    len(paths) - len(toRead),
		Warnings:        warnings,
	}
	slog.Debug("scan complete", "colors", len(result.Colors), "files", scanned)

	return result, nil
}

func (s *scanState) sortedColors() []ColorUsage {
	keys := SortByHue(s.usage.Keys())
	colors := make([]ColorUsage, 0, len(keys))
	for _, key := range keys {
		rec, _ := s.usage.Get(key)
		colors = append(colors, ColorUsage{
			Key:   key,
			Hue:   ParseColor(key).Hue,
			Files: rec.Files,
			Lines: rec.Lines,
		})
	}
	return colors
}
