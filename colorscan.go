// Package colorscan audits color usage across a source tree.
//
// It finds 6-digit hex, rgb() and rgba() literals plus SCSS color variables in
// markup, script and stylesheet files, counts every use per color and renders
// a report ordered by hue.
//
// # Scanning
//
//	config := colorscan.DefaultConfig()
//	config.Root = "src"
//	result, err := colorscan.Scan(ctx, config)
//
// Scanning runs in two passes. The first collects variable definitions such as
//
//	$brand: #112233;
//
// from every stylesheet; the second credits each literal, and each line that
// mentions a known variable, to its color. Matching is line-oriented and
// heuristic: no stylesheet is parsed.
//
// # Reports
//
//	format, _ := colorscan.DetermineOutputFormat("", "colours.html")
//	err := colorscan.WriteReportFile("colours.html", result, format)
//
// HTML, JSON, YAML and Markdown reports are supported.
//
// # CLI Tool
//
//	go install github.com/yacobolo/colorscan/cmd/colorscan@latest
//	colorscan src colours.html
package colorscan
