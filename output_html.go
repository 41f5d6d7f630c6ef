package colorscan

import (
	"html"
	"io"
	"strconv"
	"strings"
)

const blockStyle = "display: inline-block; margin: 10px;"

// WriteHTML writes a static HTML page with three sections: swatches by hue,
// a compact list and every file each color appears in.
func WriteHTML(w io.Writer, result *Result) error {
	var b strings.Builder
	b.WriteString("<html><head></head><body>")

	b.WriteString("<h2>Colours by Hue</h2>")
	for _, c := range result.Colors {
		key := html.EscapeString(c.Key)
		b.WriteString(`<div style="` + blockStyle + `">`)
		b.WriteString(`<div style="background: ` + key + `; height: 100px; width: 100px; border: solid 1px black;"></div>`)
		b.WriteString("<div>" + key + "</div>")
		b.WriteString("<div>" + strconv.Itoa(c.Uses()) + " uses</div>")
		b.WriteString("</div>\n")
	}

	b.WriteString("<h2>Colours in List</h2>")
	for _, c := range result.Colors {
		b.WriteString("<div>" + html.EscapeString(c.Key) + ": " + strconv.Itoa(c.Uses()) + " uses</div>")
	}

	b.WriteString("<h2>Colours with all File Locations</h2>")
	for _, c := range result.Colors {
		b.WriteString("<h3>" + html.EscapeString(c.Key) + "</h3>")
		b.WriteString("<ul>")
		for _, file := range c.Files {
			b.WriteString("<li>" + html.EscapeString(file) + "</li>")
		}
		b.WriteString("</ul>")
	}

	b.WriteString("</body></html>")

	_, err := io.WriteString(w, b.String())
	return err
}
