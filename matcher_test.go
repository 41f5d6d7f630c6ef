package colorscan

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindColors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "hex keeps case",
			line: "  color: #ABCdef;",
			want: []string{"#ABCdef"},
		},
		{
			name: "hex longer than six digits matches its prefix",
			line: "color: #11223344;",
			want: []string{"#112233"},
		},
		{
			name: "short hex is ignored",
			line: "color: #fff;",
			want: nil,
		},
		{
			name: "non-hex characters are rejected",
			line: "color: #12345g;",
			want: nil,
		},
		{
			name: "tight rgba",
			line: "background: rgba(255,255,255,0.5);",
			want: []string{"rgba(255,255,255,0.5)"},
		},
		{
			name: "loose rgba",
			line: "background: rgba(0, 12, 255, 0.75);",
			want: []string{"rgba(0, 12, 255, 0.75)"},
		},
		{
			name: "rgb with eleven characters",
			line: "color: rgb(100, 20, 30);",
			want: []string{"rgb(100, 20, 30)"},
		},
		{
			name: "rgb with other lengths is ignored",
			line: "color: rgb(1, 2, 3);",
			want: nil,
		},
		{
			name: "several matches in order",
			line: `border: 1px solid #000000; box-shadow: 0 0 2px rgba(0, 0, 0, 0.2), #FFFFFF;`,
			want: []string{"#000000", "rgba(0, 0, 0, 0.2)", "#FFFFFF"},
		},
		{
			name: "no color",
			line: "display: flex;",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindColors(tt.line)
			assert.Equal(t, tt.want, got)

			var lazy []string
			for m := range EachColor(tt.line) {
				lazy = append(lazy, m)
			}
			assert.Equal(t, tt.want, lazy, "EachColor must agree with FindColors")
		})
	}
}

func TestFindColorsPosition(t *testing.T) {
	line := `<span style="color:#a1B2c3">x</span>`
	loc := colorPattern.FindStringIndex(line)
	require.NotNil(t, loc)
	assert.Equal(t, 19, loc[0])
	assert.Equal(t, "#a1B2c3", line[loc[0]:loc[1]])
}

func TestEachColorStopsEarly(t *testing.T) {
	var got []string
	for m := range EachColor("#111111 #222222 #333333") {
		got = append(got, m)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"#111111", "#222222"}, got)
}

func TestFirstColor(t *testing.T) {
	got, ok := FirstColor("$x: rgba(1, 2, 3, 0.5) #ffffff;")
	require.True(t, ok)
	assert.Equal(t, "rgba(1, 2, 3, 0.5)", got)

	_, ok = FirstColor("$x: red;")
	assert.False(t, ok)
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, NormalizeColor("#ABCDEF"), NormalizeColor("#abcdef"))
	assert.Equal(t, "rgba(0,0,0,0.5)", NormalizeColor("RGBA(0,0,0,0.5)"))
}

func TestVariableName(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"$brand: #112233;", "$brand", true},
		{"$brand-dark:#000000;", "$brand-dark", true},
		{"  $indented: #112233;", "", false},
		{"color: $brand;", "", false},
		// Greedy: runs to the last colon on the line.
		{"$a: #111111; // note: x", "$a: #111111; // note", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := variableName(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindColorsIsStateless(t *testing.T) {
	line := "#010203 and #040506"
	first := FindColors(line)
	second := FindColors(line)
	assert.True(t, slices.Equal(first, second))
}
