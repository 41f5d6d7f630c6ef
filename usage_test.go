package colorscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRecord(t *testing.T) {
	u := NewUsage()
	u.Record("#112233", "a.scss", "line 1")
	u.Record("#112233", "a.scss", "line 2")
	u.Record("#112233", "b.html", "line 3")
	u.Record("#445566", "b.html", "line 3")

	assert.Equal(t, []string{"#112233", "#445566"}, u.Keys())
	assert.Equal(t, 2, u.Len())

	rec, ok := u.Get("#112233")
	require.True(t, ok)
	assert.Equal(t, []string{"a.scss", "b.html"}, rec.Files)
	assert.Equal(t, 3, rec.Uses())
	assert.GreaterOrEqual(t, len(rec.Lines), len(rec.Files))

	_, ok = u.Get("#000000")
	assert.False(t, ok)
}

func TestAggregateLinesMergesCase(t *testing.T) {
	u := NewUsage()
	u.AggregateLines("a.ts", []string{"const a = '#ABCDEF';", "const b = '#abcdef';"}, NewVariables())

	assert.Equal(t, []string{"#abcdef"}, u.Keys())
	rec, _ := u.Get("#abcdef")
	assert.Equal(t, 2, rec.Uses())
	assert.Equal(t, []string{"a.ts"}, rec.Files)
}

func TestAggregateLinesRepeatedMatches(t *testing.T) {
	u := NewUsage()
	line := "border-color: #111111 #111111 #222222;"
	u.AggregateLines("a.scss", []string{line}, NewVariables())

	rec, _ := u.Get("#111111")
	assert.Equal(t, []string{line, line}, rec.Lines)
	assert.Equal(t, []string{"a.scss"}, rec.Files)
}

func TestAggregateLinesVariables(t *testing.T) {
	vars := NewVariables()
	vars.Set("$brand", "#112233")
	vars.Set("$accent", "#445566")

	u := NewUsage()
	u.AggregateLines("b.html", []string{
		`<div style="color: $brand; border-color: $accent"></div>`,
		`<p style="color: #ffffff">$brand</p>`,
		`<span>nothing here</span>`,
	}, vars)

	// Literal first, then variables in definition order.
	assert.Equal(t, []string{"#112233", "#445566", "#ffffff"}, u.Keys())

	rec, _ := u.Get("#112233")
	assert.Equal(t, 2, rec.Uses())
	assert.Equal(t, []string{"b.html"}, rec.Files)
}

func TestAggregateLinesDefinitionIsNotAReference(t *testing.T) {
	vars := NewVariables()
	vars.Set("$brand", "#112233")

	u := NewUsage()
	u.AggregateLines("a.scss", []string{
		"$brand: #112233;",
		"$brand-dark: darken($brand, 10%);",
	}, vars)

	rec, _ := u.Get("#112233")
	// The definition counts once as a literal; the second line references $brand.
	assert.Equal(t, 2, rec.Uses())
}
