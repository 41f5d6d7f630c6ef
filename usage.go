package colorscan

import "strings"

// UsageRecord accumulates every observation of one color key.
type UsageRecord struct {
	Files []string // distinct paths, in first-observation order
	Lines []string // raw matching lines, one per occurrence

	seen map[string]bool
}

func newUsageRecord() *UsageRecord {
	return &UsageRecord{seen: make(map[string]bool)}
}

// Uses is the number of occurrences of the color.
func (r *UsageRecord) Uses() int {
	return len(r.Lines)
}

func (r *UsageRecord) observe(path, line string) {
	if !r.seen[path] {
		r.seen[path] = true
		r.Files = append(r.Files, path)
	}
	r.Lines = append(r.Lines, line)
}

// Usage maps color keys to their records, remembering the order in which keys
// were first observed.
type Usage struct {
	records map[string]*UsageRecord
	keys    []string
}

// NewUsage returns an empty aggregation.
func NewUsage() *Usage {
	return &Usage{records: make(map[string]*UsageRecord)}
}

// Record credits line of path to key, creating the record on first sight.
func (u *Usage) Record(key, path, line string) {
	rec, ok := u.records[key]
	if !ok {
		rec = newUsageRecord()
		u.records[key] = rec
		u.keys = append(u.keys, key)
	}
	rec.observe(path, line)
}

// Get returns the record for key.
func (u *Usage) Get(key string) (*UsageRecord, bool) {
	rec, ok := u.records[key]
	return rec, ok
}

// Keys returns the keys in first-observation order.
func (u *Usage) Keys() []string {
	out := make([]string, len(u.keys))
	copy(out, u.keys)
	return out
}

// Len reports the number of distinct colors.
func (u *Usage) Len() int {
	return len(u.keys)
}

// AggregateLines runs the usage pass over the lines of one file. Literal
// matches are credited first, then every known variable whose name occurs in
// the line, in definition order. A line defining a variable does not count as
// a reference to that same variable.
func (u *Usage) AggregateLines(path string, lines []string, vars *Variables) {
	for _, line := range lines {
		for literal := range EachColor(line) {
			u.Record(NormalizeColor(literal), path, line)
		}
		defined, _ := vars.definedOn(line)
		vars.each(func(name, key string) {
			if name != defined && strings.Contains(line, name) {
				u.Record(key, path, line)
			}
		})
	}
}
