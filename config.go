package colorscan

// Config holds scan and report configuration
type Config struct {
	Root               string   // "src"
	Output             string   // "colours.html"
	Format             string   // "html" | "json" | "yaml" | "markdown"; empty infers from Output
	Extensions         []string // [".ts", ".html", ".scss"] files scanned for usage
	VariableExtensions []string // [".scss"] files scanned for variable definitions
	ExcludeSuffixes    []string // [".spec.ts"] suffix match on the full path
	Exclude            []string // doublestar globs, matched against slash-separated paths
	RespectGitignore   bool     // Skip files matched by <root>/.gitignore
	CustomProperties   bool     // Resolve CSS custom properties (--name: #fff) as variables
	Concurrency        int      // Parallel file reads (default: 8)
	SkipUnreadable     bool     // Warn and continue instead of aborting on read errors
}

// Default values
const (
	DefaultRoot        = "src"
	DefaultOutput      = "colours.html"
	DefaultConcurrency = 8
)

// DefaultExtensions are the file types scanned for color usage.
func DefaultExtensions() []string {
	return []string{".ts", ".html", ".scss"}
}

// DefaultVariableExtensions are the file types scanned for variable definitions.
func DefaultVariableExtensions() []string {
	return []string{".scss"}
}

// DefaultExcludeSuffixes are path suffixes never scanned (test specs).
func DefaultExcludeSuffixes() []string {
	return []string{".spec.ts"}
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Root:               DefaultRoot,
		Output:             DefaultOutput,
		Extensions:         DefaultExtensions(),
		VariableExtensions: DefaultVariableExtensions(),
		ExcludeSuffixes:    DefaultExcludeSuffixes(),
		Concurrency:        DefaultConcurrency,
	}
}
