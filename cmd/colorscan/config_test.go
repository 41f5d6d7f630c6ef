package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/colorscan"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".colorscan.yaml")
	configContent := `
verbose: true

scan:
  root: web/src
  output: report.json
  extensions:
    - .css
    - .scss
  exclude:
    - "**/vendor/**"
  gitignore: true
  concurrency: 2
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))

	config := buildScanConfig()
	assert.Equal(t, "web/src", config.Root)
	assert.Equal(t, "report.json", config.Output)
	assert.Equal(t, []string{".css", ".scss"}, config.Extensions)
	assert.Equal(t, []string{"**/vendor/**"}, config.Exclude)
	assert.True(t, config.RespectGitignore)
	assert.Equal(t, 2, config.Concurrency)
	// Unset keys keep their defaults
	assert.Equal(t, colorscan.DefaultVariableExtensions(), config.VariableExtensions)
	assert.Equal(t, colorscan.DefaultExcludeSuffixes(), config.ExcludeSuffixes)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.colorscan.yaml"))

	config := buildScanConfig()
	assert.Equal(t, colorscan.DefaultConfig(), config)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".colorscan.yaml")
	configContent := `
scan:
  root: from-file
  skip-unreadable: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("COLORSCAN_SCAN_ROOT", "from-env")
	t.Setenv("COLORSCAN_SCAN_SKIP_UNREADABLE", "true")
	t.Setenv("COLORSCAN_SCAN_EXTENSIONS", ".ts, .vue")

	require.NoError(t, loadConfigFromPath(configPath))

	config := buildScanConfig()
	assert.Equal(t, "from-env", config.Root)
	assert.True(t, config.SkipUnreadable)
	assert.Equal(t, []string{".ts", ".vue"}, config.Extensions)
}

func TestPositionalArgsOverrideEverything(t *testing.T) {
	resetKoanf()

	t.Setenv("COLORSCAN_SCAN_ROOT", "from-env")
	t.Setenv("COLORSCAN_SCAN_OUTPUT", "env.html")
	require.NoError(t, loadConfigFromPath("/nonexistent/.colorscan.yaml"))

	require.NoError(t, applyPositionalArgs([]string{"app"}))
	config := buildScanConfig()
	assert.Equal(t, "app", config.Root)
	assert.Equal(t, "env.html", config.Output)

	require.NoError(t, applyPositionalArgs([]string{"app", "out.md"}))
	assert.Equal(t, "out.md", buildScanConfig().Output)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"COLORSCAN_SCAN_ROOT", "scan.root"},
		{"COLORSCAN_SCAN_SKIP_UNREADABLE", "scan.skip-unreadable"},
		{"COLORSCAN_SCAN_CUSTOM_PROPERTIES", "scan.custom-properties"},
		{"COLORSCAN_VERBOSE", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "scan.extensions", flagKey("ext"))
	assert.Equal(t, "scan.watch", flagKey("watch"))
	assert.Equal(t, "verbose", flagKey("verbose"))
}

func TestDefaultConfigTemplateMatchesDefaults(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".colorscan.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(defaultConfig), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, colorscan.DefaultConfig(), buildScanConfig())
	assert.Equal(t, 10, getInt("scan.summary", 0))
	assert.False(t, getBool("scan.watch", true))
}
