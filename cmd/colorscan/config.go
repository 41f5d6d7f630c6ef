package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/colorscan"
)

var k = koanf.New(".")

// flagKeys maps command-line flags to their config keys. Flags not listed
// here use their own name as the key.
var flagKeys = map[string]string{
	"format":            "scan.format",
	"ext":               "scan.extensions",
	"variable-ext":      "scan.variable-extensions",
	"exclude-suffix":    "scan.exclude-suffixes",
	"exclude":           "scan.exclude",
	"gitignore":         "scan.gitignore",
	"custom-properties": "scan.custom-properties",
	"concurrency":       "scan.concurrency",
	"skip-unreadable":   "scan.skip-unreadable",
	"summary":           "scan.summary",
	"watch":             "scan.watch",
}

// listKeys hold comma-separated values when given through the environment.
var listKeys = map[string]bool{
	"scan.extensions":          true,
	"scan.variable-extensions": true,
	"scan.exclude-suffixes":    true,
	"scan.exclude":             true,
}

// loadConfig loads configuration with precedence: args > flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".colorscan.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (COLORSCAN_* prefix)
	if err := k.Load(env.ProviderWithValue("COLORSCAN_", ".", func(key, value string) (string, interface{}) {
		name := envKey(key)
		if listKeys[name] {
			return name, splitList(value)
		}
		return name, value
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	COLORSCAN_SCAN_ROOT            -> scan.root
//	COLORSCAN_SCAN_SKIP_UNREADABLE -> scan.skip-unreadable
//	COLORSCAN_VERBOSE              -> verbose
func envKey(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, "COLORSCAN_"))
	if rest, ok := strings.CutPrefix(name, "scan_"); ok {
		return "scan." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(name, "_", "-")
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// applyPositionalArgs stores [root] [output] over every other source.
func applyPositionalArgs(args []string) error {
	keys := []string{"scan.root", "scan.output"}
	for i, arg := range args {
		if i >= len(keys) {
			break
		}
		if err := k.Set(keys[i], arg); err != nil {
			return fmt.Errorf("setting %s: %w", keys[i], err)
		}
	}
	return nil
}

// buildScanConfig constructs the library's Config struct from koanf state.
func buildScanConfig() colorscan.Config {
	return colorscan.Config{
		Root:               getString("scan.root", colorscan.DefaultRoot),
		Output:             getString("scan.output", colorscan.DefaultOutput),
		Format:             getString("scan.format", ""),
		Extensions:         getStrings("scan.extensions", colorscan.DefaultExtensions()),
		VariableExtensions: getStrings("scan.variable-extensions", colorscan.DefaultVariableExtensions()),
		ExcludeSuffixes:    getStrings("scan.exclude-suffixes", colorscan.DefaultExcludeSuffixes()),
		Exclude:            getStrings("scan.exclude", nil),
		RespectGitignore:   getBool("scan.gitignore", false),
		CustomProperties:   getBool("scan.custom-properties", false),
		Concurrency:        getInt("scan.concurrency", colorscan.DefaultConcurrency),
		SkipUnreadable:     getBool("scan.skip-unreadable", false),
	}
}

// getString returns the config value for key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStrings returns the list for key, or defaultVal when unset or empty.
func getStrings(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBool returns the config value for key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the config value for key, or defaultVal when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
