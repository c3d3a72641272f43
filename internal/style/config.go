package style

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	jsonenc "encoding/json"
)

// UnknownClassPolicy controls how unresolved utility classes are reported.
type UnknownClassPolicy int

const (
	// PolicyWarn reports unknown classes as warnings
	PolicyWarn UnknownClassPolicy = iota
	// PolicyError reports unknown classes as errors
	PolicyError
	// PolicySilent suppresses unknown-class diagnostics entirely
	PolicySilent
)

// DarkModeStrategy selects how the dark: variant is compiled.
type DarkModeStrategy int

const (
	// DarkModeMedia compiles dark: to a prefers-color-scheme media query
	DarkModeMedia DarkModeStrategy = iota
	// DarkModeClass compiles dark: to a .dark ancestor selector
	DarkModeClass
)

// ThemeConfig carries user overrides for the static tables.
type ThemeConfig struct {
	Screens map[string]string `json:"screens" yaml:"screens"`
	Colors  map[string]string `json:"colors" yaml:"colors"`
	Spacing map[string]string `json:"spacing" yaml:"spacing"`
}

// VariantConfig toggles optional variant families.
type VariantConfig struct {
	DataAria       bool `json:"dataAria" yaml:"dataAria"`
	Supports       bool `json:"supports" yaml:"supports"`
	GroupPeerNamed bool `json:"groupPeerNamed" yaml:"groupPeerNamed"`
}

// Config is the style compiler configuration.
type Config struct {
	UnknownClassPolicy UnknownClassPolicy
	DarkMode           DarkModeStrategy
	Safelist           []string
	Blocklist          []string
	Theme              ThemeConfig
	Variants           VariantConfig
}

// DefaultConfig returns the built-in configuration: warn on unknown classes,
// media-query dark mode, the five standard screens, all variants enabled.
func DefaultConfig() *Config {
	return &Config{
		UnknownClassPolicy: PolicyWarn,
		DarkMode:           DarkModeMedia,
		Theme: ThemeConfig{
			Screens: map[string]string{
				"sm":  "640px",
				"md":  "768px",
				"lg":  "1024px",
				"xl":  "1280px",
				"2xl": "1536px",
			},
			Colors:  map[string]string{},
			Spacing: map[string]string{},
		},
		Variants: VariantConfig{
			DataAria:       true,
			Supports:       true,
			GroupPeerNamed: true,
		},
	}
}

// configFileNames are tried in order in each directory walking upward.
var configFileNames = []string{
	"volki.config.json",
	"volki.config.yaml",
	"volki.config.yml",
}

// StrictClassesEnv forces the error policy when set to 1 or true.
const StrictClassesEnv = "VOLKI_STRICT_CLASSES"

// rawConfig is the on-disk shape shared by the JSON and YAML forms.
type rawConfig struct {
	UnknownClassPolicy string         `json:"unknownClassPolicy" yaml:"unknownClassPolicy"`
	DarkMode           string         `json:"darkMode" yaml:"darkMode"`
	Safelist           []string       `json:"safelist" yaml:"safelist"`
	Blocklist          []string       `json:"blocklist" yaml:"blocklist"`
	Theme              *ThemeConfig   `json:"theme" yaml:"theme"`
	Variants           *rawVariants   `json:"variants" yaml:"variants"`
}

type rawVariants struct {
	DataAria       *bool `json:"dataAria" yaml:"dataAria"`
	Supports       *bool `json:"supports" yaml:"supports"`
	GroupPeerNamed *bool `json:"groupPeerNamed" yaml:"groupPeerNamed"`
}

// LoadConfigForFile discovers and loads the configuration governing a source
// file: each config file name is tried in the file's directory, then each
// ancestor. Missing or unreadable configs fall back to the defaults; the
// strict-classes environment variable applies last.
func LoadConfigForFile(file string) *Config {
	cfg := DefaultConfig()

	if path, ok := findConfigFile(file); ok {
		if err := applyConfigFile(cfg, path); err != nil {
			// A broken config never breaks compilation.
			cfg = DefaultConfig()
		}
	}

	if v := os.Getenv(StrictClassesEnv); v == "1" || strings.EqualFold(v, "true") {
		cfg.UnknownClassPolicy = PolicyError
	}
	return cfg
}

func findConfigFile(file string) (string, bool) {
	dir := file
	if info, err := os.Stat(file); err != nil || !info.IsDir() {
		dir = filepath.Dir(file)
	}
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func applyConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var raw rawConfig
	if strings.HasSuffix(path, ".json") {
		// jsonc strips comments and trailing commas before decoding.
		if err := jsonenc.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	switch raw.UnknownClassPolicy {
	case "error":
		cfg.UnknownClassPolicy = PolicyError
	case "silent":
		cfg.UnknownClassPolicy = PolicySilent
	case "", "warn":
		cfg.UnknownClassPolicy = PolicyWarn
	}

	if raw.DarkMode == "class" {
		cfg.DarkMode = DarkModeClass
	}

	if raw.Safelist != nil {
		cfg.Safelist = raw.Safelist
	}
	if raw.Blocklist != nil {
		cfg.Blocklist = raw.Blocklist
	}

	if raw.Theme != nil {
		for k, v := range raw.Theme.Screens {
			cfg.Theme.Screens[k] = v
		}
		for k, v := range raw.Theme.Colors {
			cfg.Theme.Colors[k] = v
		}
		for k, v := range raw.Theme.Spacing {
			cfg.Theme.Spacing[k] = v
		}
	}

	if raw.Variants != nil {
		if raw.Variants.DataAria != nil {
			cfg.Variants.DataAria = *raw.Variants.DataAria
		}
		if raw.Variants.Supports != nil {
			cfg.Variants.Supports = *raw.Variants.Supports
		}
		if raw.Variants.GroupPeerNamed != nil {
			cfg.Variants.GroupPeerNamed = *raw.Variants.GroupPeerNamed
		}
	}
	return nil
}
