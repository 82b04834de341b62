// Package config loads the optional envcheck configuration file.
//
// Configuration is opt-in: nothing on disk is consulted unless the user
// passes --config, so the default invocation reads no files at all. The
// file format is chosen by extension — JSONC (JSON with Comments, stripped
// via github.com/tidwall/jsonc before parsing with encoding/json) or YAML
// via gopkg.in/yaml.v3.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/zamos-h/antigravity/internal/model"
)

// CheckConfig holds the user-tunable settings for the environment check.
// Omitted or empty fields fall back to defaults via ApplyDefaults.
type CheckConfig struct {
	// Marker is the substring expected in the executable path.
	// Empty means model.DefaultMarker.
	Marker string `json:"marker" yaml:"marker"`

	// Strict makes a mismatch verdict exit non-zero instead of the
	// default exit code 0.
	Strict bool `json:"strict" yaml:"strict"`
}

// Load reads and parses the configuration file at path. The format is
// dispatched on the file extension: .json/.jsonc are parsed as JSONC,
// .yaml/.yml as YAML. Any other extension is rejected.
func Load(path string) (*CheckConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg CheckConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc":
		// jsonc.ToJSON strips comments and trailing commas, producing
		// standard JSON for encoding/json.
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (valid: .json, .jsonc, .yaml, .yml)", ext)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills empty fields with their default values.
// A marker that is empty or whitespace-only falls back to
// model.DefaultMarker rather than matching every path.
func (c *CheckConfig) ApplyDefaults() {
	if strings.TrimSpace(c.Marker) == "" {
		c.Marker = model.DefaultMarker
	}
}
