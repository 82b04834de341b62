// Package config handles loading of the optional envcheck configuration
// file.
//
// Key responsibilities:
//   - Read the file named by --config (and only that file; the default
//     invocation touches no configuration on disk)
//   - Parse JSONC (.json/.jsonc) via github.com/tidwall/jsonc or YAML
//     (.yaml/.yml) via gopkg.in/yaml.v3, dispatched on extension
//   - Apply defaults for omitted fields
package config
