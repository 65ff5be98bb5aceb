package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a configuration file and compiles it. A missing file falls back
// to the built-in defaults; an unreadable or invalid file is an error. An
// empty path always means defaults.
func Load(path string) (*Compiled, error) {
	if path == "" {
		return Default().Compile()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default().Compile()
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse unmarshals raw YAML over the built-in defaults, validates the result
// and compiles it. Sections absent from the file keep their default tables,
// so a user config can override just the synonym vocabulary without
// restating validation rules.
func Parse(data []byte) (*Compiled, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg.Compile()
}
