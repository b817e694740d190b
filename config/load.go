package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specparity/parityerrors"
)

// EnvPrefix is the prefix for environment variable overrides (SPECPARITY_SPEC_DIR).
const EnvPrefix = "SPECPARITY"

//go:embed schema.json
var schemaJSON []byte

// Schema returns the JSON schema configuration files are validated against.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

// Load reads the configuration from path layered over [Default] and the
// SPECPARITY_* environment. An empty path loads defaults and environment only.
// The result is validated with [Validate].
func Load(path string) (*Config, error) {
	return LoadWithViper(viper.New(), path)
}

// LoadWithViper is [Load] using a caller-provided viper instance, so command
// flags bound to it (spec_dir) take precedence over file and environment values.
func LoadWithViper(v *viper.Viper, path string) (*Config, error) {
	defaults, err := defaultValues()
	if err != nil {
		return nil, err
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, &parityerrors.ConfigError{Option: "config", Value: path, Message: "config file not found"}
			}
			return nil, &parityerrors.ConfigError{Option: "config", Value: path, Message: "failed to read config file", Cause: err}
		}
		if err := ValidateSchema(data); err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" && ext != ".yaml" && ext != ".yml" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, &parityerrors.ConfigError{Option: "config", Value: path, Message: "failed to read config file", Cause: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &parityerrors.ConfigError{Option: "config", Value: path, Message: "failed to decode configuration", Cause: err}
	}
	// Default notes name default documents; a file with its own document set
	// only gets the notes it declares.
	if path != "" && v.InConfig("documents") && !v.InConfig("notes") {
		cfg.Notes = nil
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateSchema checks a YAML or JSON configuration file body against [Schema].
// Every violation is listed in the returned ConfigError.
func ValidateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &parityerrors.ConfigError{Option: "config", Message: "config file is not valid YAML or JSON", Cause: err}
	}
	if doc == nil {
		// an empty file leaves every default in place
		return nil
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &parityerrors.ConfigError{Option: "config", Message: "schema validation failed", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}
	return &parityerrors.ConfigError{
		Option:  "config",
		Message: "config file does not match schema: " + strings.Join(msgs, "; "),
	}
}

// defaultValues flattens Default into the generic shape viper stores, so that
// unmarshalling defaults and file values goes through the same decoder.
func defaultValues() (map[string]any, error) {
	data, err := json.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode defaults: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("config: failed to decode defaults: %w", err)
	}
	return out, nil
}

// Marshal renders the configuration as YAML.
func Marshal(c *Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode configuration: %w", err)
	}
	return data, nil
}
