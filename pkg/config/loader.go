package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. DOTCTL_OPTIONS_REPOSITORY
const EnvPrefix = "DOTCTL_"

// Format is the on-disk syntax of a configuration document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts yaml, yml and toml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown configuration format %q", s)
	}
}

// FormatFromPath picks TOML for .toml files and YAML for everything else,
// including the extension-less ~/.dotctl
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

func (f Format) parser() koanf.Parser {
	if f == FormatTOML {
		return toml.Parser()
	}
	return yaml.Parser()
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"options.repository":   "~/dotfiles",
		"options.hook_timeout": "0s",
	}
}

// Load reads the document at path, applies defaults and environment
// overrides, and validates the result
func Load(path string) (*types.DotfileConfiguration, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read configuration %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Str("format", string(FormatFromPath(path))).Msg("Loading configuration")
	cfg, err := load(file.Provider(path), FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid configuration %s", path).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail("path", path)
	}
	return cfg, nil
}

// Parse decodes an in-memory document. Defaults and environment overrides
// apply exactly as they do for Load.
func Parse(data []byte, format Format) (*types.DotfileConfiguration, error) {
	return load(&rawBytesProvider{bytes: data}, format)
}

func load(provider koanf.Provider, format Format) (*types.DotfileConfiguration, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. The document, with legacy keys mapped to their current names
	doc := koanf.New(".")
	if err := doc.Load(provider, format.parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s document", format)
	}
	if err := k.Load(confmap.Provider(normalizeDocument(doc.Raw()), ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to merge document")
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Unmarshal
	var cfg types.DotfileConfiguration
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				enumHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "configuration does not match the expected schema")
	}

	// 5. Validate
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DOTCTL_OPTIONS_HOOK_TIMEOUT to options.hook_timeout. Only the
// options section can be overridden; other DOTCTL_ variables are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, ok := strings.Cut(key, "_")
	if !ok || section != "options" || name == "" {
		return ""
	}
	return section + "." + name
}

// normalizeDocument renames the legacy per-entry "system" key to "os" and
// defaults a missing status to READY
func normalizeDocument(raw map[string]interface{}) map[string]interface{} {
	entries, ok := raw["configurations"]
	if !ok {
		return raw
	}

	var list []map[string]interface{}
	switch v := entries.(type) {
	case []interface{}:
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				list = append(list, m)
			}
		}
	case []map[string]interface{}:
		list = v
	}

	for _, entry := range list {
		if system, ok := entry["system"]; ok {
			if _, hasOS := entry["os"]; !hasOS {
				entry["os"] = system
			}
			delete(entry, "system")
		}
		if _, ok := entry["status"]; !ok {
			entry["status"] = string(types.StatusReady)
		}
	}
	return raw
}
