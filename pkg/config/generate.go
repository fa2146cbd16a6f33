package config

import (
	"bytes"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal renders cfg in format
func Marshal(cfg *types.DotfileConfiguration, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown configuration format %q", format)
	}
	return buf.Bytes(), nil
}

// GenerateStarter returns a starter document in format. YAML keeps the
// annotated template as is; other formats are converted from it.
func GenerateStarter(format Format) ([]byte, error) {
	if format == FormatYAML {
		return StarterContent(), nil
	}

	var cfg types.DotfileConfiguration
	if err := yaml.Unmarshal(StarterContent(), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded starter configuration is invalid")
	}
	return Marshal(&cfg, format)
}
