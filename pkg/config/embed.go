package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/dotctl.yaml
var starterConfig []byte

// StarterContent returns the annotated starter document written by genconfig
func StarterContent() []byte {
	return starterConfig
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
