package config

import (
	_ "embed"

	"github.com/arthur-debert/liveout/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// rawBytesProvider feeds embedded bytes through a koanf parser.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]any, error) {
	return nil, errors.New(errors.ErrInternal, "raw provider does not support Read")
}
