package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/liveout/pkg/errors"
	"github.com/arthur-debert/liveout/pkg/paths"
)

// envPrefix scopes the environment variables read as overrides, for
// example LIVEOUT_BACKEND=notebook or LIVEOUT_VERBOSITY=2.
const envPrefix = "LIVEOUT_"

// settingKeys are the recognized top level settings, sorted for use
// in messages.
var settingKeys = []string{"backend", "color", "log_file", "verbosity"}

func knownSetting(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Load assembles the effective settings. Sources are layered, later
// ones winning: built-in defaults, the user config file, LIVEOUT_*
// environment variables and finally the given overrides, which
// usually carry command line flags. Override keys mirror the file
// keys. A nil override map is fine.
func Load(overrides map[string]any) (*Settings, error) {
	return loadFrom(paths.ConfigFilePath(), overrides)
}

func loadFrom(path string, overrides map[string]any) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "parsing built-in defaults")
	}

	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "reading environment overrides")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "applying overrides")
		}
	}

	var cfg Settings
	conf := koanf.UnmarshalConf{
		Tag: "toml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       stringToColorModeHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "applying configuration")
	}

	return &cfg, nil
}

// loadFile merges the user config file into k. A missing file is not
// an error. Settings the file names but liveout does not know are,
// so typos fail instead of being silently ignored.
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "reading config file %s", path)
	}

	fileK := koanf.New(".")
	if err := fileK.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "parsing config file %s", path)
	}
	for _, key := range fileK.Keys() {
		if !knownSetting(key) {
			return errors.Newf(errors.ErrConfigParse,
				"unknown setting %q in %s, expected one of [%s]",
				key, path, strings.Join(settingKeys, " "))
		}
	}
	return k.Merge(fileK)
}

// envKey maps an environment variable name to its settings key.
// Unrelated LIVEOUT_ variables, like the path overrides, map to the
// empty string and are skipped.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if !knownSetting(key) {
		return ""
	}
	return key
}

func stringToColorModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(ColorMode("")) {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		mode := ColorMode(strings.ToLower(s))
		switch mode {
		case ColorAuto, ColorAlways, ColorNever:
			return mode, nil
		}
		return nil, errors.Newf(errors.ErrConfigParse,
			"invalid color mode %q, expected auto, always or never", s)
	}
}
