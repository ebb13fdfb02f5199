package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/confplay"
)

// RuntimeFile is the conventional path of the optional runtime config
// file, relative to the working directory.
const RuntimeFile = "configuration/settings.yaml"

// EnvPrefix is the prefix shared by all confplay environment variables.
const EnvPrefix = "CONFPLAY"

// settingsKeys lists every key of the settings tree. Environment
// variables are bound per key rather than via AutomaticEnv so that
// env-only keys still reach Unmarshal.
var settingsKeys = []string{
	"somebool",
	"somestring",
	"somesecret",
	"somestruct.someint",
	"someoptionalstring",
}

// flagToKey maps CLI flag names to settings keys. Flags outside this map
// never enter the settings tree.
var flagToKey = map[string]string{
	"somestring":         "somestring",
	"someoptionalstring": "someoptionalstring",
}

// Resolve builds the application settings from the layered sources, in
// priority order (lowest to highest): embedded baseline, runtime file,
// environment variables, caller overrides.
//
// ovr carries typed overrides for library callers; flags binds changed
// cobra/pflag flags. Either may be nil. Unset override fields and
// unchanged flags contribute nothing to the merge, so they never shadow a
// value from a lower-priority source. Typed overrides take precedence
// over bound flags.
//
// Resolution is deterministic for identical source contents; it either
// fully succeeds or fails with one error chain naming the failing stage.
func Resolve(ovr *Overrides, flags *pflag.FlagSet) (*confplay.Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(baselineYAML)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaselineParse, err)
	}

	if err := mergeRuntimeFile(v); err != nil {
		return nil, err
	}

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnvironmentParse, err)
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOverrideApply, err)
		}
	}
	for key, value := range ovr.values() {
		v.Set(key, value)
	}

	var settings confplay.Settings
	if err := v.Unmarshal(&settings, decodeOptions()...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialize, err)
	}
	if err := validate.Struct(&settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialize, err)
	}

	return &settings, nil
}

// EnvName returns the environment variable overriding key, e.g.
// "somestruct.someint" -> "CONFPLAY__SOMESTRUCT__SOMEINT".
func EnvName(key string) string {
	return EnvPrefix + "__" + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

// mergeRuntimeFile merges the optional runtime config file into the tree.
// Absence is not an error; a present but unreadable or malformed file is.
func mergeRuntimeFile(v *viper.Viper) error {
	path := filepath.FromSlash(RuntimeFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrRuntimeFileParse, err)
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrRuntimeFileParse, err)
	}
	return nil
}

func bindEnv(v *viper.Viper) error {
	for _, key := range settingsKeys {
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return err
		}
	}
	return nil
}

// bindFlags binds flags that were explicitly set on the command line.
// Unchanged flags are skipped so their defaults never shadow
// lower-priority values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagToKey[f.Name]
		if !ok || !f.Changed {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}

var validate = validator.New()

func decodeOptions() []viper.DecoderConfigOption {
	return []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
		func(dc *mapstructure.DecoderConfig) {
			// Numeric and boolean fields may arrive as quoted strings
			// from the environment layer.
			dc.WeaklyTypedInput = true
		},
	}
}
