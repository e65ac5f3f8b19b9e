package config

import (
	"fmt"
	"strings"

	"github.com/mcuadros/go-defaults"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var clientKeys = []string{
	"version",
	"log.level",
	"location",
	"output.format",
	"overlap.minimum",
}

// LoadClientConfig loads the client configuration from filePath, falling back to chronoset.yaml
// in the working directory when it exists. Environment variables prefixed with CHRONOSET_ override
// the file, and defaults fill the rest.
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	return loadClientConfig(afero.NewOsFs(), filePath)
}

func loadClientConfig(fs afero.Fs, filePath string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	defaults.SetDefaults(cfg)

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType(DefaultFileExtension)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range clientKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	path, err := configPath(fs, filePath)
	if err != nil {
		return nil, err
	}
	if path != EmptyPath {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file[%s]: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	return cfg, nil
}

func configPath(fs afero.Fs, filePath string) (string, error) {
	if filePath != EmptyPath {
		exists, err := afero.Exists(fs, filePath)
		if err != nil {
			return EmptyPath, err
		}
		if !exists {
			return EmptyPath, fmt.Errorf("config file[%s] does not exist", filePath)
		}
		return filePath, nil
	}

	exists, err := afero.Exists(fs, DefaultFilename)
	if err != nil || !exists {
		return EmptyPath, err
	}
	return DefaultFilename, nil
}
