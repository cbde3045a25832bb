package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eagraf/overlay-installer/internal/constants"
	"github.com/eagraf/overlay-installer/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	viper "github.com/spf13/viper"
)

const (
	keyAppKey       = "app_key"
	keyManifestPath = "manifest_path"
	keyLogLevel     = "log_level"
	keyConfigFile   = "config"
)

var (
	ErrMissingAppKey       = errors.New("app key must not be empty")
	ErrMissingManifestPath = errors.New("manifest path must not be empty")
)

// InstallerConfig holds the settings for a single installer run.
type InstallerConfig struct {
	AppKey       string `mapstructure:"app_key"`
	ManifestPath string `mapstructure:"manifest_path"`
	LogLevel     string `mapstructure:"log_level"`

	level zerolog.Level
}

// BindFlags registers the override flags and binds them to v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.String("app-key", constants.DefaultAppKey, "application key registered with the runtime")
	flags.String("manifest", constants.DefaultManifestPath, "path to the application manifest, relative to the working directory")
	flags.String("log-level", constants.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("config", "", "config file (default ./"+constants.ConfigName+"."+constants.ConfigType+")")

	bindings := map[string]string{
		keyAppKey:       "app-key",
		keyManifestPath: "manifest",
		keyLogLevel:     "log-level",
		keyConfigFile:   "config",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

func loadEnv(v *viper.Viper) error {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range []string{keyAppKey, keyManifestPath, keyLogLevel, keyConfigFile} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	v.SetDefault(keyAppKey, constants.DefaultAppKey)
	v.SetDefault(keyManifestPath, constants.DefaultManifestPath)
	v.SetDefault(keyLogLevel, constants.DefaultLogLevel)
	return nil
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString(keyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		return nil
	}

	v.AddConfigPath(".")
	v.AddConfigPath(constants.ConfigDir)
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigType)

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// NewInstallerConfig resolves the config from flags bound to v, the
// environment, an optional config file and defaults, in that order.
func NewInstallerConfig(v *viper.Viper) (*InstallerConfig, error) {
	if err := loadEnv(v); err != nil {
		return nil, err
	}
	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var config InstallerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.AppKey = strings.TrimSpace(config.AppKey)
	config.ManifestPath = strings.TrimSpace(config.ManifestPath)
	if config.AppKey == "" {
		return nil, ErrMissingAppKey
	}
	if config.ManifestPath == "" {
		return nil, ErrMissingManifestPath
	}

	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}
	config.level = level

	return &config, nil
}

func (c *InstallerConfig) Level() zerolog.Level {
	return c.level
}
