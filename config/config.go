// Package config registers every setting with its default and loads the toml config file through viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/where"
)

// EnvKeyReplacer maps dotted keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup binds defaults and VIDKIT_* variables, then reads vidkit.toml from the config directory if present.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for name, field := range Default {
		viper.MustBindEnv(name)
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}

	return err
}
