// Package where resolves the directories vidkit reads from and writes to, creating them on demand.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidkit/vidkit/constant"
	"github.com/vidkit/vidkit/filesystem"
	"github.com/vidkit/vidkit/key"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "VIDKIT_CONFIG_PATH"

func mkdir(parts ...string) string {
	path := filepath.Join(parts...)
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// base returns dir from the given lookup or fallback when it fails.
func base(lookup func() (string, error), fallback string) string {
	dir, err := lookup()
	if err != nil {
		return fallback
	}
	return dir
}

// Config is the directory holding vidkit.toml, resolver scripts and logs.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}
	return mkdir(lo.Must(os.UserConfigDir()), constant.App)
}

// Cache holds the version check cache and fetched pages.
func Cache() string {
	return mkdir(base(os.UserCacheDir, "cache"), constant.App)
}

func Logs() string {
	return mkdir(Config(), "logs")
}

// Sources holds custom Lua resolvers.
func Sources() string {
	return mkdir(Config(), "sources")
}

// History is the file saved videos are recorded in. Only its parent is created.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Pages caches page bodies fetched by resolver scripts.
func Pages() string {
	return mkdir(Cache(), "pages")
}

// Downloads is download.directory when set, ~/Downloads/vidkit otherwise.
func Downloads() string {
	if custom := viper.GetString(key.DownloadDirectory); custom != "" {
		return mkdir(custom)
	}
	return mkdir(base(os.UserHomeDir, "."), "Downloads", constant.App)
}

func Temp() string {
	return mkdir(os.TempDir(), constant.App)
}
