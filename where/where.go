// Package where resolves the filesystem locations used by themer.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/themer-cli/themer/constant"
	"github.com/themer-cli/themer/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "THEMER_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honouring THEMER_CONFIG_PATH
// before the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.Themer))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Cache resolves the directory for expiring cached data.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(Config(), "cache")
	}
	return ensureDir(filepath.Join(base, constant.Themer))
}

// Storage resolves the file backing the local key-value slot.
// Every persisted key lives in this single JSON document.
func Storage() string {
	return filepath.Join(Config(), "storage.json")
}
