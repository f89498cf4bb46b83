package config_parser

import (
	"os"
	"path"
	"path/filepath"

	"github.com/ejoffe/rake"
	"github.com/git-helpe-rs/git-helpe-rs/config"
	"github.com/rs/zerolog/log"
)

const configFileName = ".git-helpe-rs-config"

// ParseConfig reads the config file at filename.
// A missing or unparsable file yields the default config.
func ParseConfig(filename string) *config.Config {
	cfg := config.DefaultConfig()

	rake.LoadSources(cfg,
		NewJSONFileSource(filename),
	)
	cfg.Normalize()

	return cfg
}

// ConfigFilePath resolves where the config file lives. In priority order:
// the explicit path given on the command line, $XDG_CONFIG_HOME, $HOME.
func ConfigFilePath(explicit string) string {
	if explicit != "" {
		return filepath.Clean(explicit)
	}
	rootdir := os.Getenv("XDG_CONFIG_HOME")
	if rootdir == "" {
		rootdir = os.Getenv("HOME")
	}
	if rootdir == "" {
		log.Debug().Msg("no XDG_CONFIG_HOME or HOME set, using working directory for config")
		rootdir = "."
	}
	return filepath.Clean(path.Join(rootdir, configFileName))
}
