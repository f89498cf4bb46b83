package config_parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/git-helpe-rs/git-helpe-rs/config"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/jsonc"
)

type jsonFileSource struct {
	filename string
}

// NewJSONFileSource returns a rake source which loads a config file
// written in json. Comments and trailing commas are tolerated.
func NewJSONFileSource(filename string) *jsonFileSource {
	return &jsonFileSource{
		filename: filename,
	}
}

func (s *jsonFileSource) Load(cfg interface{}) {
	target := cfg.(*config.Config)

	data, err := os.ReadFile(s.filename)
	if err != nil {
		log.Debug().Err(err).Str("path", s.filename).Msg("config file not read, using defaults")
		return
	}

	// decode into a fresh value so a broken file can't leave the
	//  target half populated
	loaded := config.EmptyConfig()
	err = json.Unmarshal(jsonc.ToJSON(data), loaded)
	if err != nil {
		log.Debug().Err(err).Str("path", s.filename).Msg("config file not parsable, using defaults")
		return
	}

	if loaded.ClipboardCommands.Copy == "" {
		loaded.ClipboardCommands.Copy = target.ClipboardCommands.Copy
	}
	if loaded.ClipboardCommands.Paste == "" {
		loaded.ClipboardCommands.Paste = target.ClipboardCommands.Paste
	}
	*target = *loaded
}

// WriteConfigFile writes cfg as json to filename, creating parent directories as needed.
func WriteConfigFile(filename string, cfg *config.Config) error {
	dir := filepath.Dir(filename)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", config.ErrPersistence, dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrPersistence, err)
	}

	err = os.WriteFile(filename, append(data, '\n'), 0644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", config.ErrPersistence, filename, err)
	}
	log.Debug().Str("path", filename).Msg("config written")
	return nil
}
