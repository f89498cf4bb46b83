package config_parser

import (
	"github.com/git-helpe-rs/git-helpe-rs/config"
)

// ConfigStore is a config.Provider backed by a json file on disk.
// The file is read once in NewConfigStore and rewritten by every setter.
// There is no locking: two concurrent invocations race and the last write wins.
type ConfigStore struct {
	*config.Config
	filename string
}

func NewConfigStore(filename string) *ConfigStore {
	return &ConfigStore{
		Config:   ParseConfig(filename),
		filename: filename,
	}
}

func (s *ConfigStore) Current() *config.Config {
	return s.Config
}

func (s *ConfigStore) Filename() string {
	return s.filename
}

func (s *ConfigStore) SetBranchPrefix(key string, prefix string) error {
	s.AddBranchPrefix(key, prefix)
	return s.save()
}

func (s *ConfigStore) DeleteBranchPrefix(key string) (string, error) {
	old, ok := s.RemoveBranchPrefix(key)
	if !ok {
		_, err := s.Lookup(config.BranchPrefix, key)
		return "", err
	}
	return old, s.save()
}

func (s *ConfigStore) SetBranchTemplate(key string, template string) error {
	s.AddBranchTemplate(key, template)
	return s.save()
}

func (s *ConfigStore) SetCommitTemplate(key string, template string) error {
	s.AddCommitTemplate(key, template)
	return s.save()
}

func (s *ConfigStore) SetClipboardCommands(commands config.ClipboardCommands) error {
	s.ClipboardCommands = commands
	return s.save()
}

func (s *ConfigStore) SetAutocompleteValues(values []string) error {
	s.AutocompleteValues = append([]string{}, values...)
	return s.save()
}

func (s *ConfigStore) save() error {
	return WriteConfigFile(s.filename, s.Config)
}
