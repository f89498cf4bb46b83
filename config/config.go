package config

import (
	"errors"
	"fmt"

	"github.com/ejoffe/rake"
)

var (
	ErrUnknownTemplateKey = errors.New("unknown template key")
	ErrPersistence        = errors.New("unable to persist config")
)

// DefaultKey is used when no -k key is given for a template
const DefaultKey = "default"

// Config object to hold git-helpe-rs configuration
type Config struct {
	ClipboardCommands ClipboardCommands `json:"clipboard_commands" yaml:"clipboard_commands"`

	BranchPrefixVariants   map[string]string `json:"branch_prefix_variants" yaml:"branch_prefix_variants"`
	BranchTemplateVariants map[string]string `json:"branch_template_variants" yaml:"branch_template_variants"`
	CommitTemplateVariants map[string]string `json:"commit_template_variants" yaml:"commit_template_variants"`

	AutocompleteValues []string `json:"autocomplete_values" yaml:"autocomplete_values"`
}

// ClipboardCommands names the programs used to copy to and paste from the clipboard
type ClipboardCommands struct {
	Copy  string `default:"pbcopy" json:"copy" yaml:"copy"`
	Paste string `default:"pbpaste" json:"paste" yaml:"paste"`
}

// Category is one of the variant maps held by the config
type Category string

const (
	BranchPrefix   Category = "branch prefix"
	BranchTemplate Category = "branch template"
	CommitTemplate Category = "commit template"
)

func EmptyConfig() *Config {
	return &Config{
		BranchPrefixVariants:   map[string]string{},
		BranchTemplateVariants: map[string]string{},
		CommitTemplateVariants: map[string]string{},
		AutocompleteValues:     []string{},
	}
}

func DefaultConfig() *Config {
	cfg := EmptyConfig()
	rake.LoadSources(&cfg.ClipboardCommands,
		rake.DefaultSource(),
	)
	return cfg
}

// Normalize fills in anything a partially written config file left out.
func (c *Config) Normalize() {
	if c.BranchPrefixVariants == nil {
		c.BranchPrefixVariants = map[string]string{}
	}
	if c.BranchTemplateVariants == nil {
		c.BranchTemplateVariants = map[string]string{}
	}
	if c.CommitTemplateVariants == nil {
		c.CommitTemplateVariants = map[string]string{}
	}
	if c.AutocompleteValues == nil {
		c.AutocompleteValues = []string{}
	}
	if c.ClipboardCommands.Copy == "" || c.ClipboardCommands.Paste == "" {
		var defaults ClipboardCommands
		rake.LoadSources(&defaults, rake.DefaultSource())
		if c.ClipboardCommands.Copy == "" {
			c.ClipboardCommands.Copy = defaults.Copy
		}
		if c.ClipboardCommands.Paste == "" {
			c.ClipboardCommands.Paste = defaults.Paste
		}
	}
}

func (c *Config) getter(category Category) func(key string) (string, bool) {
	switch category {
	case BranchPrefix:
		return c.GetBranchPrefix
	case BranchTemplate:
		return c.GetBranchTemplate
	case CommitTemplate:
		return c.GetCommitTemplate
	}
	panic(fmt.Sprintf("unknown config category %q", category))
}

// Lookup returns the variant stored under key, or an error wrapping ErrUnknownTemplateKey.
func (c *Config) Lookup(category Category, key string) (string, error) {
	value, ok := c.getter(category)(key)
	if !ok {
		return "", fmt.Errorf("%w: no %s under key %q, you should add it prior to trying to use it",
			ErrUnknownTemplateKey, category, key)
	}
	return value, nil
}

func (c *Config) GetBranchPrefix(key string) (string, bool) {
	value, ok := c.BranchPrefixVariants[key]
	return value, ok
}

func (c *Config) GetBranchTemplate(key string) (string, bool) {
	value, ok := c.BranchTemplateVariants[key]
	return value, ok
}

func (c *Config) GetCommitTemplate(key string) (string, bool) {
	value, ok := c.CommitTemplateVariants[key]
	return value, ok
}

func (c *Config) GetClipboardCommands() ClipboardCommands {
	return c.ClipboardCommands
}

func (c *Config) GetAutocompleteValues() []string {
	return c.AutocompleteValues
}

func (c *Config) AddBranchPrefix(key string, prefix string) {
	c.BranchPrefixVariants[key] = prefix
}

func (c *Config) AddBranchTemplate(key string, template string) {
	c.BranchTemplateVariants[key] = template
}

func (c *Config) AddCommitTemplate(key string, template string) {
	c.CommitTemplateVariants[key] = template
}

// RemoveBranchPrefix deletes the prefix under key and returns the old value.
func (c *Config) RemoveBranchPrefix(key string) (string, bool) {
	old, ok := c.BranchPrefixVariants[key]
	delete(c.BranchPrefixVariants, key)
	return old, ok
}
