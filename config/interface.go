package config

// Provider is the read/write view of the configuration used by the helper.
// Setters persist the change before returning.
type Provider interface {
	Current() *Config

	Lookup(category Category, key string) (string, error)
	GetBranchPrefix(key string) (string, bool)
	GetBranchTemplate(key string) (string, bool)
	GetCommitTemplate(key string) (string, bool)
	GetClipboardCommands() ClipboardCommands
	GetAutocompleteValues() []string

	SetBranchPrefix(key string, prefix string) error
	DeleteBranchPrefix(key string) (string, error)
	SetBranchTemplate(key string, template string) error
	SetCommitTemplate(key string, template string) error
	SetClipboardCommands(commands ClipboardCommands) error
	SetAutocompleteValues(values []string) error
}
