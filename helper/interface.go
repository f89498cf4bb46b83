package helper

import "github.com/git-helpe-rs/git-helpe-rs/runmode"

type HelperInterface interface {
	BranchFromClipboard(prefixKey string, flags runmode.Flags) error
	BranchFromTemplate(key string, values []string, flags runmode.Flags) error
	Commit(key string, values []string, opts CommitOptions) error

	SetBranchPrefix(key string, prefix string) error
	DeleteBranchPrefix(key string) error
	SetBranchTemplate(key string, tpl string) error
	SetCommitTemplate(key string, tpl string) error
	SetClipboardCommands(copyProgram string, pasteProgram string) error
	SetAutocompleteValues(values []string) error
	Show(format ShowFormat) error

	DebugPrintSummary()
}
