package helper

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ejoffe/profiletimer"
	"github.com/git-helpe-rs/git-helpe-rs/config"
	"github.com/git-helpe-rs/git-helpe-rs/git"
	"github.com/git-helpe-rs/git-helpe-rs/pretty"
	"github.com/git-helpe-rs/git-helpe-rs/runmode"
	"github.com/git-helpe-rs/git-helpe-rs/template"
	"github.com/rs/zerolog/log"
)

var ErrInvalidClipboard = errors.New("clipboard does not hold a git checkout command")

// CommitOptions are the flags of the commit action.
type CommitOptions struct {
	runmode.Flags

	// UseAutocomplete fills [] markers with the stored autocomplete values.
	UseAutocomplete bool

	// UseBranchNumber fills the {b} marker with the number in the current branch name.
	UseBranchNumber bool
}

type ShowFormat int

const (
	ShowJSON ShowFormat = iota
	ShowYAML
)

// NewGitHelper constructs and returns a new instance of githelper.
func NewGitHelper(cfg config.Provider, gitcmd git.Runner, output io.Writer, debug bool) *githelper {
	h := &githelper{
		config:       cfg,
		gitcmd:       gitcmd,
		dispatcher:   runmode.NewDispatcher(gitcmd, output),
		output:       output,
		debug:        debug,
		profiletimer: profiletimer.StartNoopTimer(),
	}
	if debug {
		h.profiletimer = profiletimer.StartProfileTimer()
	}
	return h
}

type githelper struct {
	config       config.Provider
	gitcmd       git.Runner
	dispatcher   *runmode.Dispatcher
	output       io.Writer
	debug        bool
	profiletimer profiletimer.Timer
}

var _checkoutRegex = regexp.MustCompile(`^git checkout -b ([a-zA-Z0-9_./-]+)$`)

// BranchFromClipboard checks out the branch named by a
// 'git checkout -b <name>' command in the clipboard, prefixed with the
// prefix stored under prefixKey.
func (h *githelper) BranchFromClipboard(prefixKey string, flags runmode.Flags) error {
	h.profiletimer.Step("BranchFromClipboard::Start")

	prefix, err := h.config.Lookup(config.BranchPrefix, prefixKey)
	if err != nil {
		return err
	}

	clipboard := h.config.GetClipboardCommands()
	contents, err := h.gitcmd.PasteFromClipboard(clipboard.Paste)
	if err != nil {
		return err
	}
	h.profiletimer.Step("BranchFromClipboard::Paste")

	matches := _checkoutRegex.FindStringSubmatch(strings.TrimSpace(string(contents)))
	if matches == nil {
		return fmt.Errorf("%w\n valid one looks like this:\n git checkout -b name-of-your-branch", ErrInvalidClipboard)
	}

	cmd := git.CheckoutCommand(prefix + matches[1])
	err = h.dispatch(cmd, flags, clipboard.Copy)
	h.profiletimer.Step("BranchFromClipboard::End")
	return err
}

// BranchFromTemplate checks out a branch named by interpolating values into
// the branch template stored under key.
func (h *githelper) BranchFromTemplate(key string, values []string, flags runmode.Flags) error {
	h.profiletimer.Step("BranchFromTemplate::Start")

	tpl, err := h.config.Lookup(config.BranchTemplate, key)
	if err != nil {
		return err
	}

	branch, err := interpolate(tpl, values)
	if err != nil {
		return err
	}
	h.profiletimer.Step("BranchFromTemplate::Interpolate")

	err = h.dispatch(git.CheckoutCommand(branch), flags, h.config.GetClipboardCommands().Copy)
	h.profiletimer.Step("BranchFromTemplate::End")
	return err
}

// Commit commits with a message made from the commit template stored under key.
func (h *githelper) Commit(key string, values []string, opts CommitOptions) error {
	h.profiletimer.Step("Commit::Start")

	tpl, err := h.config.Lookup(config.CommitTemplate, key)
	if err != nil {
		return err
	}

	message, err := interpolate(tpl, values)
	if err != nil {
		return err
	}
	h.profiletimer.Step("Commit::Interpolate")

	if opts.UseAutocomplete {
		message, err = template.InterpolateAutocomplete(message, h.config.GetAutocompleteValues())
		if err != nil {
			return err
		}
		h.profiletimer.Step("Commit::Autocomplete")
	}

	if opts.UseBranchNumber {
		// fail before running git status if there is nowhere to put the number
		err = template.ValidateDerived(message)
		if err != nil {
			return err
		}
		token, err := git.GetBranchNumber(h.gitcmd)
		if err != nil {
			return err
		}
		message, err = template.InterpolateDerived(message, token)
		if err != nil {
			return err
		}
		h.profiletimer.Step("Commit::BranchNumber")
	}

	err = h.dispatch(git.CommitCommand(message), opts.Flags, h.config.GetClipboardCommands().Copy)
	h.profiletimer.Step("Commit::End")
	return err
}

func (h *githelper) SetBranchPrefix(key string, prefix string) error {
	err := h.config.SetBranchPrefix(key, prefix)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.output, "Branch prefix %q saved under key %q\n", prefix, key)
	return nil
}

func (h *githelper) DeleteBranchPrefix(key string) error {
	old, err := h.config.DeleteBranchPrefix(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.output, "Removed %s : %q from config\n", key, old)
	return nil
}

func (h *githelper) SetBranchTemplate(key string, tpl string) error {
	err := template.ValidateTemplate(tpl)
	if err != nil {
		return err
	}
	err = h.config.SetBranchTemplate(key, tpl)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.output, "Branch template %q saved under key %q\n", tpl, key)
	return nil
}

func (h *githelper) SetCommitTemplate(key string, tpl string) error {
	err := template.ValidateTemplate(tpl)
	if err != nil {
		return err
	}
	err = h.config.SetCommitTemplate(key, tpl)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.output, "Commit template %q saved under key %q\n", tpl, key)
	return nil
}

func (h *githelper) SetClipboardCommands(copyProgram string, pasteProgram string) error {
	err := h.config.SetClipboardCommands(config.ClipboardCommands{
		Copy:  copyProgram,
		Paste: pasteProgram,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(h.output, "Clipboard commands set to copy: %s, paste: %s\n", copyProgram, pasteProgram)
	return nil
}

func (h *githelper) SetAutocompleteValues(values []string) error {
	err := h.config.SetAutocompleteValues(values)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.output, "Autocomplete values set to %q\n", values)
	return nil
}

// Show prints the current config.
func (h *githelper) Show(format ShowFormat) error {
	if format == ShowYAML {
		return pretty.YAMLWriter(h.output, h.config.Current())
	}
	return pretty.PrettyWriter(h.output, h.config.Current())
}

// DebugPrintSummary prints debug info if debug mode is enabled.
func (h *githelper) DebugPrintSummary() {
	if h.debug {
		err := h.profiletimer.ShowResults()
		if err != nil {
			log.Debug().Err(err).Msg("DebugPrintSummary")
		}
	}
}

func (h *githelper) dispatch(cmd git.Command, flags runmode.Flags, copyProgram string) error {
	mode := runmode.Resolve(flags)
	return h.dispatcher.Dispatch(cmd, mode, copyProgram)
}

func interpolate(tpl string, values []string) (string, error) {
	err := template.ValidatePlaceholderCount(tpl, len(values))
	if err != nil {
		return "", err
	}
	return template.Interpolate(tpl, values)
}
