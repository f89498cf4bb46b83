package main

import (
	"fmt"
	"io"

	"github.com/git-helpe-rs/git-helpe-rs/config"
	"github.com/git-helpe-rs/git-helpe-rs/config/config_parser"
	"github.com/git-helpe-rs/git-helpe-rs/git"
	"github.com/git-helpe-rs/git-helpe-rs/helper"
	"github.com/git-helpe-rs/git-helpe-rs/pretty"
	"github.com/git-helpe-rs/git-helpe-rs/runmode"
	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type gitRunner = git.Runner

// command line opts
type opts struct {
	Config  string `short:"c" long:"config" description:"Path to the config file." value-name:"PATH"`
	Debug   bool   `long:"debug" description:"Show runtime debug info."`
	Version bool   `short:"v" long:"version" description:"Show version info."`
}

type app struct {
	opts   opts
	output io.Writer
	gitcmd git.Runner
	helper helper.HelperInterface
}

func newApp(output io.Writer, gitcmd git.Runner) *app {
	return &app{
		output: output,
		gitcmd: gitcmd,
	}
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "git-helpe-rs"
	parser.SubcommandsOptional = true
	parser.CommandHandler = a.execute

	addCommand(parser, "set-branch-prefix", "Set prefix for checkout using clipboard contents",
		"Set branch prefix under given key so then you can use it when running\n"+
			"  git-helpe-rs bp <key>\n"+
			"to checkout to a branch name based on contents of your clipboard.",
		&setBranchPrefixCommand{app: a})
	addCommand(parser, "delete-branch-prefix", "Delete the prefix stored under key",
		"Delete the branch prefix stored under key.",
		&deleteBranchPrefixCommand{app: a})
	addCommand(parser, "set-branch-template", "Set template that can be used when switching branches",
		"Branch template will be interpolated where {} occurs. For example\n"+
			"  git-helpe-rs set-branch-template fu 'feature-{}/utils-{}'\n"+
			"  git-helpe-rs bt 123 new-cli -k fu\n"+
			"will run\n"+
			"  git checkout -b feature-123/utils-new-cli",
		&setBranchTemplateCommand{app: a})
	addCommand(parser, "set-commit", "Set template for commit formatting",
		"Template has places to interpolate marked with {}, [] and {b}.\n"+
			"  {}  is filled by the values given to c, in order\n"+
			"  []  is filled by the values set with set-auto-complete when c runs with -a\n"+
			"  {b} is filled by the number in the current branch name when c runs with -b",
		&setCommitCommand{app: a})
	addCommand(parser, "set-auto-complete", "Set values used to autocomplete commit templates",
		"Set values which fill the [] places of a commit template when running c with -a.",
		&setAutocompleteCommand{app: a})
	addCommand(parser, "set-clipboard-command", "Set the programs used to copy to and paste from the clipboard",
		"Defaults are pbcopy and pbpaste.",
		&setClipboardCommand{app: a})
	addCommand(parser, "bp", "Check you out to a branch using your clipboard contents",
		"Valid clipboard contents look like this:\n"+
			"  git checkout -b name-of-your-branch\n"+
			"after running\n"+
			"  git-helpe-rs set-branch-prefix f 'feature/'\n"+
			"  git-helpe-rs bp f\n"+
			"you will be checked out like this\n"+
			"  git checkout -b feature/name-of-your-branch",
		&branchPrefixCommand{app: a})
	addCommand(parser, "bt", "Check out to a branch based on template",
		"Interpolate values into the branch template and check out the branch.",
		&branchTemplateCommand{app: a})
	addCommand(parser, "c", "Commit using one of templates",
		"Interpolate values into the commit template and commit with it as the message.",
		&commitCommand{app: a})
	addCommand(parser, "show", "Show current config",
		"Show current config in json, or yaml with --yaml.",
		&showCommand{app: a})
	addCommand(parser, "completion", "Print the bash completion script",
		"Add the output to your .bashrc:\n"+
			"  git-helpe-rs completion >> ~/.bashrc",
		&completionCommand{app: a})

	return parser
}

func addCommand(parser *flags.Parser, name string, short string, long string, data interface{}) {
	_, err := parser.AddCommand(name, short, long, data)
	if err != nil {
		panic(err)
	}
}

// execute runs once per invocation, after all options are parsed.
func (a *app) execute(command flags.Commander, args []string) error {
	if command == nil {
		return nil
	}
	if a.opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	filename := config_parser.ConfigFilePath(a.opts.Config)
	log.Debug().Str("path", filename).Msg("using config")
	store := config_parser.NewConfigStore(filename)
	log.Debug().Msg("config: " + pretty.PrettyString(store.Current()))
	a.helper = helper.NewGitHelper(store, a.gitcmd, a.output, a.opts.Debug)

	err := command.Execute(args)
	a.helper.DebugPrintSummary()
	return err
}

type RunModeFlags struct {
	Copy   bool `short:"x" long:"copy" description:"Instead of executing the command pass it to clipboard."`
	DryRun bool `short:"d" long:"dry-run" description:"Print the command instead of executing it."`
}

func (f RunModeFlags) runFlags() runmode.Flags {
	return runmode.Flags{Copy: f.Copy, DryRun: f.DryRun}
}

type setBranchPrefixCommand struct {
	app  *app
	Args struct {
		Key    string `positional-arg-name:"key"`
		Prefix string `positional-arg-name:"prefix"`
	} `positional-args:"yes" required:"yes"`
}

func (c *setBranchPrefixCommand) Execute(_ []string) error {
	return c.app.helper.SetBranchPrefix(c.Args.Key, c.Args.Prefix)
}

type deleteBranchPrefixCommand struct {
	app  *app
	Args struct {
		Key string `positional-arg-name:"key"`
	} `positional-args:"yes" required:"yes"`
}

func (c *deleteBranchPrefixCommand) Execute(_ []string) error {
	return c.app.helper.DeleteBranchPrefix(c.Args.Key)
}

type setBranchTemplateCommand struct {
	app  *app
	Args struct {
		Key      string `positional-arg-name:"key"`
		Template string `positional-arg-name:"template"`
	} `positional-args:"yes" required:"yes"`
}

func (c *setBranchTemplateCommand) Execute(_ []string) error {
	return c.app.helper.SetBranchTemplate(c.Args.Key, c.Args.Template)
}

type setCommitCommand struct {
	app  *app
	Key  string `short:"k" long:"key" default:"default" description:"Key to store the template under."`
	Args struct {
		Template string `positional-arg-name:"template"`
	} `positional-args:"yes" required:"yes"`
}

func (c *setCommitCommand) Execute(_ []string) error {
	return c.app.helper.SetCommitTemplate(c.Key, c.Args.Template)
}

type setAutocompleteCommand struct {
	app  *app
	Args struct {
		Values []string `positional-arg-name:"values"`
	} `positional-args:"yes"`
}

func (c *setAutocompleteCommand) Execute(_ []string) error {
	return c.app.helper.SetAutocompleteValues(c.Args.Values)
}

type setClipboardCommand struct {
	app  *app
	Args struct {
		Copy  string `positional-arg-name:"copy"`
		Paste string `positional-arg-name:"paste"`
	} `positional-args:"yes" required:"yes"`
}

func (c *setClipboardCommand) Execute(_ []string) error {
	return c.app.helper.SetClipboardCommands(c.Args.Copy, c.Args.Paste)
}

type branchPrefixCommand struct {
	app *app
	RunModeFlags
	Args struct {
		PrefixKey string `positional-arg-name:"prefix-key"`
	} `positional-args:"yes" required:"yes"`
}

func (c *branchPrefixCommand) Execute(_ []string) error {
	return c.app.helper.BranchFromClipboard(c.Args.PrefixKey, c.runFlags())
}

type branchTemplateCommand struct {
	app *app
	RunModeFlags
	Key  string `short:"k" long:"key" default:"default" description:"Which template to use."`
	Args struct {
		Values []string `positional-arg-name:"values"`
	} `positional-args:"yes"`
}

func (c *branchTemplateCommand) Execute(_ []string) error {
	return c.app.helper.BranchFromTemplate(c.Key, c.Args.Values, c.runFlags())
}

type commitCommand struct {
	app *app
	RunModeFlags
	Key             string `short:"k" long:"key" default:"default" description:"Which template to use."`
	UseAutocomplete bool   `short:"a" long:"auto-complete" description:"Fill [] with the autocomplete values."`
	UseBranchNumber bool   `short:"b" long:"infer-number-from-branch" description:"Fill {b} with the number in the current branch name."`
	Args            struct {
		Values []string `positional-arg-name:"values"`
	} `positional-args:"yes"`
}

func (c *commitCommand) Execute(_ []string) error {
	return c.app.helper.Commit(c.Key, c.Args.Values, helper.CommitOptions{
		Flags:           c.runFlags(),
		UseAutocomplete: c.UseAutocomplete,
		UseBranchNumber: c.UseBranchNumber,
	})
}

type showCommand struct {
	app  *app
	YAML bool `long:"yaml" description:"Show config as yaml."`
}

func (c *showCommand) Execute(_ []string) error {
	if c.YAML {
		return c.app.helper.Show(helper.ShowYAML)
	}
	return c.app.helper.Show(helper.ShowJSON)
}

const bashCompletion = `_git_helpe_rs() {
    args=("${COMP_WORDS[@]:1:$COMP_CWORD}")
    local IFS=$'\n'
    COMPREPLY=($(GO_FLAGS_COMPLETION=1 ${COMP_WORDS[0]} "${args[@]}"))
    return 1
}
complete -F _git_helpe_rs git-helpe-rs
`

type completionCommand struct {
	app *app
}

func (c *completionCommand) Execute(_ []string) error {
	_, err := fmt.Fprint(c.app.output, bashCompletion)
	return err
}

var _ config.Provider = (*config_parser.ConfigStore)(nil)
