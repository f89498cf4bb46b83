package git

import (
	"fmt"
	"strings"
)

type Action int

const (
	Checkout Action = iota
	Commit
)

// Command is a finished git command, ready to be run, printed or copied.
type Command struct {
	Action Action

	// Value is the branch name for Checkout and the message for Commit.
	Value string
}

func CheckoutCommand(branch string) Command {
	return Command{Action: Checkout, Value: branch}
}

func CommitCommand(message string) Command {
	return Command{Action: Commit, Value: message}
}

// Args returns the arguments passed to git.
func (c Command) Args() []string {
	switch c.Action {
	case Checkout:
		return []string{"checkout", "-b", c.Value}
	case Commit:
		return []string{"commit", "-m", c.Value}
	}
	panic(fmt.Sprintf("unknown git action %d", c.Action))
}

// String returns the command line as a user would type it in a shell.
func (c Command) String() string {
	args := c.Args()
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, "git")
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

// EchoPipe returns the shell line which sends the command text to program.
func (c Command) EchoPipe(program string) string {
	return "echo " + shellQuote(c.String()) + " | " + program
}

// Run executes the command with runner.
func (c Command) Run(runner Runner) ([]byte, error) {
	switch c.Action {
	case Checkout:
		return runner.GitCheckout(c.Value)
	case Commit:
		return runner.GitCommit(c.Value)
	}
	panic(fmt.Sprintf("unknown git action %d", c.Action))
}

func shellQuote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n'\"$`\\|&;<>()*?[]{}!#~") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
