package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/git-helpe-rs/git-helpe-rs/git/realgit"
	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	version = "dev"
	commit  = "dversion"
	date    = "unknown"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	run(os.Args[1:], os.Stdout, realgit.NewGitCmd(""))
}

// run never fails the process, every error is printed and the exit code stays zero.
func run(args []string, output io.Writer, gitcmd gitRunner) {
	app := newApp(output, gitcmd)
	parser := newParser(app)

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(output, err)
			return
		}
		fmt.Fprintf(output, "error: %s\n", err)
		return
	}

	if parser.Active == nil {
		if len(rest) > 0 {
			fmt.Fprintf(output, "error: unknown command %q\n", rest[0])
			return
		}
		if app.opts.Version {
			fmt.Fprintf(output, "git-helpe-rs version : %s : %s : %s\n", version, date, shortCommit(commit))
			return
		}
		parser.WriteHelp(output)
	}
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
