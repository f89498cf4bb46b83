package runmode

import (
	"fmt"
	"io"

	"github.com/git-helpe-rs/git-helpe-rs/git"
	"github.com/rs/zerolog/log"
)

// Dispatcher performs the single side effect of an invocation.
type Dispatcher struct {
	gitcmd git.Runner
	output io.Writer
}

func NewDispatcher(gitcmd git.Runner, output io.Writer) *Dispatcher {
	return &Dispatcher{
		gitcmd: gitcmd,
		output: output,
	}
}

// Dispatch runs, prints or copies cmd according to mode.
// copyProgram is only used by the Copy and DryRunAndCopy modes.
func (d *Dispatcher) Dispatch(cmd git.Command, mode RunMode, copyProgram string) error {
	log.Debug().Str("mode", mode.String()).Str("cmd", cmd.String()).Msg("Dispatch")

	switch mode {
	case Normal:
		out, err := cmd.Run(d.gitcmd)
		if len(out) > 0 {
			fmt.Fprintf(d.output, "%s", out)
		}
		return err
	case DryRun:
		fmt.Fprintf(d.output, "Command to be executed:\n %s\n", cmd)
		return nil
	case Copy:
		err := d.gitcmd.CopyToClipboard(copyProgram, cmd.String())
		if err != nil {
			return err
		}
		fmt.Fprintf(d.output, "Copied to clipboard:\n %s\n", cmd)
		return nil
	case DryRunAndCopy:
		fmt.Fprintf(d.output, "Command to be executed:\n %s\n", cmd.EchoPipe(copyProgram))
		return nil
	}
	return fmt.Errorf("unknown run mode %d", mode)
}
