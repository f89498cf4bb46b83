package realgit

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/git-helpe-rs/git-helpe-rs/git"
	gogit "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"
)

// NewGitCmd returns a new git cmd instance running in rootdir.
// An empty rootdir runs everything in the current working directory.
func NewGitCmd(rootdir string) *gitcmd {
	return &gitcmd{
		rootdir: rootdir,
	}
}

type gitcmd struct {
	rootdir string
}

func (c *gitcmd) GitCheckout(branch string) ([]byte, error) {
	return c.git("checkout", "-b", branch)
}

func (c *gitcmd) GitCommit(message string) ([]byte, error) {
	return c.git("commit", "-m", message)
}

// GitStatus returns status text whose first line names the current branch.
// HEAD is read with go-git when possible, git status is run otherwise
// (unborn branch or detached HEAD).
func (c *gitcmd) GitStatus() ([]byte, error) {
	repo, err := gogit.PlainOpenWithOptions(c.dir(), &gogit.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		head, err := repo.Head()
		if err == nil && head.Name().IsBranch() {
			return []byte("On branch " + head.Name().Short() + "\n"), nil
		}
		log.Debug().Err(err).Msg("GitStatus :: unable to read HEAD, falling back to git status")
	} else {
		log.Debug().Err(err).Msg("GitStatus :: unable to open repository, falling back to git status")
	}
	return c.git("status")
}

// CopyToClipboard pipes text through echo into the clipboard program.
func (c *gitcmd) CopyToClipboard(program string, text string) error {
	log.Debug().Msgf("echo %q | %s", text, program)
	echo := exec.Command("echo", text)
	echo.Dir = c.rootdir
	copycmd := exec.Command(program)
	copycmd.Dir = c.rootdir

	pipe, err := echo.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: echo: %v", git.ErrProcessLaunch, err)
	}
	copycmd.Stdin = pipe

	err = copycmd.Start()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", git.ErrProcessLaunch, program, err)
	}
	err = echo.Run()
	if err != nil {
		_ = copycmd.Wait()
		return fmt.Errorf("%w: echo: %v", git.ErrProcessLaunch, err)
	}
	err = copycmd.Wait()
	if err != nil {
		return fmt.Errorf("%s failed: %w", program, err)
	}
	return nil
}

func (c *gitcmd) PasteFromClipboard(program string) ([]byte, error) {
	log.Debug().Msg(program)
	cmd := exec.Command(program)
	cmd.Dir = c.rootdir
	out, err := cmd.Output()
	if err != nil {
		return out, processError(program, err)
	}
	return out, nil
}

func (c *gitcmd) git(args ...string) ([]byte, error) {
	log.Debug().Msg("git " + strings.Join(args, " "))
	cmd := exec.Command("git", args...)
	cmd.Dir = c.rootdir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, processError("git "+args[0], err)
	}
	return out, nil
}

func (c *gitcmd) dir() string {
	if c.rootdir == "" {
		return "."
	}
	return c.rootdir
}

// processError separates a program that ran and failed from one that never started.
func processError(program string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s failed: %w", program, err)
	}
	return fmt.Errorf("%w: %s: %v", git.ErrProcessLaunch, program, err)
}
