package runmode

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/git-helpe-rs/git-helpe-rs/git"
	"github.com/git-helpe-rs/git-helpe-rs/git/mockgit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		flags    Flags
		expected RunMode
	}{
		{Flags{Copy: false, DryRun: false}, Normal},
		{Flags{Copy: false, DryRun: true}, DryRun},
		{Flags{Copy: true, DryRun: false}, Copy},
		{Flags{Copy: true, DryRun: true}, DryRunAndCopy},
	}
	for _, tc := range tests {
		t.Run(tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.flags))
		})
	}
}

func TestDispatchNormal(t *testing.T) {
	gitmock := mockgit.NewMockGit(t)
	output := &bytes.Buffer{}
	d := NewDispatcher(gitmock, output)

	gitmock.ExpectCheckout("feature/name-of-your-branch").
		Respond("Switched to a new branch 'feature/name-of-your-branch'\n")
	err := d.Dispatch(git.CheckoutCommand("feature/name-of-your-branch"), Normal, "pbcopy")
	require.NoError(t, err)
	assert.Equal(t, "Switched to a new branch 'feature/name-of-your-branch'\n", output.String())
	gitmock.ExpectationsMet()
}

func TestDispatchNormalFailure(t *testing.T) {
	gitmock := mockgit.NewMockGit(t)
	output := &bytes.Buffer{}
	d := NewDispatcher(gitmock, output)

	gitmock.ExpectCommit("[12] - fix").Fail(git.ErrProcessLaunch)
	err := d.Dispatch(git.CommitCommand("[12] - fix"), Normal, "pbcopy")
	assert.True(t, errors.Is(err, git.ErrProcessLaunch))
	assert.Empty(t, output.String())
	gitmock.ExpectationsMet()
}

func TestDispatchDryRun(t *testing.T) {
	gitmock := mockgit.NewMockGit(t)
	output := &bytes.Buffer{}
	d := NewDispatcher(gitmock, output)

	err := d.Dispatch(git.CommitCommand("[12] - fix"), DryRun, "pbcopy")
	require.NoError(t, err)
	assert.Equal(t, "Command to be executed:\n git commit -m '[12] - fix'\n", output.String())
	gitmock.ExpectationsMet()
}

func TestDispatchCopy(t *testing.T) {
	gitmock := mockgit.NewMockGit(t)
	output := &bytes.Buffer{}
	d := NewDispatcher(gitmock, output)

	gitmock.ExpectCopy("xclip", "git checkout -b feature/x")
	err := d.Dispatch(git.CheckoutCommand("feature/x"), Copy, "xclip")
	require.NoError(t, err)
	assert.Equal(t, "Copied to clipboard:\n git checkout -b feature/x\n", output.String())
	gitmock.ExpectationsMet()
}

func TestDispatchCopyFailure(t *testing.T) {
	gitmock := mockgit.NewMockGit(t)
	output := &bytes.Buffer{}
	d := NewDispatcher(gitmock, output)

	gitmock.ExpectCopy("xclip", "git checkout -b feature/x").Fail(git.ErrProcessLaunch)
	err := d.Dispatch(git.CheckoutCommand("feature/x"), Copy, "xclip")
	assert.True(t, errors.Is(err, git.ErrProcessLaunch))
	assert.Empty(t, output.String())
	gitmock.ExpectationsMet()
}

func TestDispatchDryRunAndCopy(t *testing.T) {
	tests := []struct {
		name     string
		command  git.Command
		expected string
	}{
		{"Checkout", git.CheckoutCommand("feature/x"),
			"Command to be executed:\n echo 'git checkout -b feature/x' | pbcopy\n"},
		{"CommitWithSpaces", git.CommitCommand("[12] - fix gpu issues"),
			"Command to be executed:\n echo 'git commit -m '\\''[12] - fix gpu issues'\\''' | pbcopy\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gitmock := mockgit.NewMockGit(t)
			output := &bytes.Buffer{}
			d := NewDispatcher(gitmock, output)

			err := d.Dispatch(tc.command, DryRunAndCopy, "pbcopy")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, output.String())
			gitmock.ExpectationsMet()
		})
	}
}

// Running the printed line must feed the copy program what Copy mode sends.
func TestDispatchDryRunAndCopyMatchesCopy(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	cmd := git.CommitCommand("[12] - fix gpu issues")

	gitmock := mockgit.NewMockGit(t)
	output := &bytes.Buffer{}
	d := NewDispatcher(gitmock, output)
	require.NoError(t, d.Dispatch(cmd, DryRunAndCopy, "cat"))

	line := strings.TrimSuffix(strings.TrimPrefix(output.String(), "Command to be executed:\n "), "\n")
	out, err := exec.Command("sh", "-c", line).Output()
	require.NoError(t, err)
	assert.Equal(t, cmd.String()+"\n", string(out))
	gitmock.ExpectationsMet()
}
