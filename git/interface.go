package git

import "errors"

var (
	ErrProcessLaunch = errors.New("unable to launch process")
	ErrNoNumberFound = errors.New("no number found in branch name")
)

// Runner runs the external programs the helper depends on.
// git itself is fixed, the clipboard programs are passed in from config.
type Runner interface {
	GitCheckout(branch string) ([]byte, error)
	GitCommit(message string) ([]byte, error)
	GitStatus() ([]byte, error)
	CopyToClipboard(program string, text string) error
	PasteFromClipboard(program string) ([]byte, error)
}
