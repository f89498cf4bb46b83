package git

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ExtractNumericToken returns the digits of the first line of git status output,
//
//	the line naming the current branch. Digits on any other line (file names
//	of modified files for example) are ignored.
func ExtractNumericToken(status []byte) (string, error) {
	firstLine := status
	if i := bytes.IndexByte(status, '\n'); i >= 0 {
		firstLine = status[:i]
	}

	var b strings.Builder
	for _, c := range firstLine {
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoNumberFound, strings.TrimSpace(string(firstLine)))
	}
	return b.String(), nil
}

// GetBranchNumber runs git status and extracts the number from the current branch name.
func GetBranchNumber(runner Runner) (string, error) {
	status, err := runner.GitStatus()
	if err != nil {
		return "", err
	}
	token, err := ExtractNumericToken(status)
	if err != nil {
		return "", err
	}
	log.Debug().Str("token", token).Msg("GetBranchNumber")
	return token, nil
}
