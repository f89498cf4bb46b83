package mockgit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewMockGit returns a git.Runner which checks every call against
// an ordered list of expectations.
func NewMockGit(t *testing.T) *Mock {
	return &Mock{
		assert: require.New(t),
	}
}

type Mock struct {
	assert      *require.Assertions
	expectedCmd []string
	response    []cmdresponse
}

type cmdresponse struct {
	output []byte
	err    error
}

func (m *Mock) GitCheckout(branch string) ([]byte, error) {
	return m.cmd("git checkout -b %s", branch)
}

func (m *Mock) GitCommit(message string) ([]byte, error) {
	return m.cmd("git commit -m %s", message)
}

func (m *Mock) GitStatus() ([]byte, error) {
	return m.cmd("git status")
}

func (m *Mock) CopyToClipboard(program string, text string) error {
	_, err := m.cmd("echo %s | %s", text, program)
	return err
}

func (m *Mock) PasteFromClipboard(program string) ([]byte, error) {
	return m.cmd("%s", program)
}

func (m *Mock) ExpectCheckout(branch string) *Mock {
	return m.expect("git checkout -b %s", branch)
}

func (m *Mock) ExpectCommit(message string) *Mock {
	return m.expect("git commit -m %s", message)
}

func (m *Mock) ExpectStatus() *Mock {
	return m.expect("git status")
}

func (m *Mock) ExpectCopy(program string, text string) *Mock {
	return m.expect("echo %s | %s", text, program)
}

func (m *Mock) ExpectPaste(program string) *Mock {
	return m.expect("%s", program)
}

// Respond sets the output returned by the last expected command.
func (m *Mock) Respond(output string) {
	m.response[len(m.response)-1].output = []byte(output)
}

// Fail sets the error returned by the last expected command.
func (m *Mock) Fail(err error) {
	m.response[len(m.response)-1].err = err
}

func (m *Mock) ExpectationsMet() {
	m.assert.Empty(m.expectedCmd, fmt.Sprintf("expected additional git commands: %v", m.expectedCmd))
	m.assert.Empty(m.response, fmt.Sprintf("expected additional git responses: %v", m.response))
}

func (m *Mock) cmd(format string, args ...interface{}) ([]byte, error) {
	actual := fmt.Sprintf(format, args...)
	m.assert.NotEmpty(m.expectedCmd, fmt.Sprintf("unexpected command: %s", actual))

	expected := m.expectedCmd[0]
	m.assert.Equal(expected, actual)
	response := m.response[0]

	m.expectedCmd = m.expectedCmd[1:]
	m.response = m.response[1:]

	return response.output, response.err
}

func (m *Mock) expect(cmd string, args ...interface{}) *Mock {
	m.expectedCmd = append(m.expectedCmd, fmt.Sprintf(cmd, args...))
	m.response = append(m.response, cmdresponse{})
	return m
}
