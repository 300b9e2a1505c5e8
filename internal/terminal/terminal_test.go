package terminal

import (
	"errors"
	"strings"
	"testing"

	"noise-rooms/internal/commands"
	"noise-rooms/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole(t *testing.T) (*Terminal, *logger.Logger, *[]string) {
	t.Helper()
	log := logger.New("")
	reg := commands.NewRegistry()
	var ran []string
	reg.Register("echo", "echo <words>", nil, func(args []string) error {
		ran = append(ran, strings.Join(args, " "))
		return nil
	})
	reg.Register("fail", "fail", nil, func([]string) error { return errors.New("it broke") })
	return New(log, reg), log, &ran
}

func lastLine(log *logger.Logger) string {
	lines := log.Lines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestToggleIsStateless(t *testing.T) {
	term, _, _ := newConsole(t)
	assert.False(t, term.IsOpen())

	assert.True(t, term.Update(Input{Toggle: true}))
	assert.True(t, term.IsOpen())
	assert.False(t, term.Update(Input{}))
	assert.True(t, term.IsOpen())
	assert.True(t, term.Update(Input{Toggle: true}))
	assert.False(t, term.IsOpen())
}

func TestClosedConsoleIgnoresTyping(t *testing.T) {
	term, _, ran := newConsole(t)
	term.Update(Input{Text: "echo hi", Enter: true})
	assert.Empty(t, term.Buffer())
	assert.Empty(t, *ran)
}

func TestTypingAndSubmit(t *testing.T) {
	term, log, ran := newConsole(t)
	term.Update(Input{Toggle: true})

	term.Update(Input{Text: "echo hé"})
	term.Update(Input{Backspace: true})
	assert.Equal(t, "echo h", term.Buffer())
	term.Update(Input{Text: "ello", Enter: true})

	assert.Equal(t, []string{"hello"}, *ran)
	assert.Empty(t, term.Buffer())
	assert.True(t, strings.HasSuffix(lastLine(log), "] > echo hello"))
}

func TestSubmitLogsErrors(t *testing.T) {
	term, log, _ := newConsole(t)

	term.Submit("fail")
	assert.True(t, strings.HasSuffix(lastLine(log), "] it broke"))

	term.Submit("nope")
	assert.Contains(t, lastLine(log), "unknown command: nope")

	before := len(log.Lines())
	term.Submit("   ")
	assert.Len(t, log.Lines(), before)
}

func TestRecallWalksHistory(t *testing.T) {
	term, _, ran := newConsole(t)
	term.Update(Input{Toggle: true})
	term.Submit("echo one")
	term.Submit("echo two")

	term.Update(Input{Recall: true})
	assert.Equal(t, "echo two", term.Buffer())
	term.Update(Input{Recall: true})
	assert.Equal(t, "echo one", term.Buffer())
	term.Update(Input{Recall: true})
	assert.Equal(t, "echo two", term.Buffer())

	term.Update(Input{Enter: true})
	require.Len(t, *ran, 3)
	assert.Equal(t, "two", (*ran)[2])
}

func TestSubmitQuotedAndMalformed(t *testing.T) {
	term, log, ran := newConsole(t)

	term.Submit(`echo "two words" three`)
	assert.Equal(t, []string{"two words three"}, *ran)

	term.Submit(`echo "unterminated`)
	assert.Contains(t, lastLine(log), "parse")
	assert.Len(t, *ran, 1)
}
