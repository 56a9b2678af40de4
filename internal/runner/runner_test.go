package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/ibfgo/internal/interpreter"
	"github.com/retroenv/ibfgo/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestSession(limits options.Session, input string) (*interpreter.Session, *bytes.Buffer) {
	output := &bytes.Buffer{}
	sess := interpreter.New(limits, bytes.NewReader([]byte(input)), output)
	return sess, output
}

func TestRunCommand(t *testing.T) {
	sess, output := newTestSession(options.NewSession(), "")

	assert.NoError(t, RunCommand(sess, "++++[>++++<-]>."))
	assert.Equal(t, []byte{16}, output.Bytes())
}

func TestRunCommandFailsFastOnImbalance(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		expected error
	}{
		{name: "unmatched end", command: "+.]", expected: interpreter.ErrUnmatchedLoopEnd},
		{name: "unmatched start", command: "[+.", expected: interpreter.ErrUnmatchedLoopStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, output := newTestSession(options.NewSession(), "")

			err := RunCommand(sess, tt.command)
			assert.True(t, errors.Is(err, tt.expected))
			// Nothing executed before the pre-scan failed.
			assert.Equal(t, 0, output.Len())
			assert.Equal(t, byte(0), sess.Tape().Cell())
		})
	}
}

func TestRunFile(t *testing.T) {
	limits := options.NewSession()
	sess, output := newTestSession(limits, "")
	logger := log.NewTestLogger(t)

	script := "++++\n[>++++\n<-]\n>.\n"
	err := RunFile(context.Background(), logger, sess, limits, strings.NewReader(script))

	assert.NoError(t, err)
	assert.Equal(t, []byte{16}, output.Bytes())
}

func TestRunFileUnterminatedLoop(t *testing.T) {
	limits := options.NewSession()
	sess, _ := newTestSession(limits, "")
	logger := log.NewTestLogger(t)

	err := RunFile(context.Background(), logger, sess, limits, strings.NewReader("++[>+\n<-\n"))
	assert.True(t, errors.Is(err, interpreter.ErrUnmatchedLoopStart))
}

func TestRunFileUnmatchedLoopEnd(t *testing.T) {
	limits := options.NewSession()
	sess, _ := newTestSession(limits, "")
	logger := log.NewTestLogger(t)

	err := RunFile(context.Background(), logger, sess, limits, strings.NewReader("+]\n"))
	assert.True(t, errors.Is(err, interpreter.ErrUnmatchedLoopEnd))
	assert.ErrorContains(t, err, "line 1")
}

func TestRunFileLineTooLong(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "one over the limit", length: 9},
		{name: "far over the limit", length: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := options.NewSession()
			limits.MaxLineLength = 8
			sess, _ := newTestSession(limits, "")
			logger := log.NewTestLogger(t)

			err := RunFile(context.Background(), logger, sess, limits,
				strings.NewReader(strings.Repeat("+", tt.length)+"\n"))
			assert.True(t, errors.Is(err, ErrLineTooLong))
		})
	}
}

func TestRunFileLineAtMaxLength(t *testing.T) {
	tests := []struct {
		name       string
		terminator string
	}{
		{name: "LF", terminator: "\n"},
		{name: "CRLF", terminator: "\r\n"},
		{name: "no terminator", terminator: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := options.NewSession()
			limits.MaxLineLength = 8
			sess, output := newTestSession(limits, "")
			logger := log.NewTestLogger(t)

			// A line of exactly the maximum length is still legal.
			err := RunFile(context.Background(), logger, sess, limits,
				strings.NewReader("+++++++."+tt.terminator))
			assert.NoError(t, err)
			assert.Equal(t, []byte{7}, output.Bytes())
		})
	}
}

func TestRunFileContextCancelled(t *testing.T) {
	limits := options.NewSession()
	sess, _ := newTestSession(limits, "")
	logger := log.NewTestLogger(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunFile(ctx, logger, sess, limits, strings.NewReader("+++\n"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestByteWriter(t *testing.T) {
	var buf bytes.Buffer
	w := byteWriter{&buf}

	assert.NoError(t, w.WriteByte('x'))
	assert.Equal(t, []byte{'x'}, buf.Bytes())
}

func TestFeedConsoleLine(t *testing.T) {
	limits := options.NewSession()
	limits.MaxLineLength = 8

	t.Run("line at maximum length is fed", func(t *testing.T) {
		sess, output := newTestSession(limits, "")
		logger := log.NewTestLogger(t)

		assert.True(t, feedConsoleLine(logger, sess, limits, "+++++++."))
		assert.Equal(t, []byte{7}, output.Bytes())
	})

	t.Run("too long line is rejected unfed", func(t *testing.T) {
		sess, output := newTestSession(limits, "")
		logger := log.NewTestLogger(t)

		assert.False(t, feedConsoleLine(logger, sess, limits, strings.Repeat("+", 9)))
		// None of the characters executed.
		assert.Equal(t, byte(0), sess.Tape().Cell())
		assert.Equal(t, 0, output.Len())
	})

	t.Run("too long line keeps open loop state", func(t *testing.T) {
		sess, _ := newTestSession(limits, "")
		logger := log.NewTestLogger(t)

		assert.True(t, feedConsoleLine(logger, sess, limits, "++["))
		assert.False(t, feedConsoleLine(logger, sess, limits, strings.Repeat("-", 9)))
		// The rejected line was never fed, the construct stays open.
		assert.Equal(t, 1, sess.Depth())
		assert.True(t, feedConsoleLine(logger, sess, limits, "-]"))
		assert.Equal(t, byte(0), sess.Tape().Cell())
	})

	t.Run("feed error resets pending state", func(t *testing.T) {
		sess, _ := newTestSession(limits, "")
		logger := log.NewTestLogger(t)

		assert.False(t, feedConsoleLine(logger, sess, limits, "]"))
		assert.Equal(t, 0, sess.Depth())

		assert.True(t, feedConsoleLine(logger, sess, limits, "+["))
		assert.False(t, feedConsoleLine(logger, sess, limits, "-]]"))
		assert.Equal(t, 0, sess.Depth())
	})
}

func TestHandleMetaWord(t *testing.T) {
	tests := []struct {
		line    string
		handled bool
		quit    bool
	}{
		{line: "help", handled: true, quit: false},
		{line: " QUIT ", handled: true, quit: true},
		{line: "exit", handled: true, quit: true},
		{line: "+++.", handled: false, quit: false},
		{line: "", handled: false, quit: false},
	}

	for _, tt := range tests {
		handled, quit := handleMetaWord(tt.line)
		assert.Equal(t, tt.handled, handled)
		assert.Equal(t, tt.quit, quit)
	}
}
