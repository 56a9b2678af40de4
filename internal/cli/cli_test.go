package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		input   string
		wantErr bool
	}{
		{name: "no arguments", args: nil},
		{name: "command", args: []string{"-c", "+++."}, command: "+++."},
		{name: "script file", args: []string{"hello.bf"}, input: "hello.bf"},
		{name: "stdin marker", args: []string{"-"}, input: "-"},
		{name: "flags and file", args: []string{"-q", "-debug", "prog.bf"}, input: "prog.bf"},
		{name: "command and file", args: []string{"-c", "+.", "prog.bf"}, wantErr: true},
		{name: "two files", args: []string{"a.bf", "b.bf"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, limits, err := parseFlags(tt.args)

			if tt.wantErr {
				var usageErr *UsageError
				assert.True(t, errors.As(err, &usageErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.command, opts.Command)
			assert.Equal(t, tt.input, opts.Input)
			assert.Equal(t, 30000, limits.TapeSize)
		})
	}
}

func TestParseFlagsOptionFlags(t *testing.T) {
	opts, _, err := parseFlags([]string{"-q", "-debug", "-dump", "-version"})

	assert.NoError(t, err)
	assert.True(t, opts.Quiet)
	assert.True(t, opts.Debug)
	assert.True(t, opts.DumpState)
	assert.True(t, opts.Version)
}
