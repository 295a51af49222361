package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/instrgen/gen"
	"github.com/ezrec/instrgen/table"
)

func TestRun(t *testing.T) {
	assert := assert.New(t)

	opts := options{output: filepath.Join(t.TempDir(), "outfile.rs")}
	stdout := &bytes.Buffer{}

	err := run(opts, strings.NewReader("f8\nld_instr\n"), stdout)
	require.NoError(t, err)

	data, err := os.ReadFile(opts.output)
	require.NoError(t, err)

	expected := &strings.Builder{}
	for opcode := 0xf8; opcode <= 0xff; opcode++ {
		expected.WriteString(table.NewRecord(opcode, "ld_instr").String())
	}
	assert.Equal(expected.String(), string(data))
	assert.True(strings.HasPrefix(stdout.String(), gen.PROMPT_START))
}

func TestRun_Truncates(t *testing.T) {
	assert := assert.New(t)

	opts := options{
		output: filepath.Join(t.TempDir(), "outfile.rs"),
		seed:   "rst_instr",
	}
	require.NoError(t, os.WriteFile(opts.output, []byte(strings.Repeat("stale\n", 1000)), 0o644))

	err := run(opts, strings.NewReader("ff\n"), &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(opts.output)
	require.NoError(t, err)
	assert.Equal(table.NewRecord(0xff, "rst_instr").String(), string(data))
}

func TestRun_BadStart(t *testing.T) {
	assert := assert.New(t)

	opts := options{output: filepath.Join(t.TempDir(), "outfile.rs")}

	err := run(opts, strings.NewReader("xyzzy\n"), &bytes.Buffer{})
	assert.ErrorIs(err, gen.ErrNotHex)

	_, err = os.Stat(opts.output)
	assert.True(os.IsNotExist(err))
}

func TestRun_BadOutput(t *testing.T) {
	assert := assert.New(t)

	opts := options{output: filepath.Join(t.TempDir(), "missing", "outfile.rs")}

	err := run(opts, strings.NewReader("f8\nld_instr\n"), &bytes.Buffer{})
	assert.Error(err)
	assert.True(os.IsNotExist(err))
}
