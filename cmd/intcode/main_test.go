// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
)

type fakePrompter struct {
	lines  []string
	closed bool
}

func (p *fakePrompter) Readline() (string, error) {
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	l := p.lines[0]
	p.lines = p.lines[1:]
	return l, nil
}

func (p *fakePrompter) Close() error {
	p.closed = true
	return nil
}

type result struct {
	out, log string
	err      error
}

func execute(stdin string, p prompter, args ...string) result {
	root, a := newRootCmd()
	var out, log bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&log)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	if p != nil {
		a.newPrompter = func() (prompter, error) { return p, nil }
	}
	err := root.Execute()
	return result{out.String(), log.String(), err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	name = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	return name
}

const (
	cmp8     = "3,9,8,9,10,9,4,9,99,-1,8\n"
	day2     = "1,9,10,3,\n2,3,11,0,\n99,\n30,40,50\n"
	chain    = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"
	feedback = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
	lt8Src   = `
( 1 if input < 8 )
		in x
		lt x #8 x
		out x
		hlt
:x		.dat 0
`
)

func TestRun(t *testing.T) {
	prog := writeFile(t, "cmp8.txt", cmp8)
	for _, test := range []struct {
		in, out string
	}{
		{"8", "1\n"},
		{"7", "0\n"},
		{"9,1,2", "0\n"},
	} {
		r := execute("", nil, "run", prog, "--input", test.in)
		require.NoError(t, r.err, test.in)
		assert.Equal(t, test.out, r.out, test.in)
	}
}

func TestRun_stdin(t *testing.T) {
	r := execute("3,0,4,0,99", nil, "run", "-", "-i", "-5")
	require.NoError(t, r.err)
	assert.Equal(t, "-5\n", r.out)
}

func TestRun_starved(t *testing.T) {
	prog := writeFile(t, "cmp8.txt", cmp8)
	r := execute("", nil, "run", prog)
	assert.Equal(t, vm.ErrInputStarved, errors.Cause(r.err))
	assert.Empty(t, r.out)
}

func TestRun_interactive(t *testing.T) {
	prog := writeFile(t, "cmp8.txt", cmp8)
	p := &fakePrompter{lines: []string{"", "oops", "7"}}
	r := execute("", p, "run", prog, "--interactive")
	require.NoError(t, r.err)
	assert.Equal(t, "0\n", r.out)
	assert.Contains(t, r.log, "invalid input")
	assert.True(t, p.closed)

	p = &fakePrompter{}
	r = execute("", p, "run", prog, "--interactive")
	assert.Equal(t, io.EOF, errors.Cause(r.err))
	assert.True(t, p.closed)
}

func TestRun_nounVerbDump(t *testing.T) {
	prog := writeFile(t, "day2.txt", day2)
	r := execute("", nil, "run", prog, "--noun", "9", "--verb", "10", "--dump")
	require.NoError(t, r.err)
	assert.Equal(t, "pc=8 state=halted instructions=2\n3500,9,10,70,2,3,11,0,99,30,40,50\n", r.out)

	r = execute("", nil, "run", prog, "--noun", "1", "--verb", "2")
	require.NoError(t, r.err)
	assert.Empty(t, r.out)
}

func TestRun_fail(t *testing.T) {
	prog := writeFile(t, "bad.txt", "1,0,0,0,42")
	r := execute("", nil, "run", prog, "--dump")
	var de *vm.DecodeError
	require.True(t, errors.As(r.err, &de))
	assert.Equal(t, 4, de.PC)
	assert.Equal(t, "pc=4 state=failed instructions=1\n2,0,0,0,42\n", r.out)
}

func TestAmp(t *testing.T) {
	prog := writeFile(t, "chain.txt", chain)

	r := execute("", nil, "amp", prog)
	require.NoError(t, r.err)
	assert.Equal(t, "43210 [4 3 2 1 0]\n", r.out)

	r = execute("", nil, "amp", prog, "--phases", "4,3,2,1,0")
	require.NoError(t, r.err)
	assert.Equal(t, "43210\n", r.out)

	r = execute("", nil, "amp", prog, "-p", "4,3,2,1,1")
	assert.Equal(t, amp.ErrPhases, errors.Cause(r.err))
}

func TestAmp_feedbackTrace(t *testing.T) {
	prog := writeFile(t, "feedback.txt", feedback)

	r := execute("", nil, "amp", prog, "--feedback", "--phases", "9,8,7,6,5", "--trace")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.out, "phases [9 8 7 6 5]\n"), r.out)
	assert.Contains(t, r.out, "loop 1")
	assert.Contains(t, r.out, "loop 5")
	assert.NotContains(t, r.out, "loop 6")
	assert.Contains(t, r.out, "amp 0 (phase 9): 0 -> [5] suspended")
	assert.Contains(t, r.out, "amp 4 (phase 5): 64 -> [129] suspended")
	assert.Contains(t, r.out, "halted")
	assert.True(t, strings.HasSuffix(r.out, "\n139629729\n"), r.out)

	r = execute("", nil, "amp", prog, "--feedback", "--trace")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.out, "139629729 [9 8 7 6 5]\nphases [9 8 7 6 5]\n"), r.out)
}

func TestAsm(t *testing.T) {
	src := writeFile(t, "lt8.asm", lt8Src)
	const want = "3,9,1007,9,8,9,4,9,99,0\n"

	r := execute("", nil, "asm", src)
	require.NoError(t, r.err)
	assert.Equal(t, want, r.out)

	out := filepath.Join(t.TempDir(), "lt8.txt")
	r = execute("", nil, "asm", src, "-o", out)
	require.NoError(t, r.err)
	assert.Empty(t, r.out)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want, string(b))

	r = execute("", nil, "run", out, "-i", "5")
	require.NoError(t, r.err)
	assert.Equal(t, "1\n", r.out)

	// source files run as is
	r = execute("", nil, "run", src, "-i", "9")
	require.NoError(t, r.err)
	assert.Equal(t, "0\n", r.out)

	r = execute("", nil, "disasm", out)
	require.NoError(t, r.err)
	assert.Equal(t, ""+
		"     0\tin 9\n"+
		"     2\tlt 9 #8 9\n"+
		"     6\tout 9\n"+
		"     8\thlt\n"+
		"     9\t.dat 0\n", r.out)

	bad := writeFile(t, "bad.s", "out #1 nope")
	r = execute("", nil, "asm", bad)
	assert.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "Unknown mnemonic nope")
}

func TestDiag(t *testing.T) {
	r := execute("", nil, "diag", writeFile(t, "echo.txt", "3,0,4,0,99"), "--id", "5")
	require.NoError(t, r.err)
	assert.Equal(t, "5\n", r.out)

	r = execute("", nil, "diag", writeFile(t, "bad.txt", "4,0,4,0,99"))
	var de *vm.DiagnosticError
	require.True(t, errors.As(r.err, &de))
	assert.Equal(t, 0, de.Test)
}

func TestNounVerb(t *testing.T) {
	prog := writeFile(t, "nv.txt", "1,0,0,0,99")
	r := execute("", nil, "nounverb", prog, "--target", "198")
	require.NoError(t, r.err)
	assert.Equal(t, "4 4 404\n", r.out)

	r = execute("", nil, "nounverb", prog, "--target", "-1")
	assert.Equal(t, vm.ErrNotFound, errors.Cause(r.err))
}

func TestLogLevel(t *testing.T) {
	prog := writeFile(t, "echo.txt", "3,0,4,0,99")
	r := execute("", nil, "--log-level", "trace", "run", prog, "-i", "1")
	require.NoError(t, r.err)
	assert.Contains(t, r.log, "level=TRACE")

	r = execute("", nil, "run", prog, "-i", "1")
	require.NoError(t, r.err)
	assert.Empty(t, r.log)

	r = execute("", nil, "--log-level", "loud", "run", prog)
	assert.Error(t, r.err)
}

func TestLoad_missing(t *testing.T) {
	r := execute("", nil, "run", filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, os.IsNotExist(errors.Cause(r.err)))
}
