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
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// prompter reads input lines in interactive mode. *readline.Instance
// implements it.
type prompter interface {
	Readline() (string, error)
	Close() error
}

type app struct {
	logLevel string
	debug    bool
	log      *slog.Logger
	stdin    io.Reader

	newPrompter func() (prompter, error)
}

func newReadline() (prompter, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "input> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// load reads the program in the named file. Files with a .s or .asm extension
// are assembled. The name "-" reads the program from standard input.
func (a *app) load(name string) (vm.Memory, error) {
	if name == "-" {
		return vm.Parse(a.stdin)
	}
	switch filepath.Ext(name) {
	case ".s", ".asm":
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "load")
		}
		defer f.Close()
		return asm.Assemble(name, f)
	}
	return vm.LoadFile(name)
}

func cells(v []int64) []vm.Cell {
	c := make([]vm.Cell, len(v))
	for i := range v {
		c[i] = vm.Cell(v[i])
	}
	return c
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{
		log:         ici.Discard(),
		stdin:       os.Stdin,
		newPrompter: newReadline,
	}
	root := &cobra.Command{
		Use:   "intcode",
		Short: "Intcode virtual machine and amplifier ring toolkit",
		Long: `intcode runs Intcode programs, drives chains of amplifiers running an
Intcode program and searches for the phase settings that yield the highest
output signal. It also provides an assembler and a disassembler.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := ici.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = ici.NewLogger(cmd.ErrOrStderr(), level)
			if r := cmd.InOrStdin(); r != os.Stdin {
				a.stdin = r
			}
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log `level` (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "print error stack traces")

	root.AddCommand(
		a.runCmd(),
		a.ampCmd(),
		a.diagCmd(),
		a.nounVerbCmd(),
		a.asmCmd(),
		a.disasmCmd(),
	)
	return root, a
}

func atExit(debug bool, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	var de *vm.DecodeError
	if errors.As(err, &de) {
		fmt.Fprintf(os.Stderr, "PC: %d (%d)\n", de.PC, de.Word)
	}
	os.Exit(1)
}

func main() {
	root, a := newRootCmd()
	err := root.Execute()
	atExit(a.debug, err)
}
