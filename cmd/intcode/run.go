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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

type runFlags struct {
	input       []int64
	noun, verb  int64
	interactive bool
	dump        bool
}

func (a *app) runCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run an Intcode program",
		Long: `Run an Intcode program to completion and print its output values, one per
line. Input values are taken from --input. In interactive mode, the user is
prompted for more values whenever the program runs out of input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := a.load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("noun") || cmd.Flags().Changed("verb") {
				if mem, err = mem.Restore(vm.Cell(f.noun), vm.Cell(f.verb)); err != nil {
					return err
				}
			}
			return a.run(cmd.OutOrStdout(), mem, &f)
		},
	}
	cmd.Flags().Int64SliceVarP(&f.input, "input", "i", nil, "comma separated input `values`")
	cmd.Flags().Int64Var(&f.noun, "noun", 0, "restore cell 1 to `value` before running")
	cmd.Flags().Int64Var(&f.verb, "verb", 0, "restore cell 2 to `value` before running")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "prompt for input when the program needs more")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "dump the instance state and memory upon exit")
	return cmd
}

func (a *app) run(w io.Writer, mem vm.Memory, f *runFlags) (err error) {
	i, err := vm.New(mem, vm.Inputs(cells(f.input)...), vm.Logger(a.log))
	if err != nil {
		return err
	}
	ew := ici.NewErrWriter(w)
	defer func() {
		if f.dump {
			i.Dump(ew)
		}
		if err == nil {
			err = ew.Err
		}
	}()

	var p prompter
	defer func() {
		if p != nil {
			p.Close()
		}
	}()

	for {
		out, err := i.Resume()
		for _, v := range out {
			fmt.Fprintln(ew, v)
		}
		if err != nil {
			return err
		}
		if i.State() == vm.Halted {
			return nil
		}
		if !f.interactive {
			return errors.Wrapf(vm.ErrInputStarved, "pc=%d", i.PC)
		}
		if p == nil {
			if p, err = a.newPrompter(); err != nil {
				return errors.Wrap(err, "interactive input")
			}
		}
		v, err := a.readInput(p)
		if err != nil {
			return err
		}
		i.Feed(v...)
	}
}

// readInput prompts until the user enters at least one value.
func (a *app) readInput(p prompter) ([]vm.Cell, error) {
	for {
		line, err := p.Readline()
		if err != nil {
			return nil, errors.Wrap(err, "interactive input")
		}
		v, err := vm.Parse(strings.NewReader(line))
		if err != nil {
			a.log.Warn("invalid input", "line", line, "err", err)
			continue
		}
		if len(v) > 0 {
			return v, nil
		}
	}
}
