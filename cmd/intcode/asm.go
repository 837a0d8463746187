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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/ici"
)

func (a *app) asmCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "asm FILE",
		Short: "Assemble an Intcode program",
		Long: `Assemble the source file and write the program as comma separated values to
standard output or to the file given with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "asm")
			}
			defer f.Close()
			mem, err := asm.Assemble(args[0], f)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				o, e := os.Create(out)
				if e != nil {
					return errors.Wrap(e, "asm")
				}
				defer func() {
					if e := o.Close(); err == nil && e != nil {
						err = errors.Wrap(e, "asm")
					}
				}()
				w = o
			}
			ew := ici.NewErrWriter(w)
			mem.WriteTo(ew)
			ew.Write([]byte{'\n'})
			return ew.Err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write program to `file`")
	return cmd
}

func (a *app) disasmCmd() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "disasm FILE",
		Short: "Disassemble an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := a.load(args[0])
			if err != nil {
				return err
			}
			return asm.DisassembleAll(mem, base, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&base, "base", 0, "`address` of the first cell")
	return cmd
}
