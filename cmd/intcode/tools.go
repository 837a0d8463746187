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

	"github.com/spf13/cobra"

	"github.com/db47h/intcode/vm"
)

func (a *app) diagCmd() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "diag FILE",
		Short: "Run a diagnostic program",
		Long: `Run a diagnostic program with the given system ID as its only input and print
the diagnostic code. All values output before the code must be zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := a.load(args[0])
			if err != nil {
				return err
			}
			code, err := vm.Diagnose(mem, vm.Cell(id))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), code)
			return err
		},
	}
	cmd.Flags().Int64Var(&id, "id", 1, "system `ID`")
	return cmd
}

func (a *app) nounVerbCmd() *cobra.Command {
	var target int64
	cmd := &cobra.Command{
		Use:   "nounverb FILE",
		Short: "Search the noun and verb that produce a given result",
		Long: `Search the noun and verb in the range 0 to 99 for which the program leaves
the target value in cell 0. Prints the noun, the verb and 100*noun+verb.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := a.load(args[0])
			if err != nil {
				return err
			}
			noun, verb, err := vm.FindNounVerb(mem, vm.Cell(target))
			if err != nil {
				return err
			}
			a.log.Info("found", "noun", noun, "verb", verb)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), noun, verb, 100*noun+verb)
			return err
		},
	}
	cmd.Flags().Int64Var(&target, "target", 19690720, "target `value`")
	return cmd
}
