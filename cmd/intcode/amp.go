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

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

func (a *app) ampCmd() *cobra.Command {
	var (
		feedback bool
		phases   []int64
		trace    bool
	)
	cmd := &cobra.Command{
		Use:   "amp FILE",
		Short: "Run a chain of amplifiers",
		Long: `Run the program on a chain of five amplifiers. With --phases, the chain is
run once with the given phase settings and the final signal is printed.
Otherwise every permutation of the phase settings is tried and the highest
signal is printed along with the phase settings that produced it.

In feedback mode, the output of the last amplifier is fed back to the first
one until they all halt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := a.load(args[0])
			if err != nil {
				return err
			}
			mode := amp.SinglePass
			if feedback {
				mode = amp.Feedback
			}
			w := ici.NewErrWriter(cmd.OutOrStdout())
			p := cells(phases)
			if len(p) == 0 {
				res, err := amp.MaxSignal(mem, mode, amp.Logger(a.log))
				if err != nil {
					return err
				}
				a.log.Info("search", "trials", res.Trials, "skipped", res.Skipped)
				fmt.Fprintln(w, res.Signal, res.Phases)
				if !trace {
					return w.Err
				}
				p = res.Phases
			}
			var steps []amp.Step
			opts := []amp.Option{amp.Logger(a.log)}
			if trace {
				opts = append(opts, amp.Trace(func(s amp.Step) { steps = append(steps, s) }))
			}
			signal, err := amp.Run(mem, p, opts...)
			if err != nil {
				return err
			}
			if trace {
				printTrace(w, p, steps)
			}
			if len(phases) > 0 {
				fmt.Fprintln(w, signal)
			}
			return w.Err
		},
	}
	cmd.Flags().BoolVar(&feedback, "feedback", false, "use feedback loop mode (phase settings 5 to 9)")
	cmd.Flags().Int64SliceVarP(&phases, "phases", "p", nil, "comma separated phase `settings`")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the amplifier schedule")
	return cmd
}

// printTrace prints the schedule of a ring as a tree with one branch per loop
// around the ring.
func printTrace(w io.Writer, phases []vm.Cell, steps []amp.Step) {
	tree := treeprint.NewWithRoot(fmt.Sprintf("phases %v", phases))
	var loop treeprint.Tree
	for k, s := range steps {
		if loop == nil || s.Amp == 0 && k > 0 {
			loop = tree.AddBranch(fmt.Sprintf("loop %d", k/amp.Amplifiers+1))
		}
		loop.AddNode(fmt.Sprintf("amp %d (phase %d): %d -> %v %v", s.Amp, s.Phase, s.Signal, s.Output, s.State))
	}
	io.WriteString(w, tree.String())
}
