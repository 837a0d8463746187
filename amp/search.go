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

package amp

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/db47h/intcode/vm"
)

// Result is the outcome of a MaxSignal search.
type Result struct {
	Signal  vm.Cell   // highest signal found
	Phases  []vm.Cell // phase settings that produced Signal
	Trials  int       // number of phase setting permutations tried
	Skipped int       // number of trials that failed
}

// MaxSignal tries every permutation of the phase settings of the given mode and
// returns the one that yields the highest signal. Permutations for which the
// ring fails are skipped. If they all fail, MaxSignal returns ErrNoResult.
//
// When several permutations yield the same highest signal, the first one found
// is returned.
//
// The Trace option, if set, applies to every trial.
func MaxSignal(prog vm.Memory, mode Mode, opts ...Option) (res Result, err error) {
	c, err := newConfig(opts)
	if err != nil {
		return res, err
	}
	found := false
	Permutations(mode.Domain(), func(p []vm.Cell) bool {
		res.Trials++
		signal, err := Run(prog, p, opts...)
		if err != nil {
			res.Skipped++
			c.log.Debug("trial skipped", "phases", p, "err", err)
			return true
		}
		if !found || signal > res.Signal {
			found = true
			res.Signal = signal
			res.Phases = slices.Clone(p)
		}
		return true
	})
	if !found {
		return res, errors.Wrapf(ErrNoResult, "%s mode, %d trials", mode, res.Trials)
	}
	c.log.Info("search done", "mode", mode, "signal", res.Signal, "phases", res.Phases, "skipped", res.Skipped)
	return res, nil
}
