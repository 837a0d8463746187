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
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// Step describes the outcome of one resume of an amplifier.
type Step struct {
	Amp    int       // position in the ring
	Phase  vm.Cell   // phase setting of the amplifier
	Signal vm.Cell   // signal fed before resuming
	Output []vm.Cell // values output during this step
	State  vm.State  // amplifier state after the step
}

type config struct {
	log   *slog.Logger
	trace func(Step)
}

// Option configures a Ring or a search.
type Option func(*config) error

// Logger sets the logger. The amplifier instances log through it with an
// "amp" attribute.
func Logger(l *slog.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return errors.New("nil logger")
		}
		c.log = l
		return nil
	}
}

// Trace sets a function called after each amplifier step.
func Trace(fn func(Step)) Option {
	return func(c *config) error {
		c.trace = fn
		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{log: ici.Discard()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Ring is a chain of amplifiers.
type Ring struct {
	config
	phases []vm.Cell
	amps   []*vm.Instance
}

func checkPhases(phases []vm.Cell) error {
	if len(phases) != Amplifiers {
		return errors.Wrapf(ErrPhases, "need %d phases, got %d", Amplifiers, len(phases))
	}
	for k, p := range phases {
		if slices.Contains(phases[:k], p) {
			return errors.Wrapf(ErrPhases, "duplicate phase %d", p)
		}
	}
	return nil
}

// NewRing returns a new amplifier ring running prog, with amplifier k using
// phases[k] as its phase setting. Each amplifier gets its own copy of prog.
// phases must hold Amplifiers distinct values.
func NewRing(prog vm.Memory, phases []vm.Cell, opts ...Option) (*Ring, error) {
	if err := checkPhases(phases); err != nil {
		return nil, err
	}
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	r := &Ring{
		config: *c,
		phases: slices.Clone(phases),
		amps:   make([]*vm.Instance, len(phases)),
	}
	for k, p := range phases {
		r.amps[k], err = vm.New(prog, vm.Inputs(p), vm.Logger(r.log.With("amp", k)))
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Phases returns the phase settings of the ring.
func (r *Ring) Phases() []vm.Cell {
	return r.phases
}

// Amp returns the VM instance of amplifier k.
func (r *Ring) Amp(k int) *vm.Instance {
	return r.amps[k]
}

// Run runs the ring until all amplifiers have halted and returns the last
// signal output by the last amplifier to halt.
//
// Amplifiers are resumed in ring order, starting with the first one, which
// receives a signal of 0. Each amplifier gets the latest signal value before
// being resumed; the last value it outputs becomes the next signal. An
// amplifier that suspends waiting for input goes back in the queue, one that
// halts is done. Run fails if any amplifier fails or yields without output.
func (r *Ring) Run() (vm.Cell, error) {
	queue := make([]int, len(r.amps))
	for k := range queue {
		queue[k] = k
	}
	var signal vm.Cell
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		a := r.amps[k]
		a.Feed(signal)
		in := signal
		out, err := a.Resume()
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", k)
		}
		if r.trace != nil {
			r.trace(Step{k, r.phases[k], in, out, a.State()})
		}
		if len(out) == 0 {
			return 0, errors.Wrapf(ErrNoSignal, "amplifier %d", k)
		}
		signal = out[len(out)-1]
		if a.State() == vm.Suspended {
			queue = append(queue, k)
		}
	}
	r.log.Debug("ring done", "phases", r.phases, "signal", signal)
	return signal, nil
}

// Run builds a ring running prog with the given phase settings, runs it and
// returns the final signal.
func Run(prog vm.Memory, phases []vm.Cell, opts ...Option) (vm.Cell, error) {
	r, err := NewRing(prog, phases, opts...)
	if err != nil {
		return 0, err
	}
	return r.Run()
}
