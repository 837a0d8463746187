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

// Package amp runs chains of Intcode amplifiers.
//
// An amplifier chain is a ring of VM instances running copies of the same
// program. Each instance first reads its phase setting, then a signal. The
// first amplifier gets signal 0, and each amplifier's output becomes the next
// one's input signal. In feedback mode the last amplifier's output is fed back
// into the first one, and the ring keeps going until all amplifiers halt.
//
// There is no parallelism involved: a Ring resumes its instances one at a time,
// in ring order, handing a single signal value from one to the next.
package amp

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// Amplifiers is the number of amplifiers in a chain.
const Amplifiers = 5

var (
	// ErrPhases is returned when building a Ring with an invalid phase
	// setting sequence.
	ErrPhases = errors.New("invalid phase settings")
	// ErrNoSignal is returned when an amplifier yields without output.
	ErrNoSignal = errors.New("no output signal")
	// ErrNoResult is returned by MaxSignal when no phase setting sequence
	// leads to a successful run.
	ErrNoResult = errors.New("no result")
)

// Mode selects the phase setting domain.
type Mode int

// Amplifier chain modes.
const (
	SinglePass Mode = iota // phases 0 to 4
	Feedback               // phases 5 to 9
)

func (m Mode) String() string {
	switch m {
	case SinglePass:
		return "single-pass"
	case Feedback:
		return "feedback"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Domain returns the phase settings available in mode m, in increasing order.
func (m Mode) Domain() []vm.Cell {
	base := vm.Cell(0)
	if m == Feedback {
		base = Amplifiers
	}
	d := make([]vm.Cell, Amplifiers)
	for k := range d {
		d[k] = base + vm.Cell(k)
	}
	return d
}
