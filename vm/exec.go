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

package vm

import "github.com/pkg/errors"

// Exec runs the program in mem to completion with the given input values. It
// returns the output values and the final state of the VM memory. mem is left
// untouched.
//
// If the program requests more input than provided, Exec returns
// ErrInputStarved along with the output produced so far.
func Exec(mem Memory, input ...Cell) (out []Cell, final Memory, err error) {
	i, err := New(mem, Inputs(input...))
	if err != nil {
		return nil, nil, err
	}
	out, err = i.Resume()
	if err == nil && i.State() == Suspended {
		err = errors.Wrapf(ErrInputStarved, "pc=%d", i.PC)
	}
	return out, i.Mem(), err
}

// Diagnose runs a diagnostic program with the given system ID as its only
// input. The program is expected to output one value per diagnostic test,
// followed by a diagnostic code. All test values must be 0, otherwise a
// *DiagnosticError for the first failing test is returned.
func Diagnose(mem Memory, systemID Cell) (code Cell, err error) {
	out, _, err := Exec(mem, systemID)
	if err != nil {
		return 0, errors.Wrap(err, "diagnostic program")
	}
	if len(out) == 0 {
		return 0, ErrNoOutput
	}
	last := len(out) - 1
	for k, v := range out[:last] {
		if v != 0 {
			return 0, &DiagnosticError{k, v}
		}
	}
	return out[last], nil
}

// FindNounVerb searches for the noun and verb, both in the range [0, 99], that
// make the program in mem leave target in cell 0 once halted. Values are
// searched in order, noun first. Runs that fail are ignored. If no pair is
// found, the returned error is ErrNotFound.
func FindNounVerb(mem Memory, target Cell) (noun, verb Cell, err error) {
	for noun = 0; noun <= 99; noun++ {
		for verb = 0; verb <= 99; verb++ {
			r, err := mem.Restore(noun, verb)
			if err != nil {
				return 0, 0, err
			}
			_, final, err := Exec(r)
			if err == nil && final[0] == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, errors.Wrapf(ErrNotFound, "target %d", target)
}
