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

package amp_test

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
)

type C = []vm.Cell

var singlePass = [...]struct {
	prog   vm.Memory
	signal vm.Cell
	phases C
}{
	{
		vm.Memory{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
		43210, C{4, 3, 2, 1, 0},
	},
	{
		vm.Memory{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
		54321, C{0, 1, 2, 3, 4},
	},
	{
		vm.Memory{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
			1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
		65210, C{1, 0, 4, 3, 2},
	},
}

var feedback = [...]struct {
	prog   vm.Memory
	signal vm.Cell
	phases C
}{
	{
		vm.Memory{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
			27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
		139629729, C{9, 8, 7, 6, 5},
	},
	{
		vm.Memory{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
			-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53,
			55, 53, 4, 53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
		18216, C{9, 7, 8, 5, 6},
	},
}

func TestMode_Domain(t *testing.T) {
	assert.Equal(t, C{0, 1, 2, 3, 4}, amp.SinglePass.Domain())
	assert.Equal(t, C{5, 6, 7, 8, 9}, amp.Feedback.Domain())
}

func TestPermutations(t *testing.T) {
	domain := amp.Feedback.Domain()
	seen := make(map[string]bool)
	amp.Permutations(domain, func(p []vm.Cell) bool {
		require.Len(t, p, len(domain))
		assert.ElementsMatch(t, domain, p)
		key := fmt.Sprint(p)
		assert.False(t, seen[key], "duplicate permutation %v", p)
		seen[key] = true
		return true
	})
	assert.Len(t, seen, 120)
	assert.Equal(t, C{5, 6, 7, 8, 9}, domain, "domain must not be modified")
}

func TestPermutations_small(t *testing.T) {
	for n, want := range []int{1, 1, 2, 6, 24} {
		d := make([]vm.Cell, n)
		for k := range d {
			d[k] = vm.Cell(k)
		}
		count := 0
		amp.Permutations(d, func([]vm.Cell) bool { count++; return true })
		assert.Equal(t, want, count, "n=%d", n)
	}
}

func TestPermutations_stop(t *testing.T) {
	count := 0
	amp.Permutations(amp.SinglePass.Domain(), func([]vm.Cell) bool {
		count++
		return count < 7
	})
	assert.Equal(t, 7, count)
}

func TestRun_singlePass(t *testing.T) {
	for k, test := range singlePass {
		signal, err := amp.Run(test.prog, test.phases)
		require.NoError(t, err, "program %d", k)
		assert.Equal(t, test.signal, signal, "program %d", k)
	}
}

func TestRun_feedback(t *testing.T) {
	for k, test := range feedback {
		var steps []amp.Step
		r, err := amp.NewRing(test.prog, test.phases, amp.Trace(func(s amp.Step) { steps = append(steps, s) }))
		require.NoError(t, err)
		signal, err := r.Run()
		require.NoError(t, err, "program %d", k)
		assert.Equal(t, test.signal, signal, "program %d", k)

		for a := 0; a < amp.Amplifiers; a++ {
			assert.Equal(t, vm.Halted, r.Amp(a).State(), "program %d, amplifier %d", k, a)
		}
		// strict ring order, each amp fed the previous one's signal
		require.True(t, len(steps) > amp.Amplifiers)
		for n, s := range steps {
			assert.Equal(t, n%amp.Amplifiers, s.Amp)
			if n == 0 {
				assert.Equal(t, vm.Cell(0), s.Signal)
			} else {
				prev := steps[n-1].Output
				assert.Equal(t, prev[len(prev)-1], s.Signal)
			}
		}
		last := steps[len(steps)-1]
		assert.Equal(t, amp.Amplifiers-1, last.Amp)
		assert.Equal(t, vm.Halted, last.State)
		assert.Equal(t, signal, last.Output[len(last.Output)-1])
	}
}

func TestNewRing_phases(t *testing.T) {
	prog := singlePass[0].prog
	for _, phases := range []C{
		nil,
		{0, 1, 2, 3},
		{0, 1, 2, 3, 4, 5},
		{0, 1, 2, 3, 3},
	} {
		_, err := amp.NewRing(prog, phases)
		assert.True(t, errors.Is(err, amp.ErrPhases), "%v: %v", phases, err)
	}

	phases := C{4, 3, 2, 1, 0}
	r, err := amp.NewRing(prog, phases)
	require.NoError(t, err)
	phases[0] = 9
	assert.Equal(t, C{4, 3, 2, 1, 0}, r.Phases(), "ring must keep its own copy of the phases")
}

func TestMaxSignal(t *testing.T) {
	for k, test := range singlePass {
		res, err := amp.MaxSignal(test.prog, amp.SinglePass)
		require.NoError(t, err, "program %d", k)
		assert.Equal(t, test.signal, res.Signal)
		assert.Equal(t, test.phases, res.Phases)
		assert.Equal(t, 120, res.Trials)
		assert.Equal(t, 0, res.Skipped)
	}
	for k, test := range feedback {
		res, err := amp.MaxSignal(test.prog, amp.Feedback)
		require.NoError(t, err, "program %d", k)
		assert.Equal(t, test.signal, res.Signal)
		assert.Equal(t, test.phases, res.Phases)
		assert.Equal(t, 120, res.Trials)
	}
}

func TestMaxSignal_trialsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	_, err := amp.MaxSignal(singlePass[0].prog, amp.SinglePass, amp.Trace(func(s amp.Step) {
		if s.Amp != 0 {
			return
		}
		// the first amp's output is 10*0+phase for this program
		key := fmt.Sprint(s.Phase, s.Output)
		seen[key] = true
	}))
	require.NoError(t, err)
	assert.Len(t, seen, 5)
}

func TestMaxSignal_failures(t *testing.T) {
	// outputs phase + signal, fails if that sum is 0. Only the first amplifier
	// gets a 0 signal, so trials where it has phase 0 fail.
	prog := make(vm.Memory, 33)
	copy(prog, vm.Memory{3, 30, 3, 31, 1, 30, 31, 32, 1005, 32, 12, 42, 4, 32, 99})
	res, err := amp.MaxSignal(prog, amp.SinglePass)
	require.NoError(t, err)
	assert.Equal(t, 120, res.Trials)
	assert.Equal(t, 24, res.Skipped)
	assert.Equal(t, vm.Cell(10), res.Signal)
	assert.NotEqual(t, vm.Cell(0), res.Phases[0])

	_, err = amp.MaxSignal(vm.Memory{42}, amp.Feedback)
	assert.True(t, errors.Is(err, amp.ErrNoResult))
	var de *vm.DecodeError
	assert.False(t, errors.As(err, &de), "search failure carries no diagnostic payload")
}

func TestRun_noSignal(t *testing.T) {
	// reads the phase, then halts without output.
	_, err := amp.Run(vm.Memory{3, 0, 99}, amp.SinglePass.Domain())
	assert.True(t, errors.Is(err, amp.ErrNoSignal))
}

func BenchmarkMaxSignal(b *testing.B) {
	for n := 0; n < b.N; n++ {
		amp.MaxSignal(feedback[1].prog, amp.Feedback)
	}
}
