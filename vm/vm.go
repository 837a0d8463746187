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

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/internal/ici"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// State is the execution state of an Instance.
type State int

// Instance states.
const (
	Running   State = iota // ready to run or running
	Suspended              // waiting for input
	Halted                 // executed a hlt instruction
	Failed                 // stopped on a decode or address error
)

var stateNames = [...]string{"running", "suspended", "halted", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int // Program Counter (aka. Instruction Pointer)
	mem      Memory
	input    []Cell
	output   []Cell
	state    State
	err      error
	insCount int64
	log      *slog.Logger
}

// Option interface
type Option func(*Instance) error

// Inputs appends the given values to the input queue.
func Inputs(v ...Cell) Option {
	return func(i *Instance) error {
		i.Feed(v...)
		return nil
	}
}

// Logger sets the logger used to report state changes. Individual
// instructions are logged at level ici.LevelTrace. The default is to discard
// all logs.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance running the program in mem.
//
// The instance works on its own copy of mem: changes made by the program are
// not visible in mem, nor in any other instance created from it. Use the Mem
// method to access the instance's memory.
//
// Options will be set by calling SetOptions.
func New(mem Memory, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: mem.Clone(),
		log: ici.Discard(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Mem returns the instance's memory.
func (i *Instance) Mem() Memory {
	return i.mem
}

// State returns the current execution state.
func (i *Instance) State() State {
	return i.state
}

// Err returns the error that caused the instance to fail, if any.
func (i *Instance) Err() error {
	return i.err
}

// Feed appends values to the input queue.
func (i *Instance) Feed(v ...Cell) {
	i.input = append(i.input, v...)
}

// Pending returns the number of values in the input queue.
func (i *Instance) Pending() int {
	return len(i.input)
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the instance state and memory to the specified io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	fmt.Fprintf(ew, "pc=%d state=%v instructions=%d\n", i.PC, i.state, i.insCount)
	i.mem.WriteTo(ew)
	ew.Write([]byte{'\n'})
	return ew.Err
}
