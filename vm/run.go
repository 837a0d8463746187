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
	"context"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/internal/ici"
)

func (i *Instance) drain() []Cell {
	out := i.output
	i.output = nil
	return out
}

func (i *Instance) fail(err error) ([]Cell, error) {
	i.state = Failed
	i.err = errors.Wrapf(err, "pc=%d", i.PC)
	i.log.Debug("failed", "pc", i.PC, "err", err)
	return i.drain(), i.err
}

func (i *Instance) store(dst Param, v Cell) error {
	return i.mem.Store(dst.Value, v)
}

func (i *Instance) load2(a, b Param) (x, y Cell, err error) {
	if x, err = a.Load(i.mem); err != nil {
		return
	}
	y, err = b.Load(i.mem)
	return
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Resume starts or resumes execution of the VM. It runs until the program
// halts, fails, or tries to read from an empty input queue, and returns the
// values output since the previous call to Resume.
//
// Upon return, the State method tells which of the three happened. When
// Suspended, the PC points to the in instruction that found the input queue
// empty; it will be executed again by the next call to Resume, usually after
// some input has been queued with Feed.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error, the instance will be in the Failed state and err will be either a
// *DecodeError, *AddressError or *WriteTargetError wrapped with PC
// information. Values output before the failure are returned along with the
// error.
//
// Calling Resume on a Halted or Failed instance returns ErrNotResumable.
func (i *Instance) Resume() ([]Cell, error) {
	if i.state == Halted || i.state == Failed {
		return nil, errors.Wrapf(ErrNotResumable, "instance %v", i.state)
	}
	i.state = Running
	trace := i.log.Enabled(context.Background(), ici.LevelTrace)
	for {
		ins, err := Decode(i.mem, i.PC)
		if err != nil {
			return i.fail(err)
		}
		if trace {
			i.log.Log(context.Background(), ici.LevelTrace, "exec", "pc", i.PC, "ins", ins)
		}
		switch ins := ins.(type) {
		case Halt:
			i.state = Halted
			i.log.Debug("halted", "pc", i.PC, "instructions", i.insCount)
			return i.drain(), nil
		case Add:
			a, b, err := i.load2(ins.A, ins.B)
			if err == nil {
				err = i.store(ins.Dst, a+b)
			}
			if err != nil {
				return i.fail(err)
			}
			i.PC += 4
		case Mul:
			a, b, err := i.load2(ins.A, ins.B)
			if err == nil {
				err = i.store(ins.Dst, a*b)
			}
			if err != nil {
				return i.fail(err)
			}
			i.PC += 4
		case Input:
			if len(i.input) == 0 {
				i.state = Suspended
				i.log.Debug("suspended", "pc", i.PC, "instructions", i.insCount)
				return i.drain(), nil
			}
			if err := i.store(ins.Dst, i.input[0]); err != nil {
				return i.fail(err)
			}
			i.input = i.input[1:]
			i.PC += 2
		case Output:
			v, err := ins.Src.Load(i.mem)
			if err != nil {
				return i.fail(err)
			}
			i.output = append(i.output, v)
			i.PC += 2
		case JumpIfTrue:
			c, t, err := i.load2(ins.Cond, ins.Target)
			if err != nil {
				return i.fail(err)
			}
			if c != 0 {
				i.PC = int(t)
			} else {
				i.PC += 3
			}
		case JumpIfFalse:
			c, t, err := i.load2(ins.Cond, ins.Target)
			if err != nil {
				return i.fail(err)
			}
			if c == 0 {
				i.PC = int(t)
			} else {
				i.PC += 3
			}
		case LessThan:
			a, b, err := i.load2(ins.A, ins.B)
			if err == nil {
				err = i.store(ins.Dst, b2c(a < b))
			}
			if err != nil {
				return i.fail(err)
			}
			i.PC += 4
		case Equals:
			a, b, err := i.load2(ins.A, ins.B)
			if err == nil {
				err = i.store(ins.Dst, b2c(a == b))
			}
			if err != nil {
				return i.fail(err)
			}
			i.PC += 4
		default:
			return i.fail(errors.Errorf("unhandled instruction %T", ins))
		}
		i.insCount++
	}
}
