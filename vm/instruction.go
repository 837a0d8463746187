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
	"strconv"
	"strings"
)

// Param is a decoded instruction parameter. The address of a position mode
// parameter is only dereferenced when the instruction executes.
type Param struct {
	Mode  Mode
	Value Cell
}

// Pos returns a position mode parameter.
func Pos(addr Cell) Param { return Param{ModePosition, addr} }

// Imm returns an immediate mode parameter.
func Imm(v Cell) Param { return Param{ModeImmediate, v} }

// Load returns the parameter's value, reading mem for position mode
// parameters.
func (p Param) Load(mem Memory) (Cell, error) {
	if p.Mode == ModeImmediate {
		return p.Value, nil
	}
	return mem.Load(p.Value)
}

func (p Param) String() string {
	if p.Mode == ModeImmediate {
		return "#" + strconv.FormatInt(int64(p.Value), 10)
	}
	return strconv.FormatInt(int64(p.Value), 10)
}

// Instruction is a decoded instruction. The set of implementations is closed:
// Halt, Add, Mul, Input, Output, JumpIfTrue, JumpIfFalse, LessThan and Equals.
type Instruction interface {
	Opcode() Opcode
	fmt.Stringer
	instruction()
}

// Halt stops the VM.
type Halt struct{}

// Add stores A + B at Dst.
type Add struct{ A, B, Dst Param }

// Mul stores A * B at Dst.
type Mul struct{ A, B, Dst Param }

// Input stores the next input value at Dst.
type Input struct{ Dst Param }

// Output emits the value of Src.
type Output struct{ Src Param }

// JumpIfTrue jumps to Target if Cond is not zero.
type JumpIfTrue struct{ Cond, Target Param }

// JumpIfFalse jumps to Target if Cond is zero.
type JumpIfFalse struct{ Cond, Target Param }

// LessThan stores 1 at Dst if A < B, 0 otherwise.
type LessThan struct{ A, B, Dst Param }

// Equals stores 1 at Dst if A == B, 0 otherwise.
type Equals struct{ A, B, Dst Param }

func (Halt) Opcode() Opcode        { return OpHalt }
func (Add) Opcode() Opcode         { return OpAdd }
func (Mul) Opcode() Opcode         { return OpMul }
func (Input) Opcode() Opcode       { return OpIn }
func (Output) Opcode() Opcode      { return OpOut }
func (JumpIfTrue) Opcode() Opcode  { return OpJnz }
func (JumpIfFalse) Opcode() Opcode { return OpJz }
func (LessThan) Opcode() Opcode    { return OpLt }
func (Equals) Opcode() Opcode      { return OpEq }

func (Halt) instruction()        {}
func (Add) instruction()         {}
func (Mul) instruction()         {}
func (Input) instruction()       {}
func (Output) instruction()      {}
func (JumpIfTrue) instruction()  {}
func (JumpIfFalse) instruction() {}
func (LessThan) instruction()    {}
func (Equals) instruction()      {}

func format(op Opcode, params ...Param) string {
	var b strings.Builder
	b.WriteString(op.String())
	for _, p := range params {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

func (i Halt) String() string        { return format(OpHalt) }
func (i Add) String() string         { return format(OpAdd, i.A, i.B, i.Dst) }
func (i Mul) String() string         { return format(OpMul, i.A, i.B, i.Dst) }
func (i Input) String() string       { return format(OpIn, i.Dst) }
func (i Output) String() string      { return format(OpOut, i.Src) }
func (i JumpIfTrue) String() string  { return format(OpJnz, i.Cond, i.Target) }
func (i JumpIfFalse) String() string { return format(OpJz, i.Cond, i.Target) }
func (i LessThan) String() string    { return format(OpLt, i.A, i.B, i.Dst) }
func (i Equals) String() string      { return format(OpEq, i.A, i.B, i.Dst) }

// decoder resolves the parameters of the instruction at pc.
type decoder struct {
	mem  Memory
	pc   int
	word Cell
	op   Opcode
}

func (d *decoder) errorf(format string, args ...interface{}) error {
	return &DecodeError{d.pc, d.word, fmt.Sprintf(format, args...)}
}

// mode returns the addressing mode of parameter idx.
func (d *decoder) mode(idx int) (Mode, error) {
	m := d.word / 100
	for k := idx; k > 0; k-- {
		m /= 10
	}
	switch mode := Mode(m % 10); mode {
	case ModePosition, ModeImmediate:
		return mode, nil
	default:
		return 0, d.errorf("unknown addressing mode %d for parameter %d", int(mode), idx)
	}
}

func (d *decoder) param(idx int) (Param, error) {
	mode, err := d.mode(idx)
	if err != nil {
		return Param{}, err
	}
	at := d.pc + 1 + idx
	if at >= len(d.mem) {
		return Param{}, d.errorf("missing parameter %d", idx)
	}
	return Param{mode, d.mem[at]}, nil
}

func (d *decoder) dst(idx int) (Param, error) {
	p, err := d.param(idx)
	if err != nil {
		return p, err
	}
	if p.Mode != ModePosition {
		return Param{}, &WriteTargetError{d.pc, d.op, idx}
	}
	return p, nil
}

// params resolves n parameters, left to right. The last one is a write target
// if the opcode writes to memory.
func (d *decoder) params(n int) (p [3]Param, err error) {
	dst := d.op.Dst()
	for idx := 0; idx < n; idx++ {
		if idx == dst {
			p[idx], err = d.dst(idx)
		} else {
			p[idx], err = d.param(idx)
		}
		if err != nil {
			return p, err
		}
	}
	return p, nil
}

// Decode decodes the instruction at address pc in mem. Decode has no side
// effects: position mode parameters are not dereferenced.
func Decode(mem Memory, pc int) (Instruction, error) {
	if pc < 0 || pc >= len(mem) {
		return nil, &AddressError{Cell(pc), len(mem)}
	}
	d := decoder{mem: mem, pc: pc, word: mem[pc]}
	if d.word < 0 {
		return nil, d.errorf("negative instruction word")
	}
	d.op = Opcode(d.word % 100)
	if !d.op.Valid() {
		return nil, d.errorf("unknown opcode %d", Cell(d.op))
	}
	p, err := d.params(d.op.Params())
	if err != nil {
		return nil, err
	}
	switch d.op {
	case OpAdd:
		return Add{p[0], p[1], p[2]}, nil
	case OpMul:
		return Mul{p[0], p[1], p[2]}, nil
	case OpIn:
		return Input{p[0]}, nil
	case OpOut:
		return Output{p[0]}, nil
	case OpJnz:
		return JumpIfTrue{p[0], p[1]}, nil
	case OpJz:
		return JumpIfFalse{p[0], p[1]}, nil
	case OpLt:
		return LessThan{p[0], p[1], p[2]}, nil
	case OpEq:
		return Equals{p[0], p[1], p[2]}, nil
	default:
		return Halt{}, nil
	}
}
