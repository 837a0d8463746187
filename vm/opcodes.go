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
	"strings"
)

// Opcode is the operation encoded in the two low-order decimal digits of an
// instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpIn   Opcode = 3
	OpOut  Opcode = 4
	OpJnz  Opcode = 5
	OpJz   Opcode = 6
	OpLt   Opcode = 7
	OpEq   Opcode = 8
	OpHalt Opcode = 99
)

type opInfo struct {
	name   string
	params int
	dst    int // index of the write target, -1 if none
}

var opcodes = [...]opInfo{
	OpAdd:  {"add", 3, 2},
	OpMul:  {"mul", 3, 2},
	OpIn:   {"in", 1, 0},
	OpOut:  {"out", 1, -1},
	OpJnz:  {"jnz", 2, -1},
	OpJz:   {"jz", 2, -1},
	OpLt:   {"lt", 3, 2},
	OpEq:   {"eq", 3, 2},
	OpHalt: {"hlt", 0, -1},
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for i, v := range opcodes {
		if v.name != "" {
			opcodeIndex[v.name] = Opcode(i)
		}
	}
}

// Valid returns true if op is one of the defined opcodes.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

func (op Opcode) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Opcode(%d)", Cell(op))
	}
	return opcodes[op].name
}

// Params returns the number of parameters taken by op.
func (op Opcode) Params() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].params
}

// Width returns the number of cells occupied by an op instruction, including
// the instruction word.
func (op Opcode) Width() int {
	return op.Params() + 1
}

// Dst returns the index of the parameter that op writes to, or -1 if op does
// not write to memory.
func (op Opcode) Dst() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].dst
}

// LookupOpcode returns the opcode for the given assembler mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[strings.ToLower(name)]
	return op, ok
}

// Mode is a parameter addressing mode.
type Mode int

// Addressing modes.
const (
	ModePosition Mode = iota
	ModeImmediate
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Encode returns the instruction word for op with the given parameter modes.
// Missing modes default to ModePosition.
func Encode(op Opcode, modes ...Mode) Cell {
	w := Cell(op)
	m := Cell(100)
	for _, mode := range modes {
		w += Cell(mode) * m
		m *= 10
	}
	return w
}
