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

package asm

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting memory image and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Memory, error) {
	p := newParser()
	return p.Parse(name, r)
}

// Disassemble writes a disassembly of the instruction at position pc in mem to
// the specified io.Writer and returns the position of the next instruction and
// any write error.
//
// Cells that do not decode to a valid instruction are written as a .dat
// directive, and so are instruction words with mode digits that no parameter
// uses (like 1004 for out), so that the output assembles back to the same
// memory image.
func Disassemble(mem vm.Memory, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(mem) {
		return pc, errors.Wrap(&vm.AddressError{Addr: vm.Cell(pc), Size: len(mem)}, "disassemble")
	}
	ew := ici.NewErrWriter(w)
	ins, err := vm.Decode(mem, pc)
	if err != nil || vm.Encode(ins.Opcode(), modes(ins)...) != mem[pc] {
		fmt.Fprintf(ew, ".dat %d", mem[pc])
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.String())
	return pc + ins.Opcode().Width(), ew.Err
}

func modes(ins vm.Instruction) []vm.Mode {
	var p []vm.Param
	switch ins := ins.(type) {
	case vm.Add:
		p = []vm.Param{ins.A, ins.B, ins.Dst}
	case vm.Mul:
		p = []vm.Param{ins.A, ins.B, ins.Dst}
	case vm.Input:
		p = []vm.Param{ins.Dst}
	case vm.Output:
		p = []vm.Param{ins.Src}
	case vm.JumpIfTrue:
		p = []vm.Param{ins.Cond, ins.Target}
	case vm.JumpIfFalse:
		p = []vm.Param{ins.Cond, ins.Target}
	case vm.LessThan:
		p = []vm.Param{ins.A, ins.B, ins.Dst}
	case vm.Equals:
		p = []vm.Param{ins.A, ins.B, ins.Dst}
	}
	m := make([]vm.Mode, len(p))
	for k := range p {
		m[k] = p[k].Mode
	}
	return m
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem vm.Memory, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "%6d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
