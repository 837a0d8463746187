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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	Instructions take their operands in the cells following the instruction
//	word. "a", "b" and "t" are read operands, "c" is a write target.
//
//	opcode	asm	operands	description
//	------	---	--------	-----------------------------------------
//	1	add	a b c		c = a + b
//	2	mul	a b c		c = a * b
//	3	in	c		c = next input value
//	4	out	a		output a
//	5	jnz	a t		jump to t if a != 0
//	6	jz	a t		jump to t if a == 0
//	7	lt	a b c		c = 1 if a < b, 0 otherwise
//	8	eq	a b c		c = 1 if a == b, 0 otherwise
//	99	hlt			halt
//
// Operands:
//
// An operand is an integer literal (any syntax accepted by strconv.ParseInt
// with base 0), the name of a constant, or the name of a label. Operands are
// position mode by default: the value is an address. Prefix an operand with
// '#' to make it an immediate value; the parameter mode digits of the
// instruction word are set accordingly:
//
//	add 9 #10 9	( compiles as 1001 9 10 9 )
//	jnz #1 #loop	( jump to label loop )
//
// Write targets (the "c" operands above) cannot be immediate.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space. That is:
//
//	( this is a valid comment )
//	(this is not)
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// operands anywhere (without the ':' prefix). Forward references are ok. A
// label or constant name starts with a letter or underscore, followed by
// letters, digits or underscores. Mnemonics are reserved.
//
//	:loop	in x
//		jnz x #loop
//		hlt
//	:x	.dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer or named constant.
//
//	.org <value>
//
// Will place the next instruction at the address specified by the given integer
// literal or named constant.
//
//	.dat <value> ...
//
// Will compile the specified values as-is. All operands following .dat, up to
// the next mnemonic, directive, label definition or comment are compiled.
package asm
