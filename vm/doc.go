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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a sequence of signed integers that doubles as the
// machine's memory. Each instruction word holds an opcode in its two low-order
// decimal digits and one addressing mode digit per parameter above that: the
// hundreds digit is the mode of the first parameter, the thousands digit the
// mode of the second, and so on. Mode 0 (position) reads or writes the cell
// at the address given by the parameter; mode 1 (immediate) uses the
// parameter itself and is not allowed for write targets.
//
//	opcode	asm	params	description
//	------	---	------	--------------------------------------------------
//	1	add	a b c	c = a + b
//	2	mul	a b c	c = a * b
//	3	in	c	c = next input value, suspend if none is available
//	4	out	a	output a
//	5	jnz	a t	jump to t if a != 0
//	6	jz	a t	jump to t if a == 0
//	7	lt	a b c	c = 1 if a < b else 0
//	8	eq	a b c	c = 1 if a == b else 0
//	99	hlt		halt
//
// Instructions are decoded afresh from memory on every step, so programs may
// modify their own code.
//
// An Instance does not block on input. When an in instruction finds the input
// queue empty, Resume returns with the instance in the Suspended state and
// the PC still pointing at that instruction. Feeding more input and calling
// Resume again continues from there. This lets a single controlling loop
// interleave several instances cooperatively (see package amp).
package vm
