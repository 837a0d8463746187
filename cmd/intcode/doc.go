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

// Command intcode runs Intcode programs and amplifier chains.
//
// Programs are read from text files of comma or newline separated integers.
// Files with a .s or .asm extension are assembled first (see package asm), and
// the file name "-" reads the program from standard input.
//
// Usage:
//
//	intcode [--log-level level] [--debug] command [flags] FILE
//
// Commands:
//
//	run       run a program, optionally prompting for input (--interactive)
//	amp       run a chain of five amplifiers or search for the best phases
//	diag      run a diagnostic program with a system ID
//	nounverb  search the noun and verb that yield a target value
//	asm       assemble a source file
//	disasm    disassemble a program
//
// For example, to find the best phase settings for a feedback loop and print
// the schedule of the winning run:
//
//	intcode amp --feedback --trace amplifier.txt
//
// Log records go to standard error. The trace level logs every instruction
// executed.
package main
