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

	"github.com/pkg/errors"
)

var (
	// ErrNotResumable is returned when calling Resume on a halted or failed
	// instance.
	ErrNotResumable = errors.New("instance not resumable")
	// ErrInputStarved is returned by one-shot helpers like Exec when the
	// program asks for more input than was supplied.
	ErrInputStarved = errors.New("input starved")
	// ErrNoOutput is returned by Diagnose when the program halts without
	// output.
	ErrNoOutput = errors.New("no output")
	// ErrNotFound is returned by FindNounVerb when no noun/verb pair yields
	// the requested value.
	ErrNotFound = errors.New("not found")
)

// DecodeError reports an instruction that could not be decoded: unknown opcode,
// unknown addressing mode or missing parameters.
type DecodeError struct {
	PC   int
	Word Cell
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at %d (%d): %s", e.PC, e.Word, e.Msg)
}

// AddressError reports an access outside of memory bounds.
type AddressError struct {
	Addr Cell
	Size int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address %d out of bounds [0, %d)", e.Addr, e.Size)
}

// WriteTargetError reports an instruction whose destination parameter is in
// immediate mode.
type WriteTargetError struct {
	PC    int
	Op    Opcode
	Param int
}

func (e *WriteTargetError) Error() string {
	return fmt.Sprintf("%v at %d: immediate mode write target (parameter %d)", e.Op, e.PC, e.Param)
}

// DiagnosticError is returned by Diagnose when one of the diagnostic tests
// reports a non-zero value.
type DiagnosticError struct {
	Test  int
	Value Cell
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("diagnostic test %d failed: %d", e.Test, e.Value)
}
