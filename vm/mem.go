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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/db47h/intcode/internal/ici"
)

// Memory is the cell array a program runs in.
type Memory []Cell

// Load returns the value at address addr.
func (m Memory) Load(addr Cell) (Cell, error) {
	if addr < 0 || addr >= Cell(len(m)) {
		return 0, &AddressError{addr, len(m)}
	}
	return m[addr], nil
}

// Store sets the value at address addr.
func (m Memory) Store(addr, v Cell) error {
	if addr < 0 || addr >= Cell(len(m)) {
		return &AddressError{addr, len(m)}
	}
	m[addr] = v
	return nil
}

// Clone returns an independent copy of m.
func (m Memory) Clone() Memory {
	return slices.Clone(m)
}

// Restore returns a copy of m with cells 1 and 2 set to noun and verb.
func (m Memory) Restore(noun, verb Cell) (Memory, error) {
	if len(m) < 3 {
		return nil, errors.Wrap(&AddressError{2, len(m)}, "restore")
	}
	r := m.Clone()
	r[1], r[2] = noun, verb
	return r, nil
}

// WriteTo writes m to w in the same comma separated format read by Parse.
func (m Memory) WriteTo(w io.Writer) (n int64, err error) {
	ew := ici.NewErrWriter(w)
	b := make([]byte, 0, 24)
	for i, v := range m {
		b = b[:0]
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		k, _ := ew.Write(b)
		n += int64(k)
	}
	return n, ew.Err
}

// Parse reads a program from r. Values are separated by commas and/or new
// lines. White space around values and empty fields are ignored.
func Parse(r io.Reader) (Memory, error) {
	var (
		mem  Memory
		line int
	)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for s.Scan() {
		line++
		for col, f := range strings.Split(s.Text(), ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, field %d", line, col+1)
			}
			mem = append(mem, Cell(v))
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return mem, nil
}

// LoadFile loads a program from file fileName.
func LoadFile(fileName string) (Memory, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	mem, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return mem, nil
}
