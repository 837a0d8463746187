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
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

// AsmError is a single assembly error.
type AsmError struct {
	Pos scanner.Position
	Msg string
}

func (e AsmError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm encapsulates a list of assembly errors.
type ErrAsm []AsmError

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

// isName returns true if s is a valid label or constant name.
func isName(s string) bool {
	for i, r := range s {
		if !(r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}

type token struct {
	text string
	pos  scanner.Position
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type constant struct {
	pos   scanner.Position
	value vm.Cell
}

type parser struct {
	mem    vm.Memory
	pc     int
	size   int
	toks   []token
	labels map[string]*label
	consts map[string]constant
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]*label),
		consts: make(map[string]constant),
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, AsmError{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.mem) {
		p.mem = append(p.mem, make(vm.Memory, 256)...)
	}
	p.mem[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

func (p *parser) scan(name string, r io.Reader) {
	var s scanner.Scanner
	s.Init(r)
	s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}
	s.IsIdentRune = isIdentRune
	s.Mode = scanner.ScanIdents
	s.Filename = name
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		p.toks = append(p.toks, token{s.TokenText(), s.Position})
	}
}

// isOperand returns true if s can be an instruction or .dat operand.
func isOperand(s string) bool {
	if s == "" || s == "(" || s[0] == ':' || s[0] == '.' {
		return false
	}
	_, isOp := vm.LookupOpcode(s)
	return !isOp
}

// value writes the value of the operand s.
func (p *parser) value(t token, s string) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		p.write(vm.Cell(n))
		return
	}
	if c, ok := p.consts[s]; ok {
		p.write(c.value)
		return
	}
	if !isName(s) {
		p.error(t.pos, "Invalid operand "+t.text)
		p.write(0)
		return
	}
	l := p.labels[s]
	if l == nil {
		l = &label{labelSite{t.pos, -1}, nil}
		p.labels[s] = l
	}
	l.uses = append(l.uses, labelSite{t.pos, p.pc})
	p.write(0)
}

// constValue returns the value of s, which must be an integer or a constant.
func (p *parser) constValue(t token) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(t.text, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if c, ok := p.consts[t.text]; ok {
		return c.value, true
	}
	return 0, false
}

// next returns the token following toks[j].
func (p *parser) next(j int) (token, bool) {
	if j+1 >= len(p.toks) {
		return token{}, false
	}
	return p.toks[j+1], true
}

// instruction assembles the instruction for op whose mnemonic is at toks[j]
// and returns the index of its last token.
func (p *parser) instruction(op vm.Opcode, j int) int {
	start := p.toks[j]
	at := p.pc
	p.write(0)
	modes := make([]vm.Mode, op.Params())
	for k := range modes {
		t, ok := p.next(j)
		if !ok || !isOperand(t.text) {
			p.error(start.pos, "Missing operand for "+start.text)
			break
		}
		j++
		s := t.text
		if s[0] == '#' {
			modes[k] = vm.ModeImmediate
			s = s[1:]
			if k == op.Dst() {
				p.error(t.pos, "Immediate write target "+t.text)
			}
		}
		p.value(t, s)
	}
	p.mem[at] = vm.Encode(op, modes...)
	return j
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Memory, error) {
	p.scan(name, r)

	for j := 0; j < len(p.toks); j++ {
		t := p.toks[j]
		s := t.text
		switch {
		case s == "(":
			// skip comments
			for j++; j < len(p.toks) && p.toks[j].text != ")"; j++ {
			}
			if j >= len(p.toks) {
				p.error(t.pos, "Unterminated comment")
			}
		case s[0] == ':':
			n := s[1:]
			if !isName(n) {
				p.error(t.pos, "Invalid label name "+s)
				break
			}
			if cst, ok := p.consts[n]; ok {
				p.error(t.pos, "Label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
				break
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.error(t.pos, "Label redefinition: "+n+", previous definition here: "+l.pos.String())
				}
				l.address = p.pc
				l.pos = t.pos
			} else {
				p.labels[n] = &label{labelSite{t.pos, p.pc}, nil}
			}
		case s == ".org":
			a, ok := p.next(j)
			v, valid := p.constValue(a)
			if !ok || !valid || v < 0 {
				p.error(t.pos, ".org: expected non-negative integer or constant")
				break
			}
			j++
			p.pc = int(v)
		case s == ".equ":
			n, ok := p.next(j)
			if !ok || !isName(n.text) {
				p.error(t.pos, ".equ: expected identifier")
				break
			}
			j++
			if l, ok := p.labels[n.text]; ok {
				p.error(n.pos, ".equ: redefinition of "+n.text+", previously defined/used as a label here: "+l.pos.String())
				break
			}
			a, ok := p.next(j)
			v, valid := p.constValue(a)
			if !ok || !valid {
				p.error(n.pos, ".equ "+n.text+": expected integer or constant value")
				break
			}
			j++
			p.consts[n.text] = constant{n.pos, v}
		case s == ".dat":
			count := 0
			for a, ok := p.next(j); ok && isOperand(a.text); a, ok = p.next(j) {
				j++
				count++
				p.value(a, a.text)
			}
			if count == 0 {
				p.error(t.pos, ".dat: missing value")
			}
		case s[0] == '.':
			p.error(t.pos, "Unknown dot directive: "+s)
		default:
			op, ok := vm.LookupOpcode(s)
			if !ok {
				p.error(t.pos, "Unknown mnemonic "+s)
				break
			}
			j = p.instruction(op, j)
		}
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			p.error(l.uses[0].pos, "Missing label definition for "+n)
			continue
		}
		for _, u := range l.uses {
			p.mem[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.mem[:p.size], nil
}
