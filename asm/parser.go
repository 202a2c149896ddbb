// This file is part of hackvm - https://github.com/db47h/hackvm
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
	"bufio"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/hackvm/cpu"
)

const maxErrors = 10

// varBase is the address of the first variable.
const varBase = 16

// ErrAsm encapsulates errors generated by the assembler.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func isSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '.', r == '$', r == ':':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

type line struct {
	pos  scanner.Position
	text string
}

type parser struct {
	lines  []line
	labels map[string]int
	vars   map[string]int
	next   int
	errs   ErrAsm
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]int)
	p.vars = make(map[string]int)
	p.next = varBase
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

// read loads all non-empty lines with comments and white space removed.
func (p *parser) read(name string, r io.Reader) error {
	s := bufio.NewScanner(r)
	var n int
	for s.Scan() {
		n++
		t := s.Text()
		if i := strings.Index(t, "//"); i >= 0 {
			t = t[:i]
		}
		if t = stripSpace(t); t != "" {
			p.lines = append(p.lines, line{scanner.Position{Filename: name, Line: n}, t})
		}
	}
	return s.Err()
}

// bind does the first pass: bind labels to instruction addresses.
func (p *parser) bind() {
	var pc int
	for _, l := range p.lines {
		if l.text[0] != '(' {
			pc++
			continue
		}
		if l.text[len(l.text)-1] != ')' {
			p.error(l.pos, "Unterminated label declaration "+l.text)
			continue
		}
		n := l.text[1 : len(l.text)-1]
		switch {
		case n == "":
			p.error(l.pos, "Empty label name")
		case !isSymbol(n):
			p.error(l.pos, "Invalid label name "+n)
		default:
			if _, ok := predefined[n]; ok {
				p.error(l.pos, "Label redefinition: "+n+" is a predefined symbol")
			} else if _, ok := p.labels[n]; ok {
				p.error(l.pos, "Label redefinition: "+n)
			} else {
				p.labels[n] = pc
			}
		}
	}
	if pc > cpu.ROMSize {
		p.error(scanner.Position{}, "Program too large: "+strconv.Itoa(pc)+" instructions")
	}
}

func (p *parser) symbol(pos scanner.Position, s string) cpu.Cell {
	if v, ok := predefined[s]; ok {
		return cpu.Cell(v)
	}
	if v, ok := p.labels[s]; ok {
		return cpu.Cell(v)
	}
	if v, ok := p.vars[s]; ok {
		return cpu.Cell(v)
	}
	if p.next >= cpu.Screen {
		p.error(pos, "Out of variable space for "+s)
		return 0
	}
	v := p.next
	p.vars[s] = v
	p.next++
	return cpu.Cell(v)
}

func (p *parser) address(l line) cpu.Cell {
	s := l.text[1:]
	switch {
	case isNumber(s):
		v, err := strconv.Atoi(s)
		if err != nil || v > 1<<15-1 {
			p.error(l.pos, "Literal out of range: "+s)
			return 0
		}
		return cpu.Cell(v)
	case isSymbol(s):
		return p.symbol(l.pos, s)
	}
	p.error(l.pos, "Invalid address "+l.text)
	return 0
}

func (p *parser) compute(l line) cpu.Cell {
	t := l.text
	var dest, jump uint16
	if i := strings.IndexByte(t, '='); i >= 0 {
		var ok bool
		if dest, ok = parseDest(t[:i]); !ok {
			p.error(l.pos, "Invalid destination "+t[:i])
			return 0
		}
		t = t[i+1:]
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		j, ok := jumpIndex[t[i+1:]]
		if !ok || j == 0 {
			p.error(l.pos, "Invalid jump "+t[i+1:])
			return 0
		}
		jump = j
		t = t[:i]
	}
	if a, ok := compAliases[t]; ok {
		t = a
	}
	c, ok := comps[t]
	if !ok {
		p.error(l.pos, "Invalid computation "+t)
		return 0
	}
	return cpu.Cell(int16(0xe000 | c<<6 | dest<<3 | jump))
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]cpu.Cell, error) {
	if err := p.read(name, r); err != nil {
		p.error(scanner.Position{Filename: name}, err.Error())
		return nil, p.errs
	}
	p.bind()
	rom := make([]cpu.Cell, 0, len(p.lines))
	for _, l := range p.lines {
		switch l.text[0] {
		case '(':
			continue
		case '@':
			rom = append(rom, p.address(l))
		default:
			rom = append(rom, p.compute(l))
		}
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return rom, nil
}
