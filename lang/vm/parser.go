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

package vm

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// MaxLineSize is the maximum length of a source line, comments included.
const MaxLineSize = 1 << 20

type token struct {
	text string
	col  int
}

// fields splits a comment-free line at white space and records the column of
// each token.
func fields(line string) []token {
	var toks []token
	start := -1
	for i, r := range line {
		if r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f' {
			if start >= 0 {
				toks = append(toks, token{line[start:i], utf8.RuneCountInString(line[:start]) + 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{line[start:], utf8.RuneCountInString(line[:start]) + 1})
	}
	return toks
}

func isSymbolRune(r rune, first bool) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return !first
	}
	return r == '_' || r == '.' || r == '$' || r == ':'
}

// IsSymbol returns true if s can be used as a label or function name: a
// non-empty sequence of letters, digits, '_', '.', '$' and ':' that does not
// start with a digit. These are the names the downstream assembler accepts as
// symbols.
func IsSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !isSymbolRune(r, i == 0) {
			return false
		}
	}
	return true
}

// Parser reads VM commands from an io.Reader. Successive calls to Scan step
// through the commands, skipping comments and blank lines.
type Parser struct {
	s    *bufio.Scanner
	name string
	line int
	cmd  Command
	err  error
}

// NewParser returns a new Parser reading from r. The name is used as the file
// name in command positions and error messages.
func NewParser(name string, r io.Reader) *Parser {
	s := bufio.NewScanner(r)
	s.Buffer(nil, MaxLineSize)
	return &Parser{s: s, name: name}
}

// Scan advances to the next command, which will then be available through
// the Command method. It returns false when there are no more commands, either
// by reaching the end of the input or because of an error. After Scan returns
// false, Err returns any error that occurred.
func (p *Parser) Scan() bool {
	if p.err != nil {
		return false
	}
	for p.s.Scan() {
		p.line++
		line := p.s.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		toks := fields(line)
		if len(toks) == 0 {
			continue
		}
		p.cmd, p.err = p.parse(toks)
		return p.err == nil
	}
	switch err := p.s.Err(); {
	case err == bufio.ErrTooLong:
		p.line++
		p.err = Errorf(p.pos(1), ErrSyntax, "line longer than %d bytes", MaxLineSize)
	case err != nil:
		p.err = errors.Wrapf(err, "%s:%d: read failed", p.name, p.line+1)
	}
	return false
}

// Command returns the last command read by Scan.
func (p *Parser) Command() Command { return p.cmd }

// Err returns the first error encountered by the Parser.
func (p *Parser) Err() error { return p.err }

func (p *Parser) pos(col int) scanner.Position {
	return scanner.Position{Filename: p.name, Line: p.line, Column: col}
}

func (p *Parser) arity(toks []token, n int) error {
	if len(toks) == n {
		return nil
	}
	if len(toks) > n {
		return Errorf(p.pos(toks[n].col), ErrSyntax, "unexpected %q after %s", toks[n].text, toks[0].text)
	}
	return Errorf(p.pos(toks[0].col), ErrSyntax, "%s expects %d operand(s), got %d", toks[0].text, n-1, len(toks)-1)
}

func (p *Parser) number(t token) (int, error) {
	digits := strings.TrimPrefix(t.text, "-")
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, Errorf(p.pos(t.col), ErrSyntax, "%q is not a decimal integer", t.text)
	}
	if len(digits) < len(t.text) {
		return 0, Errorf(p.pos(t.col), ErrInvalidIndex, "negative value %s", t.text)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, Errorf(p.pos(t.col), ErrInvalidIndex, "%s out of range", t.text)
	}
	return n, nil
}

func (p *Parser) symbol(t token) (string, error) {
	if !IsSymbol(t.text) {
		return "", Errorf(p.pos(t.col), ErrSyntax, "invalid name %q", t.text)
	}
	return t.text, nil
}

// label reads a label operand. '$' separates the function name from the label
// in emitted symbols and is not allowed.
func (p *Parser) label(t token) (string, error) {
	if strings.IndexByte(t.text, '$') >= 0 {
		return "", Errorf(p.pos(t.col), ErrSyntax, "invalid label %q: '$' not allowed", t.text)
	}
	return p.symbol(t)
}

func (p *Parser) parse(toks []token) (cmd Command, err error) {
	op, ok := opIndex[toks[0].text]
	if !ok {
		return cmd, Errorf(p.pos(toks[0].col), ErrSyntax, "unknown command %q", toks[0].text)
	}
	cmd.Op = op
	cmd.Pos = p.pos(toks[0].col)
	switch op {
	case OpPush, OpPop:
		if err = p.arity(toks, 3); err != nil {
			return cmd, err
		}
		seg, ok := LookupSegment(toks[1].text)
		if !ok {
			return cmd, Errorf(p.pos(toks[1].col), ErrUnknownSegment, "%q", toks[1].text)
		}
		cmd.Segment = seg
		cmd.Index, err = p.number(toks[2])
	case OpLabel, OpGoto, OpIfGoto:
		if err = p.arity(toks, 2); err != nil {
			return cmd, err
		}
		cmd.Name, err = p.label(toks[1])
	case OpFunction, OpCall:
		if err = p.arity(toks, 3); err != nil {
			return cmd, err
		}
		if cmd.Name, err = p.symbol(toks[1]); err != nil {
			return cmd, err
		}
		cmd.N, err = p.number(toks[2])
	default:
		err = p.arity(toks, 1)
	}
	return cmd, err
}

// ParseAll reads all commands from r.
func ParseAll(name string, r io.Reader) ([]Command, error) {
	var cmds []Command
	p := NewParser(name, r)
	for p.Scan() {
		cmds = append(cmds, p.Command())
	}
	return cmds, p.Err()
}
