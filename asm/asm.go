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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/hackvm/cpu"
	"github.com/db47h/hackvm/internal/hvi"
)

// comp mnemonics, indexed by the a and c bits of a C-instruction.
var comps = map[string]uint16{
	"0":   0x2a,
	"1":   0x3f,
	"-1":  0x3a,
	"D":   0x0c,
	"A":   0x30,
	"!D":  0x0d,
	"!A":  0x31,
	"-D":  0x0f,
	"-A":  0x33,
	"D+1": 0x1f,
	"A+1": 0x37,
	"D-1": 0x0e,
	"A-1": 0x32,
	"D+A": 0x02,
	"D-A": 0x13,
	"A-D": 0x07,
	"D&A": 0x00,
	"D|A": 0x15,
	"M":   0x70,
	"!M":  0x71,
	"-M":  0x73,
	"M+1": 0x77,
	"M-1": 0x72,
	"D+M": 0x42,
	"D-M": 0x53,
	"M-D": 0x47,
	"D&M": 0x40,
	"D|M": 0x55,
}

var compAliases = map[string]string{
	"A+D": "D+A",
	"M+D": "D+M",
	"A&D": "D&A",
	"M&D": "D&M",
	"A|D": "D|A",
	"M|D": "D|M",
}

var compNames = make(map[uint16]string, len(comps))

var dests = [...]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}

var jumps = [...]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

var jumpIndex = make(map[string]uint16, len(jumps))

var predefined = map[string]int{
	"SP":     cpu.SP,
	"LCL":    cpu.LCL,
	"ARG":    cpu.ARG,
	"THIS":   cpu.THIS,
	"THAT":   cpu.THAT,
	"SCREEN": cpu.Screen,
	"KBD":    cpu.KBD,
}

func init() {
	for n, c := range comps {
		compNames[c] = n
	}
	for i, n := range jumps {
		jumpIndex[n] = uint16(i)
	}
	for i := 0; i < 16; i++ {
		predefined["R"+strconv.Itoa(i)] = i
	}
}

// parseDest returns the dest bits for any combination of A, D and M.
func parseDest(s string) (uint16, bool) {
	var d uint16
	for _, r := range s {
		var bit uint16
		switch r {
		case 'A':
			bit = 4
		case 'D':
			bit = 2
		case 'M':
			bit = 1
		default:
			return 0, false
		}
		if d&bit != 0 {
			return 0, false
		}
		d |= bit
	}
	return d, s != ""
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) ([]cpu.Cell, error) {
	p := newParser()
	rom, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return rom, nil
}

// Disassemble writes a disassembly of the instruction in the given slice at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(rom []cpu.Cell, pc int, w io.Writer) (next int, err error) {
	ew := hvi.NewErrWriter(w)
	ins := uint16(rom[pc])
	if ins&0x8000 == 0 {
		io.WriteString(ew, "@"+strconv.Itoa(int(ins)))
		return pc + 1, ew.Err
	}
	comp, ok := compNames[ins>>6&0x7f]
	if !ok {
		io.WriteString(ew, "??? ")
		io.WriteString(ew, strconv.FormatUint(uint64(ins), 2))
		return pc + 1, ew.Err
	}
	if d := dests[ins>>3&7]; d != "" {
		io.WriteString(ew, d+"=")
	}
	io.WriteString(ew, comp)
	if j := jumps[ins&7]; j != "" {
		io.WriteString(ew, ";"+j)
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given slice
// to the specified io.Writer. The base argument specifies the real address of
// the frist instruction (rom[0]). It will return any write error.
func DisassembleAll(rom []cpu.Cell, base int, w io.Writer) error {
	ew := hvi.NewErrWriter(w)
	for pc := 0; pc < len(rom); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(rom, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

// stripSpace removes all white space from s.
func stripSpace(s string) string {
	if !strings.ContainsAny(s, " \t\r\v\f") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\v', '\f':
			return -1
		}
		return r
	}, s)
}
