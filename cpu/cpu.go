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

package cpu

import (
	"io"
	"strconv"

	"github.com/db47h/hackvm/internal/hvi"
)

// Cell is the raw type stored in a memory location.
type Cell int16

// Memory map.
const (
	ROMSize   = 32768
	Screen    = 16384
	KBD       = 24576
	RAMSize   = KBD + 1
	StackBase = 256
)

// Predefined RAM locations used by the VM.
const (
	SP = iota
	LCL
	ARG
	THIS
	THAT
)

// Instance represents a Hack computer.
type Instance struct {
	PC        int    // Program Counter
	A         Cell   // A register
	D         Cell   // D register
	ROM       []Cell // Instruction memory
	RAM       []Cell // Data memory
	insCount  int64
	maxCycles int64
	keys      *keyboard
	trace     io.Writer
}

// Option interface
type Option func(*Instance) error

// MaxCycles sets the maximum number of instructions executed by Run. The
// default, 0, means no limit.
func MaxCycles(n int64) Option {
	return func(i *Instance) error { i.maxCycles = n; return nil }
}

// Keyboard attaches a keyboard to the computer. Bytes read from r are
// translated to Hack key codes and presented in the KBD register, one at a
// time.
func Keyboard(r io.Reader) Option {
	return func(i *Instance) error {
		i.keys = newKeyboard(r)
		return nil
	}
}

// Trace enables instruction tracing to w.
func Trace(w io.Writer) Option {
	return func(i *Instance) error { i.trace = w; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Hack computer with the given program loaded in ROM.
func New(rom []Cell, opts ...Option) (*Instance, error) {
	if len(rom) > ROMSize {
		return nil, errTooLarge(len(rom))
	}
	i := &Instance{
		ROM: rom,
		RAM: make([]Cell, RAMSize),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Peek returns the value at RAM address addr.
func (i *Instance) Peek(addr int) Cell { return i.RAM[addr] }

// Poke sets the value at RAM address addr.
func (i *Instance) Poke(addr int, v Cell) { i.RAM[addr] = v }

// SP returns the VM stack pointer.
func (i *Instance) SP() int { return int(i.RAM[SP]) }

// Stack returns the VM stack, from StackBase up to SP. Note that value changes
// will be reflected in RAM.
func (i *Instance) Stack() []Cell {
	sp := i.SP()
	if sp < StackBase || sp > len(i.RAM) {
		return nil
	}
	return i.RAM[StackBase:sp]
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

func dumpSlice(w *hvi.ErrWriter, a []Cell) {
	for i, c := range a {
		if i > 0 {
			w.Write([]byte{' '})
		}
		io.WriteString(w, strconv.Itoa(int(c)))
	}
}

// Dump writes the program counter, registers, VM pointers and the VM stack
// to the specified io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := hvi.NewErrWriter(w)
	io.WriteString(ew, "PC="+strconv.Itoa(i.PC)+" A="+strconv.Itoa(int(i.A))+" D="+strconv.Itoa(int(i.D))+"\n")
	io.WriteString(ew, "SP LCL ARG THIS THAT: ")
	dumpSlice(ew, i.RAM[SP:THAT+1])
	io.WriteString(ew, "\nstack: ")
	dumpSlice(ew, i.Stack())
	ew.Write([]byte{'\n'})
	return ew.Err
}
