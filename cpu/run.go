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
	"fmt"

	"github.com/pkg/errors"
)

// ErrCycleLimit is returned by Run when the maximum number of instructions set
// with MaxCycles has been executed.
var ErrCycleLimit = errors.New("cycle limit reached")

func errTooLarge(n int) error {
	return errors.Errorf("program too large: %d instructions, max %d", n, ROMSize)
}

func alu(x, y Cell, c uint16) Cell {
	if c&0x20 != 0 { // zx
		x = 0
	}
	if c&0x10 != 0 { // nx
		x = ^x
	}
	if c&0x08 != 0 { // zy
		y = 0
	}
	if c&0x04 != 0 { // ny
		y = ^y
	}
	var out Cell
	if c&0x02 != 0 { // f
		out = x + y
	} else {
		out = x & y
	}
	if c&0x01 != 0 { // no
		out = ^out
	}
	return out
}

func (i *Instance) read(addr Cell) Cell {
	a := int(uint16(addr))
	if a == KBD && i.keys != nil {
		i.RAM[KBD] = i.keys.poll()
	}
	return i.RAM[a]
}

// halted returns true if the instruction at PC is an unconditional jump to
// the A-instruction right before it, which in turn targets itself.
func (i *Instance) halted() bool {
	if i.PC == 0 {
		return false
	}
	ins := uint16(i.ROM[i.PC])
	return ins&0x8000 != 0 && ins&0x7 == 0x7 && int(i.A) == i.PC-1 && int(i.ROM[i.PC-1]) == i.PC-1
}

func (i *Instance) step() {
	ins := uint16(i.ROM[i.PC])
	if i.trace != nil {
		fmt.Fprintf(i.trace, "%5d  %016b  A=%d D=%d\n", i.PC, ins, i.A, i.D)
	}
	i.insCount++
	if ins&0x8000 == 0 {
		i.A = Cell(ins)
		i.PC++
		return
	}
	a := i.A
	y := a
	if ins&0x1000 != 0 {
		y = i.read(a)
	}
	out := alu(i.D, y, ins>>6&0x3f)
	dest := ins >> 3 & 0x7
	if dest&1 != 0 {
		i.RAM[int(uint16(a))] = out
	}
	if dest&2 != 0 {
		i.D = out
	}
	if dest&4 != 0 {
		i.A = out
	}
	j := ins & 0x7
	if j&4 != 0 && out < 0 || j&2 != 0 && out == 0 || j&1 != 0 && out > 0 {
		i.PC = int(uint16(a))
	} else {
		i.PC++
	}
}

func (i *Instance) recovered(e interface{}) error {
	switch e := e.(type) {
	case error:
		return errors.Wrapf(e, "Recovered error @pc=%d/%d, A=%d, SP=%d", i.PC, len(i.ROM), i.A, i.RAM[SP])
	default:
		return errors.Errorf("%v @pc=%d/%d, A=%d, SP=%d", e, i.PC, len(i.ROM), i.A, i.RAM[SP])
	}
}

// Step executes a single instruction.
func (i *Instance) Step() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = i.recovered(e)
		}
	}()
	if i.PC < 0 || i.PC >= len(i.ROM) {
		return errors.Errorf("pc %d out of ROM", i.PC)
	}
	i.step()
	return nil
}

// Halted returns true if the program has stopped: either the program counter
// is past the end of the ROM or the program is in a halt loop.
func (i *Instance) Halted() bool {
	return i.PC >= len(i.ROM) || i.halted()
}

// Run starts execution of the computer until it halts.
//
// If an error occurs, the PC will will point to the instruction that triggered
// the error. If the instruction budget set with MaxCycles is exhausted, Run
// returns ErrCycleLimit.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = i.recovered(e)
		}
	}()
	if i.keys != nil {
		defer i.keys.stop()
	}
	for i.PC >= 0 && i.PC < len(i.ROM) && !i.halted() {
		if i.maxCycles > 0 && i.insCount >= i.maxCycles {
			return errors.Wrapf(ErrCycleLimit, "@pc=%d after %d instructions", i.PC, i.insCount)
		}
		i.step()
	}
	if i.PC < 0 {
		return errors.Errorf("pc %d out of ROM", i.PC)
	}
	return nil
}
