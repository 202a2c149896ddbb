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

package codegen

import (
	"strconv"
	"text/scanner"

	"github.com/db47h/hackvm/lang/vm"
)

// frameSize is the number of cells pushed by call before jumping to the
// callee.
const frameSize = 5

// savedPointers lists the pointers in the order they are saved by call.
// Return restores them in reverse order from the cells just below LCL.
var savedPointers = [...]string{"LCL", "ARG", "THIS", "THAT"}

func (w *Writer) writeFunction(cmd vm.Command) error {
	if err := w.declare(cmd.Name, cmd.Pos); err != nil {
		return err
	}
	w.function = cmd.Name
	w.inFunc = true
	w.emit("(" + cmd.Name + ")")
	for k := 0; k < cmd.N; k++ {
		w.emit("@SP", "A=M", "M=0", "@SP", "M=M+1")
	}
	return nil
}

func (w *Writer) writeCall(name string, nArgs int, pos scanner.Position) error {
	if nArgs > maxLiteral-frameSize {
		return vm.Errorf(pos, vm.ErrInvalidIndex, "too many arguments: %d", nArgs)
	}
	ret := w.generate(pos, prefixReturn)[0]
	w.emit(at(ret), "D=A")
	w.pushD()
	for _, p := range savedPointers {
		w.emit(at(p), "D=M")
		w.pushD()
	}
	// ARG = SP - nArgs - 5
	w.emit("@SP", "D=M", atInt(nArgs+frameSize), "D=D-A", "@ARG", "M=D")
	// LCL = SP
	w.emit("@SP", "D=M", "@LCL", "M=D")
	w.emit(at(name), "0;JMP", "("+ret+")")
	return nil
}

func (w *Writer) writeReturn() {
	// R13 = frame = LCL
	w.emit("@LCL", "D=M", "@R13", "M=D")
	// R14 = return address. It must be saved before *ARG is overwritten: with
	// no arguments, ARG points to it.
	w.emit(atInt(frameSize), "A=D-A", "D=M", "@R14", "M=D")
	// *ARG = pop()
	w.popD()
	w.emit("@ARG", "A=M", "M=D")
	// SP = ARG + 1
	w.emit("@ARG", "D=M+1", "@SP", "M=D")
	// THAT = *(frame-1), THIS = *(frame-2), ARG = *(frame-3), LCL = *(frame-4)
	for k := len(savedPointers) - 1; k >= 0; k-- {
		w.emit("@R13", "D=M", "@"+strconv.Itoa(len(savedPointers)-k), "A=D-A", "D=M", at(savedPointers[k]), "M=D")
	}
	w.emit("@R14", "A=M", "0;JMP")
}

// WriteBootstrap writes the code that sets SP to the stack base and calls the
// entry function.
func (w *Writer) WriteBootstrap() error {
	pos := scanner.Position{Filename: "<bootstrap>"}
	w.emit(atInt(w.stackBase), "D=A", "@SP", "M=D")
	if err := w.writeCall(w.entry, 0, pos); err != nil {
		return err
	}
	return w.w.Err
}
