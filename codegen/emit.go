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
	"github.com/db47h/hackvm/lang/vm"
)

var binaryComp = map[vm.Op]string{
	vm.OpAdd: "M=D+M",
	vm.OpSub: "M=M-D",
	vm.OpAnd: "M=D&M",
	vm.OpOr:  "M=D|M",
}

var jumps = map[vm.Op]string{
	vm.OpEq: "JEQ",
	vm.OpGt: "JGT",
	vm.OpLt: "JLT",
}

// pushD pushes the D register.
func (w *Writer) pushD() {
	w.emit("@SP", "A=M", "M=D", "@SP", "M=M+1")
}

// popD pops the top of the stack into D and leaves its address in A.
func (w *Writer) popD() {
	w.emit("@SP", "AM=M-1", "D=M")
}

func (w *Writer) writeBinary(op vm.Op) {
	w.popD()
	w.emit("A=A-1", binaryComp[op])
}

func (w *Writer) writeUnary(op vm.Op) {
	w.emit("@SP", "A=M-1")
	if op == vm.OpNeg {
		w.emit("M=-M")
	} else {
		w.emit("M=!M")
	}
}

func (w *Writer) writeCompare(cmd vm.Command) error {
	l := w.generate(cmd.Pos, prefixTrue, prefixEnd)
	w.popD()
	w.emit("A=A-1", "D=M-D",
		at(l[0]), "D;"+jumps[cmd.Op],
		"@SP", "A=M-1", "M=0",
		at(l[1]), "0;JMP",
		"("+l[0]+")",
		"@SP", "A=M-1", "M=-1",
		"("+l[1]+")")
	return nil
}

func (w *Writer) writePush(cmd vm.Command) error {
	r, err := w.resolve(cmd)
	if err != nil {
		return err
	}
	switch r.mode {
	case modeLiteral:
		w.emit(at(r.sym), "D=A")
	case modeIndirect:
		w.emit(at(r.sym), "D=M", atInt(r.index), "A=D+A", "D=M")
	case modeDirect:
		w.emit(at(r.sym), "D=M")
	}
	w.pushD()
	return nil
}

func (w *Writer) writePop(cmd vm.Command) error {
	if cmd.Segment == vm.SegConstant {
		return vm.Errorf(cmd.Pos, vm.ErrInvalidSegment, "%v", cmd)
	}
	r, err := w.resolve(cmd)
	if err != nil {
		return err
	}
	switch r.mode {
	case modeIndirect:
		w.emit(at(r.sym), "D=M", atInt(r.index), "D=D+A", "@R13", "M=D")
		w.popD()
		w.emit("@R13", "A=M", "M=D")
	case modeDirect:
		w.popD()
		w.emit(at(r.sym), "M=D")
	}
	return nil
}

func (w *Writer) writeLabel(cmd vm.Command) error {
	name, err := w.qualify(cmd)
	if err != nil {
		return err
	}
	if err = w.declare(name, cmd.Pos); err != nil {
		return err
	}
	w.emit("(" + name + ")")
	return nil
}

func (w *Writer) writeGoto(cmd vm.Command) error {
	name, err := w.qualify(cmd)
	if err != nil {
		return err
	}
	w.emit(at(name), "0;JMP")
	return nil
}

func (w *Writer) writeIf(cmd vm.Command) error {
	name, err := w.qualify(cmd)
	if err != nil {
		return err
	}
	w.popD()
	w.emit(at(name), "D;JNE")
	return nil
}
