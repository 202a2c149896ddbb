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
	"strconv"
	"text/scanner"
)

// Op is the operation of a VM command.
type Op int

// VM command operations.
const (
	OpAdd Op = iota
	OpSub
	OpNeg
	OpEq
	OpGt
	OpLt
	OpAnd
	OpOr
	OpNot
	OpPush
	OpPop
	OpLabel
	OpGoto
	OpIfGoto
	OpFunction
	OpCall
	OpReturn
)

var opNames = [...]string{
	"add",
	"sub",
	"neg",
	"eq",
	"gt",
	"lt",
	"and",
	"or",
	"not",
	"push",
	"pop",
	"label",
	"goto",
	"if-goto",
	"function",
	"call",
	"return",
}

var opIndex = make(map[string]Op, len(opNames))

func init() {
	for i, n := range opNames {
		opIndex[n] = Op(i)
	}
	for i, n := range segNames {
		segIndex[n] = Segment(i)
	}
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// IsUnary returns true for neg and not.
func (op Op) IsUnary() bool { return op == OpNeg || op == OpNot }

// IsBinary returns true for add, sub, and and or.
func (op Op) IsBinary() bool {
	switch op {
	case OpAdd, OpSub, OpAnd, OpOr:
		return true
	}
	return false
}

// IsCompare returns true for eq, gt and lt.
func (op Op) IsCompare() bool { return op == OpEq || op == OpGt || op == OpLt }

// IsArithmetic returns true for all operand-less stack operations.
func (op Op) IsArithmetic() bool { return op.IsUnary() || op.IsBinary() || op.IsCompare() }

// Segment is a named memory segment.
type Segment int

// Memory segments.
const (
	SegConstant Segment = iota
	SegLocal
	SegArgument
	SegThis
	SegThat
	SegTemp
	SegPointer
	SegStatic
)

var segNames = [...]string{
	"constant",
	"local",
	"argument",
	"this",
	"that",
	"temp",
	"pointer",
	"static",
}

var segIndex = make(map[string]Segment, len(segNames))

func (s Segment) String() string {
	if s < 0 || int(s) >= len(segNames) {
		return "Segment(" + strconv.Itoa(int(s)) + ")"
	}
	return segNames[s]
}

// LookupSegment returns the segment with the given name.
func LookupSegment(name string) (Segment, bool) {
	s, ok := segIndex[name]
	return s, ok
}

// Command is a parsed VM command.
//
// Segment and Index are set for push and pop. Name is set for label, goto,
// if-goto, function and call. N is the number of locals for function and the
// number of arguments for call.
type Command struct {
	Op      Op
	Segment Segment
	Index   int
	Name    string
	N       int
	Pos     scanner.Position
}

// String returns the command in VM syntax.
func (c Command) String() string {
	switch c.Op {
	case OpPush, OpPop:
		return c.Op.String() + " " + c.Segment.String() + " " + strconv.Itoa(c.Index)
	case OpLabel, OpGoto, OpIfGoto:
		return c.Op.String() + " " + c.Name
	case OpFunction, OpCall:
		return c.Op.String() + " " + c.Name + " " + strconv.Itoa(c.N)
	}
	return c.Op.String()
}

// StackDelta returns the net change of the stack depth caused by the command,
// as seen from the code following it. A call is accounted for once the callee
// has returned: its arguments are replaced by the return value. For return,
// control leaves the current frame and the delta is 0.
func (c Command) StackDelta() int {
	switch c.Op {
	case OpPush:
		return 1
	case OpPop, OpIfGoto:
		return -1
	case OpNeg, OpNot, OpLabel, OpGoto, OpReturn:
		return 0
	case OpAdd, OpSub, OpAnd, OpOr, OpEq, OpGt, OpLt:
		return -1
	case OpFunction:
		return c.N
	case OpCall:
		return 1 - c.N
	}
	panic("unknown op " + c.Op.String())
}
