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

	"github.com/db47h/hackvm/lang/vm"
)

// addressing modes
type mode int

const (
	modeLiteral  mode = iota // the value is the index itself
	modeIndirect             // RAM[RAM[sym] + index]
	modeDirect               // RAM[sym]
)

// recipe tells how to reach the cell addressed by a segment and index.
type recipe struct {
	mode  mode
	sym   string
	index int
}

const (
	tempBase = 5
	tempSize = 8
)

// resolve returns the addressing recipe for the segment and index of a push or
// pop command.
func (w *Writer) resolve(cmd vm.Command) (recipe, error) {
	i := cmd.Index
	if i < 0 {
		return recipe{}, vm.Errorf(cmd.Pos, vm.ErrInvalidIndex, "negative index %d", i)
	}
	switch cmd.Segment {
	case vm.SegConstant:
		if i > maxLiteral {
			return recipe{}, vm.Errorf(cmd.Pos, vm.ErrInvalidIndex, "constant %d out of range 0-%d", i, maxLiteral)
		}
		return recipe{modeLiteral, strconv.Itoa(i), i}, nil
	case vm.SegLocal:
		return indirect("LCL", cmd)
	case vm.SegArgument:
		return indirect("ARG", cmd)
	case vm.SegThis:
		return indirect("THIS", cmd)
	case vm.SegThat:
		return indirect("THAT", cmd)
	case vm.SegTemp:
		if i >= tempSize {
			return recipe{}, vm.Errorf(cmd.Pos, vm.ErrInvalidIndex, "temp %d out of range 0-%d", i, tempSize-1)
		}
		return recipe{modeDirect, strconv.Itoa(tempBase + i), i}, nil
	case vm.SegPointer:
		switch i {
		case 0:
			return recipe{modeDirect, "THIS", i}, nil
		case 1:
			return recipe{modeDirect, "THAT", i}, nil
		}
		return recipe{}, vm.Errorf(cmd.Pos, vm.ErrInvalidIndex, "pointer %d, must be 0 or 1", i)
	case vm.SegStatic:
		if !vm.IsSymbol(w.stem) {
			return recipe{}, vm.Errorf(cmd.Pos, vm.ErrSyntax, "file name %q cannot qualify static variables", w.stem)
		}
		return recipe{modeDirect, w.stem + "." + strconv.Itoa(i), i}, nil
	}
	return recipe{}, vm.Errorf(cmd.Pos, vm.ErrUnknownSegment, "%v", cmd.Segment)
}

func indirect(base string, cmd vm.Command) (recipe, error) {
	if cmd.Index > maxLiteral {
		return recipe{}, vm.Errorf(cmd.Pos, vm.ErrInvalidIndex, "%v %d out of range", cmd.Segment, cmd.Index)
	}
	return recipe{modeIndirect, base, cmd.Index}, nil
}
