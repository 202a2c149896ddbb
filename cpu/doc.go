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

// Package cpu implements the Hack computer: a 16-bit CPU with an A and a D
// register, a read-only instruction memory (ROM) and a data memory (RAM) with
// a memory-mapped screen and keyboard.
//
// Instructions are 16 bits wide. If the most significant bit is 0, the
// instruction loads its lower 15 bits into A. Otherwise it is a compute
// instruction of the form
//
//	111a cccc ccdd djjj
//
// where a selects A or M (RAM[A]) as the second ALU operand, c are the six
// ALU control bits (zx, nx, zy, ny, f, no), d selects the destinations (A, D,
// M) and j the jump condition on the ALU output (<0, =0, >0). Writes to M and
// jumps use the value A had before the instruction.
//
// Programs do not have a way to stop the CPU. Run returns when the program
// counter leaves the ROM or when the program enters the conventional halt
// loop:
//
//	(END)
//	@END
//	0;JMP
//
// The screen is plain RAM. A keyboard can be attached with the Keyboard
// option: bytes read from it are presented in KBD one at a time.
package cpu
