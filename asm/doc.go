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

// Package asm provides utility functions to assemble and disassemble Hack
// machine code.
//
// Source syntax:
//
// The assembler reads one instruction per line. White space is ignored and
// "//" starts a comment that runs to the end of the line. There are three
// kinds of lines:
//
//	@value		A-instruction: load a decimal constant (0-32767) or the
//			value of a symbol in A
//	dest=comp;jump	C-instruction: compute comp, store it in dest and jump
//			according to jump. Either "dest=" or ";jump" may be omitted.
//	(LABEL)		label declaration: binds LABEL to the address of the next
//			instruction
//
// dest is any combination of A, D and M, in any order. jump is one of JGT,
// JEQ, JGE, JLT, JNE, JLE and JMP. Supported comp mnemonics:
//
//	a=0	a=1
//	---	---
//	0
//	1
//	-1
//	D
//	A	M
//	!D
//	!A	!M
//	-D
//	-A	-M
//	D+1
//	A+1	M+1
//	D-1
//	A-1	M-1
//	D+A	D+M
//	D-A	D-M
//	A-D	M-D
//	D&A	D&M
//	D|A	D|M
//
// The commutative forms A+D, M+D, A&D, M&D, A|D and M|D are accepted as well.
//
// Symbols:
//
// A symbol is a sequence of letters, digits, '_', '.', '$' and ':' that does
// not start with a digit. The following symbols are predefined:
//
//	SP LCL ARG THIS THAT	RAM addresses 0 to 4
//	R0 … R15		RAM addresses 0 to 15
//	SCREEN KBD		RAM addresses 16384 and 24576
//
// A symbol that is neither predefined nor declared as a label is a variable.
// Variables are allocated RAM addresses starting at 16, in order of first
// use.
package asm
