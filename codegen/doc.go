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

// Package codegen translates VM commands into symbolic Hack assembly.
//
// The target machine has two registers, A and D, and addresses RAM through
// M = RAM[A]. The VM stack lives in RAM starting at the stack base (256 by
// default) and is addressed through five pointers held in RAM:
//
//	RAM[0]	SP	address of the next free stack cell
//	RAM[1]	LCL	base of the local segment of the current function
//	RAM[2]	ARG	base of the argument segment of the current function
//	RAM[3]	THIS	base of the this segment (pointer 0)
//	RAM[4]	THAT	base of the that segment (pointer 1)
//	RAM[5-12]	temp segment
//	RAM[13-14]	scratch registers used by pop and return
//
// Static variables are emitted as symbols of the form File.index and
// allocated by the assembler.
//
// Functions use the following frame layout. On call, the caller has pushed
// the arguments; call pushes a five-cell frame header and jumps to the callee,
// whose function command then pushes its locals:
//
//	ARG ->	argument 0
//		...
//		argument n-1
//		return address
//		saved LCL
//		saved ARG
//		saved THIS
//		saved THAT
//	LCL ->	local 0
//		...
//		local k-1
//	SP ->
//
// Return copies the return value to argument 0, sets SP just above it and
// restores the caller's pointers from the frame header, so that the caller
// sees its arguments replaced by the single return value.
//
// Labels declared with the label command are scoped to the enclosing
// function and emitted as function$label. Labels generated for comparisons and
// return addresses have the form PREFIX.n with n taken from a counter shared
// by all units translated by the same Writer.
package codegen
