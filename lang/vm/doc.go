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

// Package vm implements the data model and the parser of the stack VM
// language translated by package codegen.
//
// A VM program is a sequence of commands, one per line. A "//" starts a
// comment that runs to the end of the line. Blank lines are ignored.
//
//	command		operands		stack
//	-------		--------		-----
//	add sub and or	-			xy-z
//	neg not		-			x-y
//	eq gt lt	-			xy-b	(b is -1 for true, 0 for false)
//	push		segment index		-x
//	pop		segment index		x-
//	label		name			-
//	goto		name			-
//	if-goto		name			b-
//	function	name nLocals		-0…0 (nLocals zeros)
//	call		name nArgs		a1…an-r
//	return		-			r-
//
// The segments are constant, local, argument, this, that, temp, pointer and
// static.
//
// Names are made of letters, digits, '_', '.', '$' and ':' and do not start
// with a digit. Label names may not contain '$'. Indexes and counts are
// unsigned decimal integers.
//
// Parsing is line based and does not keep any state between lines, so that
// parsing the same text twice always yields the same commands. Errors are
// reported as *Error values that point at the offending line and unwrap to
// one of the Err* kinds declared in this package:
//
//	p := vm.NewParser("Main.vm", r)
//	for p.Scan() {
//		cmd := p.Command()
//		// ...
//	}
//	if err := p.Err(); errors.Is(err, vm.ErrSyntax) {
//		// ...
//	}
package vm
