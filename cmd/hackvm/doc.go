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

// Command hackvm translates programs written for the Hack virtual machine to
// Hack assembly, assembles them and runs them on an emulated Hack computer.
//
// Usage:
//
//	hackvm translate [flags] <file.vm|directory>
//	hackvm asm [flags] <file.asm>
//	hackvm disasm <file.hack>
//	hackvm run [flags] <file.vm|directory|file.asm|file.hack>
//
// Global flags:
//
//	-v, --verbose
//		  enable debug logging on stderr
//	--debug
//		  print error stack traces and the machine state on failure
//
// translate: a single .vm file is translated as is, without bootstrap code,
// to a .asm file of the same name. A directory is translated as a whole
// program: its .vm files are translated in name order, preceded by the
// bootstrap code that sets SP to 256 and calls Sys.init. The output file is
// <directory>/<directory>.asm. If the directory contains a hackvm.yaml file,
// it is used to override these defaults:
//
//	bootstrap: true
//	entry: Sys.init
//	stack_base: 256
//	strict: false
//	comments: false
//	units: [Sys.vm, Main.vm]
//
// In strict mode, labels declared outside of a function are rejected.
//
//	-o filename
//		  output file name
//	--config filename
//		  use filename as project configuration
//	--progress
//		  show a progress bar while translating
//	--comments
//		  precede the code of each VM command with a comment
//	--strict
//		  reject labels outside of functions
//
// asm assembles a .asm file into a .hack file (-o overrides the output file
// name). disasm prints a listing of a .hack file.
//
// run builds its argument as needed and runs it until it halts, that is when
// the PC leaves the ROM or reaches an infinite loop of the form
//
//	(HALT)
//	@HALT
//	0;JMP
//
//	--cycles n
//		  stop after n instructions (0 for no limit)
//	--dump
//		  print the registers and the stack upon exit
//	--raw
//		  feed stdin to the keyboard register. If stdin is a terminal, it is
//		  switched to raw mode.
package main
