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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/cpu"
)

// Assembles a small program that decrements a counter in a loop and writes
// it in the .hack format.
func ExampleAssemble() {
	code := `
		@3
		D=A
		@count		// variable, allocated at 16
		M=D
(LOOP)
		@count
		MD=M-1
		@LOOP
		D;JGT
(END)
		@END
		0;JMP
`
	rom, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	cpu.WriteHack(os.Stdout, rom)

	// Output:
	// 0000000000000011
	// 1110110000010000
	// 0000000000010000
	// 1110001100001000
	// 0000000000010000
	// 1111110010011000
	// 0000000000000100
	// 1110001100000001
	// 0000000000001000
	// 1110101010000111
}

func ExampleDisassemble() {
	rom := []cpu.Cell{0x0100, -0x13f0, 0x0000, -0x1cf8}
	for pc := 0; pc < len(rom); {
		pc, _ = asm.Disassemble(rom, pc, os.Stdout)
		fmt.Println()
	}

	// Output:
	// @256
	// D=A
	// @0
	// M=D
}
