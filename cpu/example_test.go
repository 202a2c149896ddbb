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

package cpu_test

import (
	"fmt"
	"strings"

	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/cpu"
)

// Adds R0 and R1 into R2.
func Example() {
	rom, err := asm.Assemble("add", strings.NewReader(`
	@R0
	D=M
	@R1
	D=D+M
	@R2
	M=D
(END)
	@END
	0;JMP
`))
	if err != nil {
		panic(err)
	}
	i, err := cpu.New(rom)
	if err != nil {
		panic(err)
	}
	i.Poke(0, 7)
	i.Poke(1, 8)
	if err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.Peek(2), i.Halted(), i.InstructionCount())

	// Output:
	// 15 true 7
}
