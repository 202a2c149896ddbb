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

package codegen_test

import (
	"os"

	"github.com/db47h/hackvm/codegen"
)

func ExampleTranslate() {
	units := []codegen.Unit{
		{Name: "Add.vm", Source: []byte("push constant 7\npush constant 8\nadd\n")},
	}
	if err := codegen.Translate(os.Stdout, units); err != nil {
		panic(err)
	}
	// Output:
	// @7
	// D=A
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
	// @8
	// D=A
	// @SP
	// A=M
	// M=D
	// @SP
	// M=M+1
	// @SP
	// AM=M-1
	// D=M
	// A=A-1
	// M=D+M
}

func ExampleTranslate_comments() {
	units := []codegen.Unit{
		{Name: "Cmp.vm", Source: []byte("function Cmp.f 0\nlt\n")},
	}
	if err := codegen.Translate(os.Stdout, units, codegen.Comments(true)); err != nil {
		panic(err)
	}
	// Output:
	// // function Cmp.f 0
	// (Cmp.f)
	// // lt
	// @SP
	// AM=M-1
	// D=M
	// A=A-1
	// D=M-D
	// @TRUE.1
	// D;JLT
	// @SP
	// A=M-1
	// M=0
	// @END.1
	// 0;JMP
	// (TRUE.1)
	// @SP
	// A=M-1
	// M=-1
	// (END.1)
}
