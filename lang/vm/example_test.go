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

package vm_test

import (
	"fmt"
	"strings"

	"github.com/db47h/hackvm/lang/vm"
)

func ExampleParser() {
	p := vm.NewParser("Main.vm", strings.NewReader(`
// returns 2 * arg 0
function Main.double 0
	push argument 0
	push argument 0
	add
	return
`))
	for p.Scan() {
		c := p.Command()
		fmt.Printf("%d:%d %v (%+d)\n", c.Pos.Line, c.Pos.Column, c, c.StackDelta())
	}
	if err := p.Err(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// 3:1 function Main.double 0 (+0)
	// 4:2 push argument 0 (+1)
	// 5:2 push argument 0 (+1)
	// 6:2 add (-1)
	// 7:2 return (+0)
}

func ExampleError() {
	_, err := vm.ParseAll("Main.vm", strings.NewReader("push constant 1\npush heap 2\n"))
	fmt.Println(err)
	fmt.Println(vm.ErrUnknownSegment == err.(*vm.Error).Err)

	// Output:
	// Main.vm:2:6: unknown segment: "heap"
	// true
}
