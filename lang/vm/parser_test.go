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
	"strings"
	"testing"

	"github.com/db47h/hackvm/lang/vm"
	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	src := `// comment only
push constant 7   // trailing comment

	pop  local 2
  add
label LOOP_START
if-goto END.1
goto LOOP_START
function Main.fib 3
call Main.fib 1
return
not`
	exp := []vm.Command{
		{Op: vm.OpPush, Segment: vm.SegConstant, Index: 7},
		{Op: vm.OpPop, Segment: vm.SegLocal, Index: 2},
		{Op: vm.OpAdd},
		{Op: vm.OpLabel, Name: "LOOP_START"},
		{Op: vm.OpIfGoto, Name: "END.1"},
		{Op: vm.OpGoto, Name: "LOOP_START"},
		{Op: vm.OpFunction, Name: "Main.fib", N: 3},
		{Op: vm.OpCall, Name: "Main.fib", N: 1},
		{Op: vm.OpReturn},
		{Op: vm.OpNot},
	}
	lines := []int{2, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	cmds, err := vm.ParseAll("Test.vm", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != len(exp) {
		t.Fatalf("Expected %d commands, got %d: %v", len(exp), len(cmds), cmds)
	}
	for i, c := range cmds {
		if c.Pos.Filename != "Test.vm" || c.Pos.Line != lines[i] {
			t.Errorf("%v: bad position %s, expected line %d", c, c.Pos, lines[i])
		}
		c.Pos = exp[i].Pos
		if c != exp[i] {
			t.Errorf("Command %d: expected %v, got %v", i, exp[i], c)
		}
	}
	if cmds[1].Pos.Column != 2 {
		t.Errorf("Expected column 2 for %v, got %d", cmds[1], cmds[1].Pos.Column)
	}
}

func TestParse_errors(t *testing.T) {
	var tests = [...]struct {
		code string
		kind error
		pos  string
	}{
		{"push constant", vm.ErrSyntax, "E.vm:1:1"},
		{"push constant 1 2", vm.ErrSyntax, "E.vm:1:17"},
		{"push heap 1", vm.ErrUnknownSegment, "E.vm:1:6"},
		{"push local x", vm.ErrSyntax, "E.vm:1:12"},
		{"\npop temp -1", vm.ErrInvalidIndex, "E.vm:2:10"},
		{"add 1", vm.ErrSyntax, "E.vm:1:5"},
		{"mul", vm.ErrSyntax, "E.vm:1:1"},
		{"label", vm.ErrSyntax, "E.vm:1:1"},
		{"goto 1abc", vm.ErrSyntax, "E.vm:1:6"},
		{"function Foo.bar", vm.ErrSyntax, "E.vm:1:1"},
		{"call Foo.bar -1", vm.ErrInvalidIndex, "E.vm:1:14"},
		{"call Foo bar", vm.ErrSyntax, "E.vm:1:10"},
		{"return 0", vm.ErrSyntax, "E.vm:1:8"},
		{"PUSH constant 1", vm.ErrSyntax, "E.vm:1:1"},
		{"push constant +5", vm.ErrSyntax, "E.vm:1:15"},
		{"call F.f +0", vm.ErrSyntax, "E.vm:1:10"},
		{"push constant 0x10", vm.ErrSyntax, "E.vm:1:15"},
		{"push constant -", vm.ErrSyntax, "E.vm:1:15"},
		{"push constant 99999999999999999999", vm.ErrInvalidIndex, "E.vm:1:15"},
		{"function F 0\nlabel a$b", vm.ErrSyntax, "E.vm:2:7"},
		{"goto a$b", vm.ErrSyntax, "E.vm:1:6"},
		{"if-goto $x", vm.ErrSyntax, "E.vm:1:9"},
	}
	for _, test := range tests {
		_, err := vm.ParseAll("E.vm", strings.NewReader(test.code))
		if err == nil {
			t.Errorf("%q: expected error", test.code)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("%q: expected %v, got %v", test.code, test.kind, err)
		}
		e, ok := err.(*vm.Error)
		if !ok {
			t.Errorf("%q: expected *vm.Error, got %T", test.code, err)
			continue
		}
		if s := e.Pos.String(); s != test.pos {
			t.Errorf("%q: expected error at %s, got %s", test.code, test.pos, s)
		}
	}
}

func TestParse_longLines(t *testing.T) {
	src := "push constant 1 // " + strings.Repeat("x", 100000) + "\npush constant 2\n"
	cmds, err := vm.ParseAll("L.vm", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 2 || cmds[1].Pos.Line != 2 {
		t.Fatalf("unexpected commands %v", cmds)
	}

	src = "add\n// " + strings.Repeat("x", vm.MaxLineSize) + "\n"
	_, err = vm.ParseAll("L.vm", strings.NewReader(src))
	if !errors.Is(err, vm.ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if e, ok := err.(*vm.Error); !ok || e.Pos.String() != "L.vm:2:1" {
		t.Errorf("expected error at L.vm:2:1, got %v", err)
	}
}

// The parser stops at the first error but keeps the commands read so far.
func TestParse_stopsAtError(t *testing.T) {
	p := vm.NewParser("S.vm", strings.NewReader("push constant 1\nbogus\npush constant 2\n"))
	var n int
	for p.Scan() {
		n++
	}
	if n != 1 {
		t.Errorf("Expected 1 command before the error, got %d", n)
	}
	if p.Err() == nil {
		t.Fatal("Expected error")
	}
	if p.Scan() {
		t.Error("Scan must keep returning false after an error")
	}
}

func TestParse_deterministic(t *testing.T) {
	src := "function Sys.init 0\npush constant 1\ncall Foo.bar 1\nlabel L\ngoto L\n"
	a, err := vm.ParseAll("Sys.vm", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	b, err := vm.ParseAll("Sys.vm", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("different lengths %d, %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Command %d differs: %v, %v", i, a[i], b[i])
		}
	}
}

func TestCommand_String(t *testing.T) {
	src := "push static 3\npop pointer 1\nif-goto X\nfunction F.g 2\ncall F.g 0\nreturn\nlt"
	cmds, err := vm.ParseAll("", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, c := range cmds {
		got = append(got, c.String())
	}
	if s := strings.Join(got, "\n"); s != src {
		t.Errorf("Expected:\n%s\ngot:\n%s", src, s)
	}
}

func TestCommand_StackDelta(t *testing.T) {
	var tests = [...]struct {
		code  string
		delta int
	}{
		{"push constant 1", 1},
		{"pop local 0", -1},
		{"neg", 0},
		{"not", 0},
		{"add", -1},
		{"or", -1},
		{"gt", -1},
		{"label X", 0},
		{"goto X", 0},
		{"if-goto X", -1},
		{"function F.f 4", 4},
		{"call F.f 0", 1},
		{"call F.f 3", -2},
		{"return", 0},
	}
	for _, test := range tests {
		cmds, err := vm.ParseAll("", strings.NewReader(test.code))
		if err != nil {
			t.Fatal(err)
		}
		if d := cmds[0].StackDelta(); d != test.delta {
			t.Errorf("%s: expected delta %d, got %d", test.code, test.delta, d)
		}
	}
}

func TestIsSymbol(t *testing.T) {
	for _, s := range []string{"a", "Main.fib", "IF_TRUE0", "$x", "f$L", "a:b", "_1"} {
		if !vm.IsSymbol(s) {
			t.Errorf("%q should be a valid symbol", s)
		}
	}
	for _, s := range []string{"", "1a", "a-b", "a b", "é"} {
		if vm.IsSymbol(s) {
			t.Errorf("%q should not be a valid symbol", s)
		}
	}
}
