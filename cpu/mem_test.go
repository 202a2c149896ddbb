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
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/hackvm/cpu"
)

func TestHack(t *testing.T) {
	rom := []cpu.Cell{0, 1, -1, 0x7fff, -0x8000}
	var b bytes.Buffer
	if err := cpu.WriteHack(&b, rom); err != nil {
		t.Fatal(err)
	}
	exp := "0000000000000000\n0000000000000001\n1111111111111111\n0111111111111111\n1000000000000000\n"
	if s := b.String(); s != exp {
		t.Fatalf("Expected:\n%s\ngot:\n%s", exp, s)
	}
	got, err := cpu.ReadHack(&b)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rom) {
		t.Fatalf("Expected %d cells, got %d", len(rom), len(got))
	}
	for i := range rom {
		if got[i] != rom[i] {
			t.Errorf("%d: expected %d, got %d", i, rom[i], got[i])
		}
	}
}

func TestReadHack_errors(t *testing.T) {
	for _, code := range []string{"0101", "000000000000000x", "00000000000000000"} {
		if _, err := cpu.ReadHack(strings.NewReader(code)); err == nil {
			t.Errorf("%q: expected error", code)
		}
	}
	rom, err := cpu.ReadHack(strings.NewReader("\n  0000000000000111  \n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rom) != 1 || rom[0] != 7 {
		t.Errorf("unexpected result %v", rom)
	}
}
