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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/hackvm/codegen"
)

func TestParseConfig(t *testing.T) {
	c, err := codegen.ParseConfig(strings.NewReader(`
bootstrap: false
entry: Main.main
stack_base: 300
strict: true
units: [Sys.vm, Main.vm]
`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Bootstrap == nil || *c.Bootstrap || c.Entry != "Main.main" || c.StackBase == nil || *c.StackBase != 300 || !c.Strict || c.Comments {
		t.Errorf("unexpected config %+v", c)
	}
	if len(c.Units) != 2 || c.Units[0] != "Sys.vm" {
		t.Errorf("unexpected units %v", c.Units)
	}
	// the file setting overrides the caller's default
	if len(c.Options(true)) != 5 {
		t.Errorf("expected 5 options, got %d", len(c.Options(true)))
	}
	var b bytes.Buffer
	if err = codegen.Translate(&b, nil, c.Options(true)...); err != nil || b.Len() != 0 {
		t.Errorf("bootstrap not disabled: %v\n%s", err, b.Bytes())
	}

	c, err = codegen.ParseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Options(false)) != 3 {
		t.Errorf("expected 3 options, got %d", len(c.Options(false)))
	}
}

func TestParseConfig_errors(t *testing.T) {
	for _, src := range []string{
		"foo: bar\n",
		"stack_base: abc\n",
		"units: [Main.jack]\n",
		"units: [../Main.vm]\n",
		"bootstrap: [\n",
	} {
		if _, err := codegen.ParseConfig(strings.NewReader(src)); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
	if _, err := codegen.LoadConfig(filepath.Join(t.TempDir(), codegen.ConfigFile)); err == nil {
		t.Error("expected error for missing file")
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for n, src := range files {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func unitNames(units []codegen.Unit) string {
	var n []string
	for _, u := range units {
		n = append(n, u.Name)
	}
	return strings.Join(n, ",")
}

func TestLoadDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"Sys.vm":    fibSys,
		"Main.vm":   fibMain,
		"Array.vm":  "function Array.new 0\npush constant 0\nreturn\n",
		"README.md": "not a vm file",
	})
	if err := os.Mkdir(filepath.Join(dir, "sub.vm"), 0755); err != nil {
		t.Fatal(err)
	}
	units, err := codegen.LoadDir(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := unitNames(units); n != "Array.vm,Main.vm,Sys.vm" {
		t.Errorf("unexpected units %s", n)
	}
	units, err = codegen.LoadDir(dir, &codegen.Config{Units: []string{"Sys.vm", "Main.vm"}})
	if err != nil {
		t.Fatal(err)
	}
	if n := unitNames(units); n != "Sys.vm,Main.vm" {
		t.Errorf("unexpected units %s", n)
	}
	if string(units[1].Source) != fibMain {
		t.Error("source mismatch")
	}
	if _, err = codegen.LoadDir(dir, &codegen.Config{Units: []string{"Missing.vm"}}); err == nil {
		t.Error("expected error for missing unit")
	}
	if _, err = codegen.LoadDir(t.TempDir(), nil); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := writeFiles(t, map[string]string{codegen.ConfigFile: "entry: Main.main\ncomments: true\n"})
	c, err := codegen.LoadConfig(filepath.Join(dir, codegen.ConfigFile))
	if err != nil {
		t.Fatal(err)
	}
	if c.Entry != "Main.main" || !c.Comments || c.Bootstrap != nil {
		t.Errorf("unexpected config %+v", c)
	}
}
