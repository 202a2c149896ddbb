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

package codegen

import (
	"bytes"
	"io"

	"github.com/db47h/hackvm/lang/vm"
)

// Unit is a translation unit: the contents of one VM file.
type Unit struct {
	Name   string // file name, used in error messages; its stem qualifies statics
	Source []byte
}

// TranslateUnit parses VM code from r and writes its translation. The unit
// name is set with SetFileName before the first command.
func (w *Writer) TranslateUnit(name string, r io.Reader) error {
	w.SetFileName(name)
	w.log.Debug("translating unit", "file", name, "stem", w.stem)
	p := vm.NewParser(name, r)
	var n int
	for p.Scan() {
		if err := w.WriteCommand(p.Command()); err != nil {
			return err
		}
		n++
	}
	if err := p.Err(); err != nil {
		return err
	}
	w.log.Debug("unit done", "file", name, "commands", n, "labels", len(w.labels))
	return nil
}

// Translate writes the translation of the given units in order, preceded by
// the bootstrap code if enabled.
func (w *Writer) Translate(units ...Unit) error {
	if w.bootstrap {
		if w.comments {
			w.emit("// bootstrap")
		}
		if err := w.WriteBootstrap(); err != nil {
			return err
		}
	}
	for _, u := range units {
		if err := w.TranslateUnit(u.Name, bytes.NewReader(u.Source)); err != nil {
			return err
		}
	}
	return nil
}

// Translate translates a program made of the given units and writes the
// resulting assembly to out.
func Translate(out io.Writer, units []Unit, opts ...Option) error {
	w, err := NewWriter(out, opts...)
	if err != nil {
		return err
	}
	if err = w.Translate(units...); err != nil {
		return err
	}
	return w.Flush()
}
