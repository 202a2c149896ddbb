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
	"strconv"
	"text/scanner"

	"github.com/db47h/hackvm/lang/vm"
)

// Prefixes of generated labels.
const (
	prefixTrue   = "TRUE"
	prefixEnd    = "END"
	prefixReturn = "RET"
)

// declare records a label declaration at pos. Declaring the same name twice is
// an error.
func (w *Writer) declare(name string, pos scanner.Position) error {
	if prev, ok := w.labels[name]; ok {
		return vm.Errorf(pos, vm.ErrDuplicateLabel, "%s, previous declaration here: %s", name, prev)
	}
	w.labels[name] = pos
	return nil
}

// generate returns a fresh label name for each prefix, all sharing the same
// counter value. Counter values that would clash with an already declared
// label are skipped. The generated names are declared at pos.
func (w *Writer) generate(pos scanner.Position, prefixes ...string) []string {
	names := make([]string, len(prefixes))
next:
	for {
		w.counter++
		n := strconv.Itoa(w.counter)
		for i, p := range prefixes {
			names[i] = p + "." + n
			if _, ok := w.labels[names[i]]; ok {
				continue next
			}
		}
		break
	}
	for _, n := range names {
		w.labels[n] = pos
	}
	return names
}

// qualify returns the function-scoped name of a user label.
func (w *Writer) qualify(cmd vm.Command) (string, error) {
	if !w.inFunc && w.strict {
		return "", vm.Errorf(cmd.Pos, vm.ErrNoFunction, "%v", cmd)
	}
	return w.function + "$" + cmd.Name, nil
}

// Labels returns the number of labels declared so far.
func (w *Writer) Labels() int { return len(w.labels) }
