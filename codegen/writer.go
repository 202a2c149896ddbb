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
	"bufio"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/hackvm/internal/hvi"
	"github.com/db47h/hackvm/lang/vm"
	"github.com/pkg/errors"
)

// Defaults for the bootstrap code.
const (
	DefaultStackBase = 256
	DefaultEntry     = "Sys.init"
)

// maxLiteral is the largest value an A-instruction can load.
const maxLiteral = 1<<15 - 1

// Writer translates VM commands to Hack assembly. A Writer holds the state of
// a whole program translation: the current file and function, the label
// counter and the set of labels declared so far. It must not be used
// concurrently.
type Writer struct {
	bw        *bufio.Writer
	w         *hvi.ErrWriter
	file      string
	stem      string
	function  string
	inFunc    bool
	counter   int
	labels    map[string]scanner.Position
	bootstrap bool
	entry     string
	stackBase int
	strict    bool
	comments  bool
	log       *slog.Logger
}

// Option interface
type Option func(*Writer) error

// Bootstrap enables or disables the bootstrap code emitted by Translate before
// the first unit. The default is false.
func Bootstrap(enable bool) Option {
	return func(w *Writer) error { w.bootstrap = enable; return nil }
}

// Entry sets the function called by the bootstrap code. The default is
// "Sys.init".
func Entry(name string) Option {
	return func(w *Writer) error {
		if !vm.IsSymbol(name) {
			return errors.Errorf("invalid entry function name %q", name)
		}
		w.entry = name
		return nil
	}
}

// StackBase sets the initial value of SP set by the bootstrap code. The
// default is 256.
func StackBase(addr int) Option {
	return func(w *Writer) error {
		if addr < 0 || addr > maxLiteral {
			return errors.Errorf("stack base %d out of range", addr)
		}
		w.stackBase = addr
		return nil
	}
}

// Strict makes label, goto and if-goto commands outside of any function an
// error. By default, such labels are scoped to an empty function name and
// emitted as $label.
func Strict(strict bool) Option {
	return func(w *Writer) error { w.strict = strict; return nil }
}

// Comments enables the output of each VM command as a comment before its
// assembly code.
func Comments(enable bool) Option {
	return func(w *Writer) error { w.comments = enable; return nil }
}

// Logger sets the logger used to report translation progress at debug level.
func Logger(l *slog.Logger) Option {
	return func(w *Writer) error {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		w.log = l
		return nil
	}
}

// NewWriter returns a new Writer writing assembly to out. Output is buffered;
// call Flush when done.
func NewWriter(out io.Writer, opts ...Option) (*Writer, error) {
	bw := bufio.NewWriter(out)
	w := &Writer{
		bw:        bw,
		w:         hvi.NewErrWriter(bw),
		labels:    make(map[string]scanner.Position),
		entry:     DefaultEntry,
		stackBase: DefaultStackBase,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// SetFileName informs the Writer that the translation of a new VM file has
// started. The file stem (the base name without its extension) qualifies
// static variables. The current function is reset.
func (w *Writer) SetFileName(name string) {
	w.file = name
	w.stem = Stem(name)
	w.function = ""
	w.inFunc = false
}

// Stem returns the base name of a file name without its extension.
func Stem(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}

// Flush writes any buffered output and returns the first write error.
func (w *Writer) Flush() error {
	if w.w.Err != nil {
		return w.w.Err
	}
	return errors.Wrap(w.bw.Flush(), "flush failed")
}

// Err returns the first write error.
func (w *Writer) Err() error { return w.w.Err }

func (w *Writer) emit(lines ...string) {
	for _, l := range lines {
		w.w.WriteLine(l)
	}
}

func at(sym string) string { return "@" + sym }

func atInt(v int) string { return "@" + strconv.Itoa(v) }

// WriteCommand writes the assembly code for a single command.
func (w *Writer) WriteCommand(cmd vm.Command) error {
	if w.comments {
		w.emit("// " + cmd.String())
	}
	var err error
	switch cmd.Op {
	case vm.OpAdd, vm.OpSub, vm.OpAnd, vm.OpOr:
		w.writeBinary(cmd.Op)
	case vm.OpNeg, vm.OpNot:
		w.writeUnary(cmd.Op)
	case vm.OpEq, vm.OpGt, vm.OpLt:
		err = w.writeCompare(cmd)
	case vm.OpPush:
		err = w.writePush(cmd)
	case vm.OpPop:
		err = w.writePop(cmd)
	case vm.OpLabel:
		err = w.writeLabel(cmd)
	case vm.OpGoto:
		err = w.writeGoto(cmd)
	case vm.OpIfGoto:
		err = w.writeIf(cmd)
	case vm.OpFunction:
		err = w.writeFunction(cmd)
	case vm.OpCall:
		err = w.writeCall(cmd.Name, cmd.N, cmd.Pos)
	case vm.OpReturn:
		w.writeReturn()
	default:
		err = vm.Errorf(cmd.Pos, vm.ErrSyntax, "unsupported command %v", cmd.Op)
	}
	if err != nil {
		return err
	}
	return w.w.Err
}
