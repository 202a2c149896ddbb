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

package vm

import (
	"fmt"
	"text/scanner"

	"github.com/pkg/errors"
)

// Error kinds. Errors returned by this package and by package codegen unwrap
// to one of these.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrUnknownSegment = errors.New("unknown segment")
	ErrInvalidIndex   = errors.New("invalid index")
	ErrInvalidSegment = errors.New("invalid segment for command")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrNoFunction     = errors.New("command outside of function")
)

// Error is a positioned translation error.
type Error struct {
	Pos scanner.Position
	Err error
	Msg string
}

func (e *Error) Error() string {
	s := e.Pos.String() + ": " + e.Err.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error { return e.Err }

// Errorf returns an *Error of the given kind at pos.
func Errorf(pos scanner.Position, kind error, format string, args ...interface{}) error {
	return &Error{pos, kind, fmt.Sprintf(format, args...)}
}
