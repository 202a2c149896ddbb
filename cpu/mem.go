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

package cpu

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadHack reads a program in the .hack text format: one instruction per
// line, written as 16 binary digits. Blank lines are ignored.
func ReadHack(r io.Reader) ([]Cell, error) {
	var rom []Cell
	s := bufio.NewScanner(r)
	var line int
	for s.Scan() {
		line++
		t := strings.TrimSpace(s.Text())
		if t == "" {
			continue
		}
		if len(t) != 16 {
			return nil, errors.Errorf("line %d: expected 16 binary digits, got %q", line, t)
		}
		var v uint16
		for _, c := range t {
			switch c {
			case '0', '1':
				v = v<<1 | uint16(c-'0')
			default:
				return nil, errors.Errorf("line %d: invalid binary digit %q", line, c)
			}
		}
		rom = append(rom, Cell(v))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	if len(rom) > ROMSize {
		return nil, errTooLarge(len(rom))
	}
	return rom, nil
}

// WriteHack writes a program in the .hack text format.
func WriteHack(w io.Writer, rom []Cell) error {
	bw := bufio.NewWriter(w)
	var b [17]byte
	b[16] = '\n'
	for _, c := range rom {
		v := uint16(c)
		for k := 15; k >= 0; k-- {
			b[k] = '0' + byte(v&1)
			v >>= 1
		}
		if _, err := bw.Write(b[:]); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return errors.Wrap(bw.Flush(), "write failed")
}

// Load loads a .hack program from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	rom, err := ReadHack(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return rom, nil
}

// Save saves a program to file fileName in the .hack format.
func Save(fileName string, rom []Cell) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = errors.Wrap(e, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return WriteHack(f, rom)
}
