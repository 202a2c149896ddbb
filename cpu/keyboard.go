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
	"io"
	"sync"
)

// Hack key codes for non-printable keys.
const (
	KeyNewline   = 128
	KeyBackspace = 129
	KeyEscape    = 140
)

// holdCycles is the number of KBD reads during which a key stays pressed.
const holdCycles = 64

// keyboard reads bytes from an io.Reader in the background and presents them
// to the CPU as key presses.
type keyboard struct {
	keys    chan byte
	done    chan struct{}
	once    sync.Once
	current Cell
	hold    int
}

func newKeyboard(r io.Reader) *keyboard {
	k := &keyboard{keys: make(chan byte, 64), done: make(chan struct{})}
	go func() {
		var b [1]byte
		for {
			n, err := r.Read(b[:])
			if n > 0 {
				select {
				case k.keys <- b[0]:
				case <-k.done:
					return
				}
			}
			if err != nil {
				return
			}
			select {
			case <-k.done:
				return
			default:
			}
		}
	}()
	return k
}

// KeyCode returns the Hack key code for byte b.
func KeyCode(b byte) Cell {
	switch b {
	case '\r', '\n':
		return KeyNewline
	case 8, 127:
		return KeyBackspace
	case 27:
		return KeyEscape
	}
	return Cell(b)
}

// poll returns the key currently pressed, or 0.
func (k *keyboard) poll() Cell {
	if k.hold > 0 {
		k.hold--
		return k.current
	}
	select {
	case b := <-k.keys:
		k.current, k.hold = KeyCode(b), holdCycles
	default:
		k.current = 0
	}
	return k.current
}

func (k *keyboard) stop() { k.once.Do(func() { close(k.done) }) }
