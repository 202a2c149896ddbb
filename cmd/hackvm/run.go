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

package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/cpu"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cycles int64
	dump   bool
	rawIO  bool
)

var runCmd = &cobra.Command{
	Use:   "run program",
	Short: "Run a program on the Hack computer",
	Long: `Run builds a .vm file, a directory of .vm files or a .asm file, and runs
the resulting program. .hack files are run as is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		rom, err := build(args[0])
		if err != nil {
			return err
		}
		opts := []cpu.Option{cpu.MaxCycles(cycles)}
		if rawIO {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				restore, err := setRawIO()
				if err != nil {
					return err
				}
				defer restore()
			}
			opts = append(opts, cpu.Keyboard(os.Stdin))
		}
		if machine, err = cpu.New(rom, opts...); err != nil {
			return err
		}
		err = machine.Run()
		logger.Debug("stopped", "pc", machine.PC, "instructions", machine.InstructionCount(), "halted", machine.Halted())
		if err == nil && dump {
			err = machine.Dump(os.Stdout)
		}
		return err
	},
}

func init() {
	runCmd.Flags().Int64Var(&cycles, "cycles", 0, "maximum number of instructions to run (0 for no limit)")
	runCmd.Flags().BoolVar(&dump, "dump", false, "dump registers and stack upon exit")
	runCmd.Flags().BoolVar(&rawIO, "raw", false, "feed stdin to the keyboard")
	addSourceFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func build(name string) ([]cpu.Cell, error) {
	switch filepath.Ext(name) {
	case ".hack":
		return cpu.Load(name)
	case ".asm":
		return assemble(name)
	}
	units, opts, _, err := load(name)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err = translate(&b, units, opts); err != nil {
		return nil, err
	}
	return asm.Assemble(name, &b)
}
