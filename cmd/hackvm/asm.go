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
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/hackvm/asm"
	"github.com/db47h/hackvm/cpu"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm source.asm",
	Short: "Assemble Hack assembly to a .hack file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := assemble(args[0])
		if err != nil {
			return err
		}
		out := outFileName
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".hack"
		}
		logger.Debug("assembled", "source", args[0], "output", out, "words", len(rom))
		return cpu.Save(out, rom)
	},
}

var disasmCmd = &cobra.Command{
	Use:   "disasm program.hack",
	Short: "Print a listing of a .hack file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := cpu.Load(args[0])
		if err != nil {
			return err
		}
		w := bufio.NewWriter(os.Stdout)
		if err = asm.DisassembleAll(rom, 0, w); err != nil {
			return err
		}
		return errors.Wrap(w.Flush(), "write failed")
	},
}

func init() {
	asmCmd.Flags().StringVarP(&outFileName, "output", "o", "", "output `filename`")
	rootCmd.AddCommand(asmCmd, disasmCmd)
}

func assemble(fileName string) ([]cpu.Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(fileName, bufio.NewReader(f))
}
