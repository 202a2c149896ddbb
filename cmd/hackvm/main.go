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
	"fmt"
	"log/slog"
	"os"

	"github.com/db47h/hackvm/cpu"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	logger  = slog.New(slog.DiscardHandler)
	machine *cpu.Instance // set by the run command, for diagnostics
)

var rootCmd = &cobra.Command{
	Use:   "hackvm",
	Short: "Hack VM translator, assembler and emulator",
	Long: `hackvm translates Hack VM programs to Hack assembly, assembles them
and runs them on an emulated Hack computer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug diagnostics")
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if machine != nil {
		machine.Dump(os.Stderr)
	}
	os.Exit(1)
}

func main() {
	atExit(rootCmd.Execute())
}
