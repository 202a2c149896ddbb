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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/hackvm/codegen"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	outFileName string
	configFile  string
	progress    bool
	comments    bool
	strict      bool
)

var translateCmd = &cobra.Command{
	Use:   "translate source",
	Short: "Translate VM code to Hack assembly",
	Long: `Translate translates a .vm file, or all .vm files of a directory, to
Hack assembly. Directories are translated as a complete program, starting with
the bootstrap code.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		units, opts, dir, err := load(args[0])
		if err != nil {
			return err
		}
		out := outFileName
		if out == "" {
			out = asmFileName(args[0], dir)
		}
		logger.Debug("translate", "source", args[0], "output", out, "units", len(units))
		return create(out, func(w io.Writer) error {
			return translate(w, units, opts)
		})
	},
}

func init() {
	translateCmd.Flags().StringVarP(&outFileName, "output", "o", "", "output `filename`")
	translateCmd.Flags().BoolVar(&progress, "progress", false, "show progress")
	addSourceFlags(translateCmd)
	rootCmd.AddCommand(translateCmd)
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "project configuration `filename`")
	cmd.Flags().BoolVar(&comments, "comments", false, "annotate the output with VM commands")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject labels outside of functions")
}

// load reads the VM units of a file or directory along with the translation
// options from the project configuration and command line.
func load(name string) (units []codegen.Unit, opts []codegen.Option, dir bool, err error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, false, errors.Wrap(err, "stat failed")
	}
	dir = fi.IsDir()
	cfg := configFile
	if cfg == "" && dir {
		cfg = filepath.Join(name, codegen.ConfigFile)
		if _, err = os.Stat(cfg); err != nil {
			cfg = ""
		}
	}
	c := &codegen.Config{}
	if cfg != "" {
		if c, err = codegen.LoadConfig(cfg); err != nil {
			return nil, nil, dir, err
		}
		logger.Debug("configuration loaded", "file", cfg)
	}
	if dir {
		units, err = codegen.LoadDir(name, c)
	} else {
		var u codegen.Unit
		u, err = codegen.LoadFile(name)
		units = []codegen.Unit{u}
	}
	if err != nil {
		return nil, nil, dir, err
	}
	opts = append(c.Options(dir), codegen.Logger(logger))
	if comments {
		opts = append(opts, codegen.Comments(true))
	}
	if strict {
		opts = append(opts, codegen.Strict(true))
	}
	return units, opts, dir, nil
}

func translate(w io.Writer, units []codegen.Unit, opts []codegen.Option) error {
	tw, err := codegen.NewWriter(w, opts...)
	if err != nil {
		return err
	}
	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(len(units)), "translating")
	}
	// no units: bootstrap only
	if err = tw.Translate(); err != nil {
		return err
	}
	for _, u := range units {
		if bar != nil {
			bar.Describe(u.Name)
		}
		if err = tw.TranslateUnit(u.Name, bytes.NewReader(u.Source)); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	logger.Debug("translation done", "labels", tw.Labels())
	return tw.Flush()
}

func asmFileName(src string, dir bool) string {
	if dir {
		base := filepath.Base(src)
		if abs, err := filepath.Abs(src); err == nil {
			base = filepath.Base(abs)
		}
		return filepath.Join(src, base+".asm")
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".asm"
}

// create calls write with a new file. The file is removed if write fails.
func create(fileName string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return write(f)
}
