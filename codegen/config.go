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
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the optional project configuration file looked up
// in a source directory.
const ConfigFile = "hackvm.yaml"

// Config is a project configuration. Zero values select the defaults.
type Config struct {
	Bootstrap *bool    `yaml:"bootstrap"`
	Entry     string   `yaml:"entry"`
	StackBase *int     `yaml:"stack_base"`
	Strict    bool     `yaml:"strict"`
	Comments  bool     `yaml:"comments"`
	Units     []string `yaml:"units"`
}

// ParseConfig decodes a YAML configuration. Unknown keys are an error. An
// empty document yields an empty configuration.
func ParseConfig(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	for _, u := range c.Units {
		if filepath.Ext(u) != ".vm" || filepath.Base(u) != u {
			return nil, errors.Errorf("invalid configuration: unit %q is not a .vm file name", u)
		}
	}
	return &c, nil
}

// LoadConfig loads a configuration file.
func LoadConfig(fileName string) (*Config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	c, err := ParseConfig(f)
	return c, errors.Wrap(err, fileName)
}

// Options returns the translation options for the configuration. The
// bootstrap default is passed by the caller since it depends on whether a
// single file or a directory is translated.
func (c *Config) Options(bootstrap bool) []Option {
	if c.Bootstrap != nil {
		bootstrap = *c.Bootstrap
	}
	opts := []Option{Bootstrap(bootstrap), Strict(c.Strict), Comments(c.Comments)}
	if c.Entry != "" {
		opts = append(opts, Entry(c.Entry))
	}
	if c.StackBase != nil {
		opts = append(opts, StackBase(*c.StackBase))
	}
	return opts
}

// LoadDir reads the VM files of a directory. If the configuration lists
// units, they are read in that order. Otherwise all .vm files are read,
// sorted by name.
func LoadDir(dir string, c *Config) ([]Unit, error) {
	var names []string
	if c != nil {
		names = c.Units
	}
	if len(names) == 0 {
		ents, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrap(err, "read directory failed")
		}
		for _, e := range ents {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".vm") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
	}
	if len(names) == 0 {
		return nil, errors.Errorf("%s: no .vm files", dir)
	}
	units := make([]Unit, 0, len(names))
	for _, n := range names {
		u, err := LoadFile(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

// LoadFile reads a single VM file.
func LoadFile(fileName string) (Unit, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return Unit{}, errors.Wrap(err, "read failed")
	}
	return Unit{Name: filepath.Base(fileName), Source: src}, nil
}
