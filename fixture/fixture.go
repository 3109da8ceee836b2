// SPDX-License-Identifier: GPL-2.0-or-later

// Package fixture reads YAML descriptions of materials and meshes.
//
//	projection: {fovy: 60, near: 1, far: 10000}
//	materials:
//	  - name: lit
//	    cull: back
//	    tev_stages:
//	      - color_in: [15, 8, 10, 15]
//	        alpha_in: [7, 4, 5, 7]
//	        tex_coord: 0
//	        tex_map: 0
//	        channel: 4
//	meshes:
//	  - name: quad
//	    attrs:
//	      POS: {mode: direct, count: 1, type: f32}
//	    commands: {file: quad.bin.lz4}
package fixture

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrBadFixture = errors.New("bad fixture")

type Projection struct {
	FovY float32 `yaml:"fovy"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type File struct {
	Projection Projection `yaml:"projection"`
	Materials  []Material `yaml:"materials"`
	Meshes     []Mesh     `yaml:"meshes"`

	// dir resolves relative blob paths
	dir string
}

// Load reads a fixture file. Blob paths are relative to its directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read fixture")
	}
	f, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return f, nil
}

func Parse(data []byte, dir string) (*File, error) {
	f := &File{
		Projection: Projection{FovY: 60, Near: 1, Far: 10000},
		dir:        dir,
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(ErrBadFixture, err.Error())
	}
	names := make(map[string]bool)
	for i := range f.Materials {
		n := f.Materials[i].Name
		if n == "" || names[n] {
			return nil, errors.Wrapf(ErrBadFixture, "material %d: missing or duplicate name %q", i, n)
		}
		// names become output file names
		if n == "." || n == ".." || strings.ContainsAny(n, `/\`) {
			return nil, errors.Wrapf(ErrBadFixture, "material %d: name %q is not a file name", i, n)
		}
		names[n] = true
	}
	for i := range f.Meshes {
		f.Meshes[i].dir = dir
	}
	return f, nil
}
