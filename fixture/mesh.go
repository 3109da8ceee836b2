// SPDX-License-Identifier: GPL-2.0-or-later

package fixture

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gxview/gx"
	"gxview/vtx"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Blob is binary data given inline as hex or as a file. Files ending in
// .lz4 are LZ4 frames.
type Blob struct {
	Hex  string `yaml:"hex"`
	File string `yaml:"file"`
}

func (b *Blob) Read(dir string) ([]byte, error) {
	switch {
	case b.Hex != "" && b.File != "":
		return nil, errors.Wrap(ErrBadFixture, "blob has both hex and file")
	case b.Hex != "":
		d, err := hex.DecodeString(strings.Join(strings.Fields(b.Hex), ""))
		if err != nil {
			return nil, errors.Wrap(ErrBadFixture, err.Error())
		}
		return d, nil
	case b.File != "":
		path := b.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open blob")
		}
		defer f.Close()
		var r io.Reader = f
		if strings.HasSuffix(path, ".lz4") {
			r = lz4.NewReader(f)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", b.File)
		}
		return d, nil
	}
	return nil, nil
}

type Attr struct {
	Mode  string     `yaml:"mode"`
	Count gx.CompCnt `yaml:"count"`
	Type  string     `yaml:"type"`
	Array *Blob      `yaml:"array"`
	// Stride of the array, zero when tightly packed
	Stride int `yaml:"stride"`
}

type Mesh struct {
	Name string `yaml:"name"`
	// keyed by slot name: PNMTXIDX, TEX0MTXIDX, POS, NRM, CLR0, TEX0 ...
	Attrs    map[string]Attr `yaml:"attrs"`
	Commands Blob            `yaml:"commands"`
	// materials drawn with this mesh, all of them if empty
	Materials []string `yaml:"materials"`

	dir string
}

var (
	attrModes = map[string]gx.AttrType{
		"direct": gx.AttrDirect, "index8": gx.AttrIndex8, "index16": gx.AttrIndex16,
	}
	numericTypes = map[string]gx.CompType{
		"u8": gx.TypeU8, "s8": gx.TypeS8, "u16": gx.TypeU16, "s16": gx.TypeS16, "f32": gx.TypeF32,
	}
	colorTypes = map[string]gx.CompType{
		"rgb565": gx.TypeRGB565, "rgb8": gx.TypeRGB8, "rgbx8": gx.TypeRGBX8,
		"rgba4": gx.TypeRGBA4, "rgba6": gx.TypeRGBA6, "rgba8": gx.TypeRGBA8,
	}
)

func slot(name string) (gx.Attr, bool) {
	for a := gx.Attr(0); a < gx.AttrMax; a++ {
		if a.String() == strings.ToUpper(name) {
			return a, true
		}
	}
	return 0, false
}

// Tables returns the vertex format, the descriptor and the indexed arrays
// of the mesh.
func (m *Mesh) Tables() (*vtx.FormatTable, *vtx.DescTable, *vtx.Arrays, error) {
	fmts := &vtx.FormatTable{}
	desc := &vtx.DescTable{}
	arrays := &vtx.Arrays{}
	for name, at := range m.Attrs {
		a, ok := slot(name)
		if !ok {
			return nil, nil, nil, errors.Wrapf(ErrBadFixture, "%s: unknown attribute %q", m.Name, name)
		}
		mode, err := lookup("addressing mode", at.Mode, gx.AttrDirect, attrModes)
		if err != nil {
			return nil, nil, nil, errors.WithMessage(err, m.Name)
		}
		types := numericTypes
		if a.IsColor() {
			types = colorTypes
		}
		typ, err := lookup("component type", at.Type, 0, types)
		if err != nil {
			return nil, nil, nil, errors.WithMessage(err, m.Name)
		}
		desc[a] = mode
		fmts[a] = vtx.AttrFormat{CompCnt: at.Count, CompType: typ}
		if at.Array != nil {
			d, err := at.Array.Read(m.dir)
			if err != nil {
				return nil, nil, nil, errors.WithMessagef(err, "%s: %v array", m.Name, a)
			}
			arrays[a] = vtx.AttrArray{Data: d, Stride: at.Stride}
		}
	}
	return fmts, desc, arrays, nil
}

func (m *Mesh) CommandStream() ([]byte, error) {
	d, err := m.Commands.Read(m.dir)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: commands", m.Name)
	}
	return d, nil
}

// Draws reports whether material name is drawn with the mesh.
func (m *Mesh) Draws(name string) bool {
	if len(m.Materials) == 0 {
		return true
	}
	for _, n := range m.Materials {
		if n == name {
			return true
		}
	}
	return false
}
