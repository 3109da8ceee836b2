// SPDX-License-Identifier: GPL-2.0-or-later

package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"gxview/gx"
	"gxview/shader"
	"gxview/vtx"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

func loadScene(t *testing.T) *File {
	t.Helper()
	f, err := Load("testdata/scene.yaml")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadMaterials(t *testing.T) {
	f := loadScene(t)
	if f.Projection.FovY != 45 || f.Projection.Far != 100 {
		t.Errorf("projection = %+v", f.Projection)
	}
	if len(f.Materials) != 2 {
		t.Fatalf("got %d materials, want 2", len(f.Materials))
	}
	m, err := f.Materials[0].GX()
	if err != nil {
		t.Fatal(err)
	}
	if m.CullMode != gx.CullNone || len(m.TevStages) != 1 || len(m.TexGens) != 1 {
		t.Errorf("textured = %+v", m)
	}
	st := m.TevStages[0]
	if st.TexMap != 2 || st.TexCoord != 0 || st.Channel != gx.Color0A0 || st.ColorInB != gx.CCTexC {
		t.Errorf("stage 0 = %+v", st)
	}
	if m.TexGens[0].Matrix != gx.TexGenTexMtx0 || m.TexGens[0].PostMatrix != gx.PostTexMtxIdentity {
		t.Errorf("texgen = %+v", m.TexGens[0])
	}
	if m.AlphaTest.Op != gx.AlphaOpOr || m.AlphaTest.CompareA != gx.CompareGreater || m.AlphaTest.RefA != 128 {
		t.Errorf("alpha test = %+v", m.AlphaTest)
	}
	if !m.Rop.DepthTest || m.Rop.DepthWrite || m.Rop.Blend.DstFactor != gx.BlendInvSrcAlpha {
		t.Errorf("rop = %+v", m.Rop)
	}
	p, err := shader.Generate(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Samplers) != 1 || p.Samplers[0] != 2 {
		t.Errorf("samplers = %v", p.Samplers)
	}

	k, err := f.Materials[1].GX()
	if err != nil {
		t.Fatal(err)
	}
	if k.TevStages[0].TexMap != gx.TexMapNull || k.CullMode != gx.CullBack {
		t.Errorf("konst defaults = %+v", k)
	}
	want := gx.SwapTable{gx.ChanA, gx.ChanA, gx.ChanA, gx.ChanR}
	if len(k.SwapTables) != 2 || k.SwapTables[1] != want {
		t.Errorf("swap tables = %v", k.SwapTables)
	}
	if _, err := shader.Generate(k); err != nil {
		t.Error(err)
	}
}

func TestMaterialParams(t *testing.T) {
	f := loadScene(t)
	p, err := f.Materials[0].Params()
	if err != nil {
		t.Fatal(err)
	}
	if got := p.KonstColor[0]; got != [4]float32{1, 0, 0, 128.0 / 255} {
		t.Errorf("konst 0 = %v", got)
	}
	if got := p.KonstColor[1]; got != [4]float32{1, 0.5, 0, 1} {
		t.Errorf("konst 1 = %v, want clamped", got)
	}
	if got := p.TexMtx[0].M[0]; got != [4]float32{2, 0, 0, -0.25} {
		t.Errorf("tex matrix row 0 = %v", got)
	}
	if p.ColorMatReg[0] != [4]float32{1, 1, 1, 1} {
		t.Errorf("unset material color = %v", p.ColorMatReg[0])
	}
}

func TestMeshes(t *testing.T) {
	f := loadScene(t)
	for _, tc := range []struct {
		name      string
		triangles int
		stride    int
	}{
		{"quad", 2, 28},
		{"tri", 1, 8},
	} {
		var m *Mesh
		for i := range f.Meshes {
			if f.Meshes[i].Name == tc.name {
				m = &f.Meshes[i]
			}
		}
		if m == nil {
			t.Fatalf("mesh %s missing", tc.name)
		}
		fmts, desc, arrays, err := m.Tables()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		cmd, err := m.CommandStream()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		l, err := vtx.NewLoader(fmts, desc)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		d, err := l.Unpack(cmd, arrays)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if d.TriangleCount != tc.triangles || l.Layout.Stride != tc.stride {
			t.Errorf("%s: %d triangles stride %d, want %d %d",
				tc.name, d.TriangleCount, l.Layout.Stride, tc.triangles, tc.stride)
		}
	}
	if f.Meshes[1].Draws("textured") || !f.Meshes[1].Draws("konst") || !f.Meshes[0].Draws("textured") {
		t.Errorf("material filter")
	}
}

func TestLZ4Blob(t *testing.T) {
	dir := t.TempDir()
	want := []byte{0x90, 0, 3, 1, 2, 3, 4, 5, 6}
	out, err := os.Create(filepath.Join(dir, "cmd.bin.lz4"))
	if err != nil {
		t.Fatal(err)
	}
	w := lz4.NewWriter(out)
	if _, err := w.Write(want); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	out.Close()
	if err := os.WriteFile(filepath.Join(dir, "raw.bin"), want, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"cmd.bin.lz4", "raw.bin"} {
		b := Blob{File: name}
		got, err := b.Read(dir)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if string(got) != string(want) {
			t.Errorf("%s: got % x, want % x", name, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "materials:\n  - name: a\n    colour: red\n"},
		{"duplicate name", "materials:\n  - name: a\n  - name: a\n"},
		{"missing name", "materials:\n  - cull: back\n"},
		{"bad color", "materials:\n  - name: a\n    konst: [\"#12\"]\n"},
		{"parent dir name", "materials:\n  - name: ../x\n"},
		{"absolute name", "materials:\n  - name: /tmp/x\n"},
		{"dot name", "materials:\n  - name: ..\n"},
		{"backslash name", "materials:\n  - name: 'a\\b'\n"},
	}
	for _, tc := range tests {
		if _, err := Parse([]byte(tc.yaml), "."); !errors.Is(err, ErrBadFixture) {
			t.Errorf("%s: got %v, want ErrBadFixture", tc.name, err)
		}
	}

	f, err := Parse([]byte("materials:\n  - name: a\n    cull: sideways\n"), ".")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Materials[0].GX(); !errors.Is(err, ErrBadFixture) {
		t.Errorf("bad cull: got %v, want ErrBadFixture", err)
	}
	b := Blob{Hex: "zz"}
	if _, err := b.Read("."); !errors.Is(err, ErrBadFixture) {
		t.Errorf("bad hex: got %v", err)
	}
}
