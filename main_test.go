// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gxview/fixture"
	"gxview/math"
	"gxview/math/vec"
	"gxview/shader"

	"github.com/chewxy/math32"
)

func buildScene(t *testing.T, cfg config) *session {
	t.Helper()
	fix, err := fixture.Load("fixture/testdata/scene.yaml")
	if err != nil {
		t.Fatal(err)
	}
	cfg.workers = 4
	s := newSession(cfg, fix)
	if err := s.build(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBuildScene(t *testing.T) {
	s := buildScene(t, config{})
	for i, m := range s.materials {
		if m == nil {
			t.Errorf("material %d skipped", i)
		}
	}
	if s.programs.Len() != 2 {
		t.Errorf("%d programs, want 2", s.programs.Len())
	}
	if len(s.groups) != 2 || s.loaders.Len() != 2 {
		t.Fatalf("%d groups %d loaders, want 2 and 2", len(s.groups), s.loaders.Len())
	}
	quad := s.meshes[0]
	want := math.Bounds{}
	want.Add(vec.Vec3{X: -1, Y: -1})
	want.Add(vec.Vec3{X: 1, Y: 1})
	if quad.bounds != want {
		t.Errorf("quad bounds = %+v, want %+v", quad.bounds, want)
	}
	tri := s.meshes[1].bounds
	if tri.Max != (vec.Vec3{X: 100, Y: 100}) {
		t.Errorf("tri bounds = %+v", tri)
	}
	proj, view := s.view()
	if proj.At(3, 2) != -1 || view.At(2, 3) >= 0 {
		t.Errorf("camera proj %v view %v", proj, view)
	}
}

func TestViewLooksAtSceneCenter(t *testing.T) {
	s := buildScene(t, config{})
	var b math.Bounds
	for _, m := range s.meshes {
		b.Add(m.bounds.Min)
		b.Add(m.bounds.Max)
	}
	c := b.Center()
	_, view := s.view()
	m := view.Rows3()
	x, y, z := m.Apply(c.X, c.Y, c.Z)
	d := 2.5*b.Radius() + s.fix.Projection.Near
	tol := d * 1e-4
	if math32.Abs(x) > tol || math32.Abs(y) > tol || math32.Abs(z+d) > tol {
		t.Errorf("scene center maps to (%v, %v, %v), want (0, 0, %v)", x, y, z, -d)
	}
	// the camera is not axis aligned
	if math32.Abs(view.At(0, 2)) < 0.1 || math32.Abs(view.At(1, 2)) < 0.1 {
		t.Errorf("view has no pitch or yaw: %v", view)
	}
}

func TestBuildSkipsBrokenItems(t *testing.T) {
	fix, err := fixture.Parse([]byte(`
materials:
  - name: ok
    tev_stages: [{color_in: [15, 15, 15, 12], alpha_in: [7, 7, 7, 7]}]
  - name: no_stages
meshes:
  - name: bad
    attrs: {POS: {count: 1, type: f32}}
    commands: {hex: "900003 0000"}
`), ".")
	if err != nil {
		t.Fatal(err)
	}
	s := newSession(config{workers: 1}, fix)
	if err := s.build(); err != nil {
		t.Fatal(err)
	}
	if s.materials[0] == nil || s.materials[1] != nil {
		t.Errorf("materials = %v", s.materials)
	}
	if s.meshes[0] != nil || len(s.groups) != 0 {
		t.Errorf("broken mesh was kept")
	}
}

func TestOutputAndCache(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(dir, "programs.bin")
	s := buildScene(t, config{out: dir, cache: cache})
	for _, name := range []string{"textured.vert", "textured.frag", "konst.vert", "konst.frag"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(b), "#version 300 es") {
			t.Errorf("%s does not start with a version line", name)
		}
	}
	if err := s.saveSources(); err != nil {
		t.Fatal(err)
	}

	fix, err := fixture.Parse([]byte("materials: []\n"), dir)
	if err != nil {
		t.Fatal(err)
	}
	warm := newSession(config{cache: cache, workers: 1}, fix)
	warm.warm()
	if warm.programs.Len() != 2 {
		t.Errorf("warm cache has %d programs, want 2", warm.programs.Len())
	}
	f, err := os.Open(cache)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	progs, err := shader.ReadSources(f)
	if err != nil || len(progs) != 2 {
		t.Errorf("ReadSources = %d programs, %v", len(progs), err)
	}
}
