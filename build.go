// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"encoding/binary"
	stdmath "math"
	"os"
	"path/filepath"

	"gxview/conlog"
	"gxview/fixture"
	"gxview/glh"
	"gxview/gx"
	"gxview/math"
	"gxview/math/vec"
	"gxview/shader"
	"gxview/vtx"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type config struct {
	fixture  string
	out      string
	validate bool
	cache    string
	workers  int
}

type material struct {
	name   string
	prog   *shader.Program
	gl     *glh.Program
	state  shader.RenderState
	params *shader.MaterialParams
}

type mesh struct {
	src    *fixture.Mesh
	layout *vtx.Layout
	data   *vtx.LoadedVertexData
	bounds math.Bounds
}

// meshGroup is every mesh sharing one layout, coalesced into one buffer.
type meshGroup struct {
	layout *vtx.Layout
	meshes []*mesh
	data   *vtx.Coalesced
}

type session struct {
	cfg      config
	fix      *fixture.File
	loaders  *vtx.LoaderCache
	programs *shader.ProgramCache[*glh.Program]

	// indexed like the fixture, nil for skipped items
	materials []*material
	meshes    []*mesh
	groups    []*meshGroup
}

func newSession(cfg config, fix *fixture.File) *session {
	s := &session{
		cfg:       cfg,
		fix:       fix,
		loaders:   vtx.NewLoaderCache(),
		materials: make([]*material, len(fix.Materials)),
		meshes:    make([]*mesh, len(fix.Meshes)),
	}
	s.programs = shader.NewProgramCache(s.compile)
	return s
}

func (s *session) compile(p *shader.Program) (*glh.Program, error) {
	if !s.cfg.validate {
		return nil, nil
	}
	var prog *glh.Program
	err := mainthread.CallErr(func() error {
		var err error
		prog, err = glh.NewProgram(p)
		return err
	})
	if ce := (*glh.CompileError)(nil); errors.As(err, &ce) {
		conlog.Logger().Debug("driver rejected program", "dump", ce.Dump())
	}
	return prog, err
}

func (s *session) buildMaterial(fm *fixture.Material) (*material, error) {
	gm, err := fm.GX()
	if err != nil {
		return nil, err
	}
	prog, err := shader.Generate(gm)
	if err != nil {
		return nil, err
	}
	state, err := shader.RenderStateFor(gm)
	if err != nil {
		return nil, err
	}
	params, err := fm.Params()
	if err != nil {
		return nil, err
	}
	compiled, err := s.programs.Get(prog)
	if err != nil {
		return nil, err
	}
	return &material{
		name:   fm.Name,
		prog:   prog,
		gl:     compiled,
		state:  state,
		params: params,
	}, nil
}

func (s *session) buildMesh(fm *fixture.Mesh) (*mesh, error) {
	fmts, desc, arrays, err := fm.Tables()
	if err != nil {
		return nil, err
	}
	cmd, err := fm.CommandStream()
	if err != nil {
		return nil, err
	}
	l, err := s.loaders.Get(fmts, desc)
	if err != nil {
		return nil, err
	}
	d, err := l.Unpack(cmd, arrays)
	if err != nil {
		return nil, err
	}
	return &mesh{
		src:    fm,
		layout: l.Layout,
		data:   d,
		bounds: positionBounds(l.Layout, d),
	}, nil
}

// build turns every material and mesh of the fixture into programs and
// vertex data. Items that fail are logged and skipped.
func (s *session) build() error {
	var g errgroup.Group
	g.SetLimit(s.cfg.workers)
	log := conlog.Logger()
	for i := range s.fix.Materials {
		fm := &s.fix.Materials[i]
		g.Go(func() error {
			m, err := s.buildMaterial(fm)
			if err != nil {
				log.Warn("material skipped", "material", fm.Name, "err", err)
				return nil
			}
			s.materials[i] = m
			return s.writeSource(m)
		})
	}
	for i := range s.fix.Meshes {
		fm := &s.fix.Meshes[i]
		g.Go(func() error {
			m, err := s.buildMesh(fm)
			if err != nil {
				log.Warn("mesh skipped", "mesh", fm.Name, "err", err)
				return nil
			}
			s.meshes[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.coalesce()
	return nil
}

func (s *session) coalesce() {
	byLayout := make(map[*vtx.Layout]*meshGroup)
	for _, m := range s.meshes {
		if m == nil {
			continue
		}
		grp, ok := byLayout[m.layout]
		if !ok {
			grp = &meshGroup{layout: m.layout}
			byLayout[m.layout] = grp
			s.groups = append(s.groups, grp)
		}
		grp.meshes = append(grp.meshes, m)
	}
	for _, grp := range s.groups {
		datas := make([]*vtx.LoadedVertexData, len(grp.meshes))
		for i, m := range grp.meshes {
			datas[i] = m.data
		}
		grp.data = vtx.Coalesce(datas)
	}
}

func (s *session) writeSource(m *material) error {
	if s.cfg.out == "" {
		return nil
	}
	base := filepath.Join(s.cfg.out, m.name)
	if err := os.WriteFile(base+".vert", []byte(m.prog.Vert), 0o644); err != nil {
		return errors.Wrap(err, "write vertex source")
	}
	if err := os.WriteFile(base+".frag", []byte(m.prog.Frag), 0o644); err != nil {
		return errors.Wrap(err, "write fragment source")
	}
	return nil
}

// positionBounds reads back the unpacked positions of d.
func positionBounds(l *vtx.Layout, d *vtx.LoadedVertexData) math.Bounds {
	var b math.Bounds
	al, ok := l.Attr(gx.AttrPos)
	if !ok {
		return b
	}
	size := al.Size / al.CompCount
	for v := 0; v < d.VertexCount; v++ {
		src := d.Vertices[v*l.Stride+al.Offset:]
		var p [3]float32
		for c := 0; c < al.CompCount; c++ {
			p[c] = component(src[c*size:], al.CompType)
		}
		b.Add(vec.VFromA(p))
	}
	return b
}

func component(b []byte, t gx.CompType) float32 {
	switch t {
	case gx.TypeU8:
		return float32(b[0])
	case gx.TypeS8:
		return float32(int8(b[0]))
	case gx.TypeU16:
		return float32(binary.NativeEndian.Uint16(b))
	case gx.TypeS16:
		return float32(int16(binary.NativeEndian.Uint16(b)))
	}
	return stdmath.Float32frombits(binary.NativeEndian.Uint32(b))
}
