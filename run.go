// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"
	"path/filepath"

	"gxview/conlog"
	"gxview/fixture"
	"gxview/shader"
	"gxview/window"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
)

const (
	windowWidth  = 640
	windowHeight = 480
)

func run(cfg config) error {
	fix, err := fixture.Load(cfg.fixture)
	if err != nil {
		return err
	}
	if cfg.out != "" {
		if err := os.MkdirAll(cfg.out, 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}
	if cfg.validate {
		if err := mainthread.CallErr(func() error {
			return window.OpenHidden(windowWidth, windowHeight)
		}); err != nil {
			return err
		}
		defer mainthread.Call(window.Shutdown)
	}
	s := newSession(cfg, fix)
	if cfg.cache != "" {
		s.warm()
	}
	if err := s.build(); err != nil {
		return err
	}
	s.report()
	if cfg.validate {
		if err := mainthread.CallErr(s.draw); err != nil {
			return err
		}
	}
	if cfg.cache != "" {
		return s.saveSources()
	}
	return nil
}

// warm compiles the programs of an earlier session. A missing or stale
// file is not an error.
func (s *session) warm() {
	log := conlog.Logger()
	f, err := os.Open(s.cfg.cache)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("program cache not read", "err", err)
		}
		return
	}
	defer f.Close()
	progs, err := shader.ReadSources(f)
	if err != nil {
		log.Warn("program cache not read", "err", err)
		return
	}
	for _, p := range progs {
		if _, err := s.programs.Get(p); err != nil {
			log.Warn("cached program rejected", "err", err)
		}
	}
	log.Debug("program cache read", "programs", len(progs))
}

func (s *session) saveSources() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.cfg.cache), ".gxview-*")
	if err != nil {
		return errors.Wrap(err, "write program cache")
	}
	defer os.Remove(tmp.Name())
	if err := shader.WriteSources(tmp, s.programs.Programs()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "write program cache")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.cfg.cache), "write program cache")
}

func (s *session) report() {
	log := conlog.Logger()
	built := 0
	for _, m := range s.materials {
		if m != nil {
			built++
		}
	}
	log.Info("materials built",
		"materials", built,
		"skipped", len(s.materials)-built,
		"programs", s.programs.Len())
	meshes := 0
	for _, grp := range s.groups {
		meshes += len(grp.meshes)
		tris := 0
		for _, c := range grp.data.Chunks {
			tris += c.TriangleCount
		}
		log.Info("vertex buffer",
			"meshes", len(grp.meshes),
			"stride", grp.layout.Stride,
			"vertex_bytes", len(grp.data.Vertices),
			"indices", len(grp.data.Indices),
			"triangles", tris)
	}
	log.Info("meshes built",
		"meshes", meshes,
		"skipped", len(s.meshes)-meshes,
		"layouts", s.loaders.Len())
}
