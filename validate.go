// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"gxview/conlog"
	"gxview/glh"
	"gxview/math"
	"gxview/math/vec"
	"gxview/shader"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
)

const (
	viewPitch = 20
	viewYaw   = -30
)

// view places the camera so the whole scene is in front of it. The scene is
// seen from above and to the side so depth and lighting differences show.
func (s *session) view() (proj, view math.Mat4) {
	var b math.Bounds
	for _, m := range s.meshes {
		if m == nil || m.bounds.Empty() {
			continue
		}
		b.Add(m.bounds.Min)
		b.Add(m.bounds.Max)
	}
	c, r := vec.Vec3{}, float32(1)
	if !b.Empty() {
		c, r = b.Center(), max(b.Radius(), 0.001)
	}
	p := s.fix.Projection
	proj = math.Perspective(p.FovY, float32(windowWidth)/windowHeight, p.Near, p.Far)
	view = math.Identity()
	view.Translate(0, 0, -(2.5*r + p.Near))
	view.RotateX(viewPitch)
	view.RotateY(viewYaw)
	view.Translate(-c.X, -c.Y, -c.Z)
	return proj, view
}

// draw renders every mesh with each material it names. Runs on the GL
// thread.
func (s *session) draw() error {
	proj, view := s.view()
	scene := shader.SceneParams{
		Projection: proj,
		Misc0:      [4]float32{windowWidth, windowHeight, 0, 0},
	}
	dp := shader.NewDrawParams()
	dp.PosMtx[0] = view.Rows3()

	sceneBuf := glh.NewBuffer(glh.UniformBuffer)
	sceneBuf.SetFloats(scene.Pack())
	sceneBuf.BindBase(shader.SceneParamsBinding)
	drawBuf := glh.NewBuffer(glh.UniformBuffer)
	drawBuf.SetFloats(dp.Pack())
	drawBuf.BindBase(shader.DrawParamsBinding)
	matBuf := glh.NewBuffer(glh.UniformBuffer)
	matBuf.BindBase(shader.MaterialParamsBinding)

	tex := glh.NewTexture2D(8, 8, glh.Checker(8, [4]byte{255, 255, 255, 255}, [4]byte{64, 64, 64, 128}))
	for u := 0; u < shader.MaxSamplers; u++ {
		tex.BindUnit(u)
	}

	gl.Viewport(0, 0, windowWidth, windowHeight)
	gl.ClearColor(0.2, 0.2, 0.2, 1)
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	draws := 0
	for _, grp := range s.groups {
		gm, err := glh.NewMesh(grp.layout, grp.data)
		if err != nil {
			conlog.Logger().Warn("vertex buffer skipped", "stride", grp.layout.Stride, "err", err)
			continue
		}
		for i, m := range grp.meshes {
			for _, mat := range s.materials {
				if mat == nil || mat.gl == nil || !m.src.Draws(mat.name) {
					continue
				}
				mat.gl.Use()
				glh.ApplyRenderState(mat.state)
				matBuf.SetFloats(mat.params.Pack())
				gm.Draw(i)
				draws++
			}
		}
	}
	gl.Finish()
	if e := gl.GetError(); e != gl.NO_ERROR {
		return errors.Errorf("GL error %#x after %d draws", e, draws)
	}
	conlog.Logger().Info("validated", "draws", draws)
	return nil
}
