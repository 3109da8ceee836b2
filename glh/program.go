// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"runtime"
	"strconv"
	"strings"

	"gxview/shader"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

type Program struct {
	prog uint32
}

// NewProgram compiles and links a generated program, assigns the uniform
// block bindings and points every u_Texture slot at its texture unit.
// Must be called on the GL thread.
func NewProgram(src *shader.Program) (*Program, error) {
	vert, err := compileShader(src.Vert, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	frag, err := compileShader(src.Frag, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, err
	}
	p := &Program{
		prog: gl.CreateProgram(),
	}
	gl.AttachShader(p.prog, vert)
	gl.AttachShader(p.prog, frag)
	gl.LinkProgram(p.prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	var status int32
	gl.GetProgramiv(p.prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(p.prog, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(p.prog, n, nil, gl.Str(log))
		gl.DeleteProgram(p.prog)
		return nil, &CompileError{
			Stage:  "link",
			Source: src.Vert + src.Frag,
			Log:    strings.TrimRight(log, "\x00"),
		}
	}
	runtime.AddCleanup(p, deleteProgram, p.prog)

	blocks := []struct {
		name    string
		binding uint32
	}{
		{shader.SceneParamsBlock, shader.SceneParamsBinding},
		{shader.MaterialParamsBlock, shader.MaterialParamsBinding},
		{shader.DrawParamsBlock, shader.DrawParamsBinding},
	}
	for _, b := range blocks {
		idx := gl.GetUniformBlockIndex(p.prog, gl.Str(b.name+"\x00"))
		if idx == gl.INVALID_INDEX {
			// unused blocks are optimized away
			continue
		}
		gl.UniformBlockBinding(p.prog, idx, b.binding)
	}
	gl.UseProgram(p.prog)
	// Every slot is assigned, the source of a warmed program carries no
	// sampler list.
	for i, n := range samplerNames() {
		loc := p.GetUniformLocation(n)
		if loc >= 0 {
			gl.Uniform1i(loc, int32(i))
		}
	}
	return p, nil
}

func samplerName(i int) string {
	return shader.SamplerArray + "[" + strconv.Itoa(i) + "]"
}

// samplerNames lists the uniform name of every sampler slot, slot i is
// bound to texture unit i.
func samplerNames() []string {
	n := make([]string, shader.MaxSamplers)
	for i := range n {
		n[i] = samplerName(i)
	}
	return n
}

func deleteProgram(p uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteProgram(p)
	})
}

func (p *Program) Use() {
	gl.UseProgram(p.prog)
}

func (p *Program) GetUniformLocation(n string) int32 {
	return gl.GetUniformLocation(p.prog, gl.Str(n+"\x00"))
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	s := gl.CreateShader(shaderType)
	csource, free := gl.Strs(src)
	defer free()
	length := int32(len(src))
	gl.ShaderSource(s, 1, csource, &length)
	gl.CompileShader(s)
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(s, n, nil, gl.Str(log))
		gl.DeleteShader(s)
		stage := "vertex"
		if shaderType == gl.FRAGMENT_SHADER {
			stage = "fragment"
		}
		return 0, &CompileError{
			Stage:  stage,
			Source: src,
			Log:    strings.TrimRight(log, "\x00"),
		}
	}
	return s, nil
}
