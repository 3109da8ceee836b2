// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"gxview/math"
)

// The Pack methods return the std140 image of the matching uniform block.
// Every member is a vec4, a mat4 or a struct of vec4 so no padding is needed.

type SceneParams struct {
	Projection math.Mat4
	Misc0      [4]float32
}

func (p *SceneParams) Pack() []float32 {
	b := make([]float32, 0, 20)
	c := p.Projection.Columns()
	b = append(b, c[:]...)
	return append(b, p.Misc0[:]...)
}

type MaterialParams struct {
	ColorMatReg [2][4]float32
	ColorAmbReg [2][4]float32
	KonstColor  [4][4]float32
	// Color is the initial value of the TEV registers, indexed by gx.Register.
	Color      [4][4]float32
	TexMtx     [TexMtxCount]math.Mat4x3
	PostTexMtx [PostTexMtxCount]math.Mat4x3
	IndTexMtx  [IndTexMtxCount]math.Mat4x2
}

// NewMaterialParams returns white material colors and identity matrices.
func NewMaterialParams() *MaterialParams {
	p := &MaterialParams{}
	for i := range p.ColorMatReg {
		p.ColorMatReg[i] = [4]float32{1, 1, 1, 1}
		p.ColorAmbReg[i] = [4]float32{1, 1, 1, 1}
	}
	for i := range p.TexMtx {
		p.TexMtx[i] = math.Identity4x3()
	}
	for i := range p.PostTexMtx {
		p.PostTexMtx[i] = math.Identity4x3()
	}
	return p
}

func appendVec4s(b []float32, v [][4]float32) []float32 {
	for _, x := range v {
		b = append(b, x[:]...)
	}
	return b
}

func appendMat4x3(b []float32, m []math.Mat4x3) []float32 {
	for i := range m {
		b = appendVec4s(b, m[i].M[:])
	}
	return b
}

func (p *MaterialParams) Pack() []float32 {
	b := make([]float32, 0, 4*(2+2+4+4)+12*(TexMtxCount+PostTexMtxCount)+8*IndTexMtxCount)
	b = appendVec4s(b, p.ColorMatReg[:])
	b = appendVec4s(b, p.ColorAmbReg[:])
	b = appendVec4s(b, p.KonstColor[:])
	b = appendVec4s(b, p.Color[:])
	b = appendMat4x3(b, p.TexMtx[:])
	b = appendMat4x3(b, p.PostTexMtx[:])
	for i := range p.IndTexMtx {
		b = appendVec4s(b, p.IndTexMtx[i].M[:])
	}
	return b
}

type DrawParams struct {
	PosMtx [PosMtxCount]math.Mat4x3
}

func NewDrawParams() *DrawParams {
	p := &DrawParams{}
	for i := range p.PosMtx {
		p.PosMtx[i] = math.Identity4x3()
	}
	return p
}

func (p *DrawParams) Pack() []float32 {
	return appendMat4x3(make([]float32, 0, 12*PosMtxCount), p.PosMtx[:])
}
