// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import "gxview/gx"

const glslVersion = "#version 300 es\n"

// Uniform block bindings. GLSL ES 3.00 has no binding qualifier, the host
// assigns these with glUniformBlockBinding.
const (
	SceneParamsBinding    = 0
	MaterialParamsBinding = 1
	DrawParamsBinding     = 2
)

const (
	SceneParamsBlock    = "ub_SceneParams"
	MaterialParamsBlock = "ub_MaterialParams"
	DrawParamsBlock     = "ub_DrawParams"
	// SamplerArray is the sampler2D array indexed by Program.Samplers slot.
	SamplerArray = "u_Texture"
	MaxSamplers  = int(gx.TexMapMax)
)

// Binormal and tangent of NBT normals get their own locations after the
// regular attributes.
const (
	LocBinormal = int(gx.AttrMax)
	LocTangent  = int(gx.AttrMax) + 1
)

const (
	PosMtxCount     = gx.PnMtxCount
	TexMtxCount     = gx.TexMtxCount
	PostTexMtxCount = gx.PostTexMtxCount
	IndTexMtxCount  = 3
)

const commonPrelude = `precision highp float;
precision highp int;

struct Mat4x3 { vec4 mx; vec4 my; vec4 mz; };
struct Mat4x2 { vec4 mx; vec4 my; };

vec3 Mul(Mat4x3 m, vec4 v) { return vec3(dot(m.mx, v), dot(m.my, v), dot(m.mz, v)); }
vec2 Mul(Mat4x2 m, vec4 v) { return vec2(dot(m.mx, v), dot(m.my, v)); }

layout(std140) uniform ub_SceneParams {
    mat4 u_Projection;
    vec4 u_Misc0;
};

layout(std140) uniform ub_MaterialParams {
    vec4 u_ColorMatReg[2];
    vec4 u_ColorAmbReg[2];
    vec4 u_KonstColor[4];
    vec4 u_Color[4];
    Mat4x3 u_TexMtx[10];
    Mat4x3 u_PostTexMtx[20];
    Mat4x2 u_IndTexMtx[3];
};

layout(std140) uniform ub_DrawParams {
    Mat4x3 u_PosMtx[10];
};
`

// Helpers for the TEV arithmetic. Registers hold 8 bit values for the A, B
// and C inputs and signed 10 bit values for D.
const fragmentPrelude = `
float TevOverflow(float a) { return fract(a * (255.0 / 256.0)) * (256.0 / 255.0); }
vec3 TevOverflow(vec3 a) { return fract(a * (255.0 / 256.0)) * (256.0 / 255.0); }
vec4 TevOverflow(vec4 a) { return fract(a * (255.0 / 256.0)) * (256.0 / 255.0); }

float TevSignedOverflow(float a) { return (fract((a * 255.0 + 1024.0) / 2048.0) * 2048.0 - 1024.0) / 255.0; }
vec3 TevSignedOverflow(vec3 a) { return (fract((a * 255.0 + 1024.0) / 2048.0) * 2048.0 - 1024.0) / 255.0; }

float TevQuant(float a) { return floor(clamp(a, 0.0, 1.0) * 255.0 + 0.5); }
vec2 TevQuant(vec2 a) { return floor(clamp(a, 0.0, 1.0) * 255.0 + 0.5); }
vec3 TevQuant(vec3 a) { return floor(clamp(a, 0.0, 1.0) * 255.0 + 0.5); }

float TevPack16(vec2 a) { return dot(TevQuant(a), vec2(1.0, 256.0)); }
float TevPack24(vec3 a) { return dot(TevQuant(a), vec3(1.0, 256.0, 65536.0)); }

vec3 TevPerCompGT(vec3 a, vec3 b) { return vec3(greaterThan(TevQuant(a), TevQuant(b))); }
vec3 TevPerCompEQ(vec3 a, vec3 b) { return vec3(equal(TevQuant(a), TevQuant(b))); }

uniform sampler2D u_Texture[8];
`
