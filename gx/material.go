// SPDX-License-Identifier: GPL-2.0-or-later

package gx

const (
	MaxLightChannels = 2
	MaxTexGens       = 8
	MaxIndTexStages  = 4
	MaxTevStages     = 16
	MaxSwapTables    = 4
	MaxKonstColors   = 4
)

// ColorChannel selects where one half (color or alpha) of a light channel
// takes its values from.
type ColorChannel struct {
	LightingEnabled bool
	MatColorSource  ColorSrc
	AmbColorSource  ColorSrc
}

type LightChannel struct {
	Color ColorChannel
	Alpha ColorChannel
}

type TexGen struct {
	Type       TexGenType
	Source     TexGenSrc
	Matrix     TexGenMatrix
	Normalize  bool
	PostMatrix PostTexGenMatrix
}

type IndTexStage struct {
	TexCoord TexCoordID
	TexMap   TexMapID
	ScaleS   IndTexScale
	ScaleT   IndTexScale
}

type TevStage struct {
	ColorInA   CC
	ColorInB   CC
	ColorInC   CC
	ColorInD   CC
	ColorOp    TevOp
	ColorBias  TevBias
	ColorScale TevScale
	ColorClamp bool
	ColorReg   Register

	AlphaInA   CA
	AlphaInB   CA
	AlphaInC   CA
	AlphaInD   CA
	AlphaOp    TevOp
	AlphaBias  TevBias
	AlphaScale TevScale
	AlphaClamp bool
	AlphaReg   Register

	TexCoord      TexCoordID
	TexMap        TexMapID
	Channel       RasChannelID
	KonstColorSel KonstColorSel
	KonstAlphaSel KonstAlphaSel
	RasSwap       int
	TexSwap       int

	IndTexStage      IndTexStageID
	IndTexFormat     IndTexFormat
	IndTexBias       IndTexBiasSel
	IndTexAlpha      IndTexAlphaSel
	IndTexMatrix     IndTexMtxID
	IndTexWrapS      IndTexWrap
	IndTexWrapT      IndTexWrap
	IndTexAddPrev    bool
	IndTexUseOrigLOD bool
}

type AlphaTest struct {
	Op       AlphaOp
	CompareA CompareType
	RefA     uint8
	CompareB CompareType
	RefB     uint8
}

type BlendState struct {
	Mode      BlendMode
	SrcFactor BlendFactor
	DstFactor BlendFactor
	LogicOp   LogicOp
}

type RopInfo struct {
	Blend      BlendState
	DepthTest  bool
	DepthFunc  CompareType
	DepthWrite bool
}

// Material is the fixed-function pipeline state of one draw item. Texture
// bindings are referenced by TexMapID only; the actual textures are bound by
// the renderer.
type Material struct {
	Name          string
	CullMode      CullMode
	LightChannels []LightChannel
	TexGens       []TexGen
	IndTexStages  []IndTexStage
	TevStages     []TevStage
	// empty means every stage uses the identity swap
	SwapTables []SwapTable
	AlphaTest  AlphaTest
	Rop        RopInfo
}

// SwapTable returns swap table i. ok is false if i is out of range.
func (m *Material) SwapTable(i int) (SwapTable, bool) {
	if len(m.SwapTables) == 0 && i == 0 {
		return IdentitySwap, true
	}
	if i < 0 || i >= len(m.SwapTables) {
		return SwapTable{}, false
	}
	return m.SwapTables[i], true
}
