// SPDX-License-Identifier: GPL-2.0-or-later

package gx

// CC is a TEV color combiner input.
type CC int

const (
	CCCPrev CC = iota
	CCAPrev
	CCC0
	CCA0
	CCC1
	CCA1
	CCC2
	CCA2
	CCTexC
	CCTexA
	CCRasC
	CCRasA
	CCOne
	CCHalf
	CCKonst
	CCZero
	ccMax
)

func (c CC) Valid() bool { return c >= 0 && c < ccMax }

// CA is a TEV alpha combiner input.
type CA int

const (
	CAAPrev CA = iota
	CAA0
	CAA1
	CAA2
	CATexA
	CARasA
	CAKonst
	CAZero
	caMax
)

func (c CA) Valid() bool { return c >= 0 && c < caMax }

type TevOp int

const (
	TevAdd         TevOp = 0
	TevSub         TevOp = 1
	TevCompR8GT    TevOp = 8
	TevCompR8EQ    TevOp = 9
	TevCompGR16GT  TevOp = 10
	TevCompGR16EQ  TevOp = 11
	TevCompBGR24GT TevOp = 12
	TevCompBGR24EQ TevOp = 13
	// per component for color, alpha channel only for alpha
	TevCompRGB8GT TevOp = 14
	TevCompRGB8EQ TevOp = 15
	TevCompA8GT   TevOp = 14
	TevCompA8EQ   TevOp = 15
)

type TevBias int

const (
	TevBiasZero TevBias = iota
	TevBiasAddHalf
	TevBiasSubHalf
)

type TevScale int

const (
	TevScale1 TevScale = iota
	TevScale2
	TevScale4
	TevDivide2
)

// Register is a TEV output register. Only four exist.
type Register int

const (
	RegPrev Register = iota
	Reg0
	Reg1
	Reg2
	RegCount
)

// KonstColorSel picks a konst color or a fixed fraction.
type KonstColorSel int

const (
	KCSel1   KonstColorSel = 0x00
	KCSel7_8 KonstColorSel = 0x01
	KCSel3_4 KonstColorSel = 0x02
	KCSel5_8 KonstColorSel = 0x03
	KCSel1_2 KonstColorSel = 0x04
	KCSel3_8 KonstColorSel = 0x05
	KCSel1_4 KonstColorSel = 0x06
	KCSel1_8 KonstColorSel = 0x07
	KCSelK0  KonstColorSel = 0x0C
	KCSelK1  KonstColorSel = 0x0D
	KCSelK2  KonstColorSel = 0x0E
	KCSelK3  KonstColorSel = 0x0F
	KCSelK0R KonstColorSel = 0x10
	KCSelK1R KonstColorSel = 0x11
	KCSelK2R KonstColorSel = 0x12
	KCSelK3R KonstColorSel = 0x13
	KCSelK0G KonstColorSel = 0x14
	KCSelK1G KonstColorSel = 0x15
	KCSelK2G KonstColorSel = 0x16
	KCSelK3G KonstColorSel = 0x17
	KCSelK0B KonstColorSel = 0x18
	KCSelK1B KonstColorSel = 0x19
	KCSelK2B KonstColorSel = 0x1A
	KCSelK3B KonstColorSel = 0x1B
	KCSelK0A KonstColorSel = 0x1C
	KCSelK1A KonstColorSel = 0x1D
	KCSelK2A KonstColorSel = 0x1E
	KCSelK3A KonstColorSel = 0x1F
)

type KonstAlphaSel int

const (
	KASel1   KonstAlphaSel = 0x00
	KASel7_8 KonstAlphaSel = 0x01
	KASel3_4 KonstAlphaSel = 0x02
	KASel5_8 KonstAlphaSel = 0x03
	KASel1_2 KonstAlphaSel = 0x04
	KASel3_8 KonstAlphaSel = 0x05
	KASel1_4 KonstAlphaSel = 0x06
	KASel1_8 KonstAlphaSel = 0x07
	KASelK0R KonstAlphaSel = 0x10
	KASelK1R KonstAlphaSel = 0x11
	KASelK2R KonstAlphaSel = 0x12
	KASelK3R KonstAlphaSel = 0x13
	KASelK0G KonstAlphaSel = 0x14
	KASelK1G KonstAlphaSel = 0x15
	KASelK2G KonstAlphaSel = 0x16
	KASelK3G KonstAlphaSel = 0x17
	KASelK0B KonstAlphaSel = 0x18
	KASelK1B KonstAlphaSel = 0x19
	KASelK2B KonstAlphaSel = 0x1A
	KASelK3B KonstAlphaSel = 0x1B
	KASelK0A KonstAlphaSel = 0x1C
	KASelK1A KonstAlphaSel = 0x1D
	KASelK2A KonstAlphaSel = 0x1E
	KASelK3A KonstAlphaSel = 0x1F
)

type TexCoordID int

const (
	TexCoord0    TexCoordID = 0
	TexCoordNull TexCoordID = 0xFF
)

type TexMapID int

const (
	TexMap0    TexMapID = 0
	TexMapMax  TexMapID = 8
	TexMapNull TexMapID = 0xFF
)

type RasChannelID int

const (
	Color0     RasChannelID = 0
	Color1     RasChannelID = 1
	Alpha0     RasChannelID = 2
	Alpha1     RasChannelID = 3
	Color0A0   RasChannelID = 4
	Color1A1   RasChannelID = 5
	ColorZero  RasChannelID = 6
	AlphaBump  RasChannelID = 7
	AlphaBumpN RasChannelID = 8
	ColorNull  RasChannelID = 0xFF
)

// TevColorChan is one entry of a swap table.
type TevColorChan int

const (
	ChanR TevColorChan = iota
	ChanG
	ChanB
	ChanA
)

// SwapTable reorders the channels of a texture sample or raster color.
type SwapTable [4]TevColorChan

var IdentitySwap = SwapTable{ChanR, ChanG, ChanB, ChanA}

type IndTexStageID int

type IndTexFormat int

const (
	IndTexFormat8 IndTexFormat = iota
	IndTexFormat5
	IndTexFormat4
	IndTexFormat3
)

type IndTexBiasSel int

const (
	IndTexBiasNone IndTexBiasSel = iota
	IndTexBiasS
	IndTexBiasT
	IndTexBiasST
	IndTexBiasU
	IndTexBiasSU
	IndTexBiasTU
	IndTexBiasSTU
)

type IndTexAlphaSel int

const (
	IndTexAlphaOff IndTexAlphaSel = iota
	IndTexAlphaS
	IndTexAlphaT
	IndTexAlphaU
)

type IndTexMtxID int

const (
	IndTexMtxOff IndTexMtxID = 0
	IndTexMtx0   IndTexMtxID = 1
	IndTexMtx1   IndTexMtxID = 2
	IndTexMtx2   IndTexMtxID = 3
	IndTexMtxS0  IndTexMtxID = 5
	IndTexMtxS1  IndTexMtxID = 6
	IndTexMtxS2  IndTexMtxID = 7
	IndTexMtxT0  IndTexMtxID = 9
	IndTexMtxT1  IndTexMtxID = 10
	IndTexMtxT2  IndTexMtxID = 11
)

type IndTexWrap int

const (
	IndTexWrapOff IndTexWrap = iota
	IndTexWrap256
	IndTexWrap128
	IndTexWrap64
	IndTexWrap32
	IndTexWrap16
	IndTexWrap0
)

// IndTexScale divides the indirect lookup coordinate by 1<<n.
type IndTexScale int

const (
	IndTexScale1   IndTexScale = 0
	IndTexScale256 IndTexScale = 8
)

type TexGenType int

const (
	TexGenMtx3x4 TexGenType = 0
	TexGenMtx2x4 TexGenType = 1
	TexGenBump0  TexGenType = 2
	TexGenBump7  TexGenType = 9
	TexGenSRTG   TexGenType = 10
)

type TexGenSrc int

const (
	TexGenSrcPos       TexGenSrc = 0
	TexGenSrcNrm       TexGenSrc = 1
	TexGenSrcBinrm     TexGenSrc = 2
	TexGenSrcTangent   TexGenSrc = 3
	TexGenSrcTex0      TexGenSrc = 4
	TexGenSrcTex7      TexGenSrc = 11
	TexGenSrcTexCoord0 TexGenSrc = 12
	TexGenSrcTexCoord6 TexGenSrc = 18
	TexGenSrcColor0    TexGenSrc = 19
	TexGenSrcColor1    TexGenSrc = 20
)

// TexGenMatrix selects PNMTX0-9 (0..27), TEXMTX0-9 (30..57) or identity, in
// steps of three.
type TexGenMatrix int

const (
	TexGenPnMtx0   TexGenMatrix = 0
	TexGenTexMtx0  TexGenMatrix = 30
	TexGenIdentity TexGenMatrix = 60

	PnMtxCount  = 10
	TexMtxCount = 10
)

// PostTexGenMatrix selects PTTMTX0-19 (64..121) or identity, in steps of three.
type PostTexGenMatrix int

const (
	PostTexMtx0        PostTexGenMatrix = 64
	PostTexMtxIdentity PostTexGenMatrix = 125

	PostTexMtxCount = 20
)

type ColorSrc int

const (
	SrcReg ColorSrc = iota
	SrcVtx
)

type CompareType int

const (
	CompareNever CompareType = iota
	CompareLess
	CompareEqual
	CompareLEqual
	CompareGreater
	CompareNEqual
	CompareGEqual
	CompareAlways
)

type AlphaOp int

const (
	AlphaOpAnd AlphaOp = iota
	AlphaOpOr
	AlphaOpXor
	AlphaOpXnor
)

type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullAll
)

type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendBlend
	BlendLogic
	BlendSubtract
)

type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendInvSrcColor
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDstAlpha
	BlendInvDstAlpha
)

type LogicOp int

const (
	LogicClear LogicOp = iota
	LogicAnd
	LogicRevAnd
	LogicCopy
	LogicInvAnd
	LogicNoop
	LogicXor
	LogicOr
	LogicNor
	LogicEquiv
	LogicInv
	LogicRevOr
	LogicInvCopy
	LogicInvOr
	LogicNand
	LogicSet
)
