// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import "github.com/pkg/errors"

var (
	ErrInvalidMaterialReference = errors.New("invalid material reference")
	ErrUnsupportedBlendMode     = errors.New("unsupported blend mode")
	ErrUnsupportedIndirectMode  = errors.New("unsupported indirect texture mode")
)
