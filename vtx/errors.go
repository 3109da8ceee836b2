// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import "github.com/pkg/errors"

var (
	ErrMalformedCommandStream = errors.New("malformed command stream")
	ErrUnsupportedTopology    = errors.New("unsupported topology")
	ErrInvalidFormat          = errors.New("invalid attribute format")
	ErrTooManyVertices        = errors.New("too many vertices for 16-bit indices")
)
