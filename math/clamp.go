// SPDX-License-Identifier: GPL-2.0-or-later

// Package math has the matrix and bounds helpers used to fill the uniform
// blocks of generated programs.
package math

type Number interface {
	int64 | float64 | float32 | int
}

func Clamp[K Number](min, val, max K) K {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}
