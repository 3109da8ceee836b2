// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"gxview/math/vec"
)

// Bounds is an axis aligned box. The zero value is empty.
type Bounds struct {
	Min, Max vec.Vec3
	valid    bool
}

func (b *Bounds) Add(p vec.Vec3) {
	if !b.valid {
		b.Min, b.Max, b.valid = p, p, true
		return
	}
	b.Min, _ = vec.MinMax(b.Min, p)
	_, b.Max = vec.MinMax(b.Max, p)
}

func (b *Bounds) Empty() bool {
	return !b.valid
}

func (b *Bounds) Center() vec.Vec3 {
	return vec.Add(b.Min, b.Max).Scale(0.5)
}

// Radius is half the diagonal.
func (b *Bounds) Radius() float32 {
	d := vec.Sub(b.Max, b.Min)
	return d.Length() / 2
}
