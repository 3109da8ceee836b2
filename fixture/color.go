// SPDX-License-Identifier: GPL-2.0-or-later

package fixture

import (
	"encoding/hex"
	"strings"

	"gxview/math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Color is a RGBA color. YAML accepts "#rrggbbaa", "#rrggbb" or a list of
// three or four floats, which are clamped to [0, 1].
type Color [4]float32

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		s := strings.TrimPrefix(n.Value, "#")
		b, err := hex.DecodeString(s)
		if err != nil || (len(b) != 3 && len(b) != 4) {
			return errors.Errorf("line %d: bad color %q", n.Line, n.Value)
		}
		*c = Color{0, 0, 0, 1}
		for i, v := range b {
			c[i] = float32(v) / 255
		}
		return nil
	case yaml.SequenceNode:
		var fs []float32
		if err := n.Decode(&fs); err != nil {
			return err
		}
		if len(fs) != 3 && len(fs) != 4 {
			return errors.Errorf("line %d: color needs 3 or 4 components", n.Line)
		}
		*c = Color{0, 0, 0, 1}
		for i, v := range fs {
			c[i] = math.Clamp(0, v, 1)
		}
		return nil
	}
	return errors.Errorf("line %d: bad color", n.Line)
}
