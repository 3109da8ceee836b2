// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"io"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// The program source file is a protobuf message
//
//	message Sources {
//	  uint32 version = 1;
//	  repeated Source programs = 2;
//	}
//	message Source {
//	  string vert = 1;
//	  string frag = 2;
//	}
const (
	sourcesVersion = 1

	fieldVersion  = 1
	fieldPrograms = 2
	fieldVert     = 1
	fieldFrag     = 2
)

var ErrBadSourceFile = errors.New("bad program source file")

// WriteSources stores the source of progs so a later session can compile
// them before the first frame.
func WriteSources(w io.Writer, progs []*Program) error {
	var b []byte
	b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, sourcesVersion)
	for _, p := range progs {
		var m []byte
		m = protowire.AppendTag(m, fieldVert, protowire.BytesType)
		m = protowire.AppendString(m, p.Vert)
		m = protowire.AppendTag(m, fieldFrag, protowire.BytesType)
		m = protowire.AppendString(m, p.Frag)
		b = protowire.AppendTag(b, fieldPrograms, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "write program sources")
	}
	return nil
}

func ReadSources(r io.Reader) ([]*Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read program sources")
	}
	var progs []*Program
	version := uint64(0)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(ErrBadSourceFile, protowire.ParseError(n).Error())
		}
		b = b[n:]
		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			version, n = protowire.ConsumeVarint(b)
		case num == fieldPrograms && typ == protowire.BytesType:
			var m []byte
			m, n = protowire.ConsumeBytes(b)
			if n >= 0 {
				p, err := readSource(m)
				if err != nil {
					return nil, err
				}
				progs = append(progs, p)
			}
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, errors.Wrap(ErrBadSourceFile, protowire.ParseError(n).Error())
		}
		b = b[n:]
	}
	if version != sourcesVersion {
		return nil, errors.Wrapf(ErrBadSourceFile, "version %d", version)
	}
	return progs, nil
}

func readSource(b []byte) (*Program, error) {
	p := &Program{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(ErrBadSourceFile, protowire.ParseError(n).Error())
		}
		b = b[n:]
		switch {
		case num == fieldVert && typ == protowire.BytesType:
			p.Vert, n = protowire.ConsumeString(b)
		case num == fieldFrag && typ == protowire.BytesType:
			p.Frag, n = protowire.ConsumeString(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, errors.Wrap(ErrBadSourceFile, protowire.ParseError(n).Error())
		}
		b = b[n:]
	}
	if p.Vert == "" || p.Frag == "" {
		return nil, errors.Wrap(ErrBadSourceFile, "program without source")
	}
	return p, nil
}
