// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import (
	"sync"
	"testing"

	"gxview/gx"
)

func TestLoaderCacheByValue(t *testing.T) {
	c := NewLoaderCache()
	fmts, desc := posOnly(gx.TypeF32)
	a, err := c.Get(fmts, desc)
	if err != nil {
		t.Fatal(err)
	}
	// equal content in different memory must hit
	fmts2, desc2 := posOnly(gx.TypeF32)
	b, err := c.Get(fmts2, desc2)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("structurally equal key built a second loader")
	}
	desc2[gx.AttrPos] = gx.AttrIndex16
	d, err := c.Get(fmts2, desc2)
	if err != nil {
		t.Fatal(err)
	}
	if d == a {
		t.Errorf("different descriptors share a loader")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLoaderCacheDoesNotKeepFailures(t *testing.T) {
	c := NewLoaderCache()
	fmts := &FormatTable{}
	fmts[gx.AttrPos] = AttrFormat{gx.CntPosXYZ, 9}
	desc := &DescTable{}
	desc[gx.AttrPos] = gx.AttrDirect
	if _, err := c.Get(fmts, desc); err == nil {
		t.Fatal("invalid format accepted")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failure, want 0", c.Len())
	}
}

func TestLoaderCacheConcurrent(t *testing.T) {
	c := NewLoaderCache()
	fmts, desc := posOnly(gx.TypeS16)
	cmd := drawCall(gx.PrimTriangleStrip, 4, make([]byte, 4*6))
	var wg sync.WaitGroup
	loaders := make([]*Loader, 16)
	for i := range loaders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l, err := c.Get(fmts, desc)
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := l.Unpack(cmd, nil); err != nil {
				t.Error(err)
			}
			loaders[i] = l
		}(i)
	}
	wg.Wait()
	for _, l := range loaders[1:] {
		if l != loaders[0] {
			t.Fatalf("concurrent Get returned different loaders")
		}
	}
}
