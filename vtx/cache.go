// SPDX-License-Identifier: GPL-2.0-or-later

package vtx

import (
	"sync"

	"gxview/conlog"
)

type loaderKey struct {
	fmts FormatTable
	desc DescTable
}

// LoaderCache memoizes loaders by format and descriptor value. Entries are
// never evicted, a title only uses a few dozen combinations. The owner
// creates one cache per session and shares it between goroutines.
type LoaderCache struct {
	mu      sync.Mutex
	loaders map[loaderKey]*Loader
}

func NewLoaderCache() *LoaderCache {
	return &LoaderCache{
		loaders: make(map[loaderKey]*Loader),
	}
}

// Get returns the loader for fmts and desc, building it on first use.
// Failures are not cached.
func (c *LoaderCache) Get(fmts *FormatTable, desc *DescTable) (*Loader, error) {
	k := loaderKey{fmts: *fmts, desc: *desc}
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.loaders[k]; ok {
		return l, nil
	}
	l, err := NewLoader(fmts, desc)
	if err != nil {
		return nil, err
	}
	c.loaders[k] = l
	conlog.Logger().Debug("vertex loader compiled",
		"stride", l.Layout.Stride,
		"attributes", len(l.Layout.Attrs),
		"loaders", len(c.loaders))
	return l, nil
}

func (c *LoaderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.loaders)
}
