// SPDX-License-Identifier: GPL-2.0-or-later

package shader

import (
	"sort"
	"sync"

	"gxview/conlog"

	"golang.org/x/sync/singleflight"
)

// CompileFunc turns generated source into a driver program.
type CompileFunc[T any] func(p *Program) (T, error)

type programEntry[T any] struct {
	prog     *Program
	compiled T
}

// ProgramCache memoizes compiled programs by source text. Materials that
// differ only in their texture bindings share one entry. Each key is
// compiled at most once even under concurrent Get calls. Failed compiles are
// returned to every waiting caller and not stored.
//
// The cache is owned by the renderer session and is safe for concurrent use.
type ProgramCache[T any] struct {
	compile CompileFunc[T]

	mu      sync.RWMutex
	entries map[string]*programEntry[T]
	group   singleflight.Group
}

func NewProgramCache[T any](compile CompileFunc[T]) *ProgramCache[T] {
	return &ProgramCache[T]{
		compile: compile,
		entries: make(map[string]*programEntry[T]),
	}
}

func (c *ProgramCache[T]) lookup(key string) (*programEntry[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

func (c *ProgramCache[T]) Get(p *Program) (T, error) {
	key := p.Key()
	if e, ok := c.lookup(key); ok {
		return e.compiled, nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if e, ok := c.lookup(key); ok {
			return e, nil
		}
		compiled, err := c.compile(p)
		if err != nil {
			return nil, err
		}
		e := &programEntry[T]{
			prog: &Program{
				Vert: p.Vert,
				Frag: p.Frag,
			},
			compiled: compiled,
		}
		c.mu.Lock()
		c.entries[key] = e
		n := len(c.entries)
		c.mu.Unlock()
		conlog.Logger().Debug("program compiled", "programs", n, "bytes", len(key))
		return e, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(*programEntry[T]).compiled, nil
}

func (c *ProgramCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Programs returns the source of every cached program ordered by key.
// Samplers are not set, the key holds only the source text.
func (c *ProgramCache[T]) Programs() []*Program {
	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	progs := make([]*Program, 0, len(keys))
	for _, k := range keys {
		progs = append(progs, c.entries[k].prog)
	}
	c.mu.RUnlock()
	return progs
}
