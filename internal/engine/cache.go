// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"html/template"
	"log/slog"
	"sync"
)

// templateCache is a concurrency-safe map of parsed template sets keyed by
// layout kind or shell name. Templates are embedded in the binary, so an
// entry stays valid for the life of the process.
type templateCache struct {
	mu      sync.RWMutex
	entries map[string]*template.Template
}

func newTemplateCache() *templateCache {
	return &templateCache{
		entries: make(map[string]*template.Template),
	}
}

// get returns the cached set for key, or nil on a miss.
func (c *templateCache) get(key string) *template.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key]
}

// put stores a parsed set. Concurrent first renders may both parse; the
// later put wins and both results are equivalent.
func (c *templateCache) put(key string, tmpl *template.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = tmpl
	slog.Debug("template cached", "key", key, "size", len(c.entries))
}

func (c *templateCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
