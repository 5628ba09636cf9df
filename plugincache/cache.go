// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package plugincache is component D: it assembles the plug-in search
// path, reconciles the on-disk XML cache against what is actually on
// disk, dispatches newly-seen or changed binaries to the registered
// per-API handler, and maintains the primary/secondary confirmed-plugin
// indices (spec §4.D/§4.E). It is grounded on
// _examples/google-gapid/core/os/device/bind/registry.go's
// register-then-dispatch-by-identity shape, generalized from "device
// binding" to "plug-in binary reconciliation".
package plugincache

import (
	"context"
	"sort"
	"sync"

	"github.com/openfx-host/ofxhost/binloader"
	"github.com/openfx-host/ofxhost/internal/xlog"
)

type binaryState struct {
	bin        *binloader.Binary
	bundlePath string
	plugins    []*Plugin
}

// Cache is the process-wide registry of confirmed plug-ins (spec §4.D:
// "Registry. A process-wide singleton holds the cache; explicit init and
// clear operations frame its lifetime").
type Cache struct {
	mu sync.Mutex

	version  string
	handlers []Handler

	binaries map[string]*binaryState // keyed by resolved binary path

	byID      map[string]*Plugin
	byIDMajor map[idMajorKey]*Plugin

	dirty bool
}

type idMajorKey struct {
	id    string
	major int
}

// New creates an empty Cache tagged with the given cache-version string
// (spec §4.D: "a mismatch discards the cache silently").
func New(version string) *Cache {
	return &Cache{
		version:   version,
		binaries:  map[string]*binaryState{},
		byID:      map[string]*Plugin{},
		byIDMajor: map[idMajorKey]*Plugin{},
	}
}

// RegisterHandler adds h to the set consulted during discovery. The cache
// dispatches each newly discovered plug-in to the first registered
// handler whose APIName/SupportsVersion match (spec §4.D).
func (c *Cache) RegisterHandler(h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, h)
}

func (c *Cache) findHandler(apiName string, apiVersion int) Handler {
	for _, h := range c.handlers {
		if h.APIName() == apiName && h.SupportsVersion(apiVersion) {
			return h
		}
	}
	return nil
}

// Dirty reports whether the in-memory cache diverges from what was last
// loaded from (or written to) disk.
func (c *Cache) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Version returns the cache-version tag this Cache was created with.
func (c *Cache) Version() string { return c.version }

// Plugins returns every confirmed plug-in across every binary, in a
// deterministic order (sorted by identifier then major then minor) so
// callers (and tests) don't depend on map iteration order.
func (c *Cache) Plugins() []*Plugin {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*Plugin
	for _, bs := range c.binaries {
		out = append(out, bs.plugins...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Identifier != out[j].Identifier {
			return out[i].Identifier < out[j].Identifier
		}
		if out[i].MajorVersion != out[j].MajorVersion {
			return out[i].MajorVersion < out[j].MajorVersion
		}
		return out[i].MinorVersion < out[j].MinorVersion
	})
	return out
}

// ByIdentifier returns the plug-in with the greatest (major, minor) for
// the given raw identifier (spec §4.E primary index). Identifier
// comparison is case-sensitive throughout (SPEC_FULL.md §13).
func (c *Cache) ByIdentifier(id string) (*Plugin, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.byID[id]
	return p, ok
}

// ByIdentifierMajor returns, within major, the plug-in with the greatest
// minor version (spec §4.E secondary index).
func (c *Cache) ByIdentifierMajor(id string, major int) (*Plugin, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.byIDMajor[idMajorKey{id, major}]
	return p, ok
}

// rebuildIndices recomputes byID/byIDMajor from scratch over every
// confirmed plug-in (spec §4.E: "Across all confirmed plug-ins ... the
// plug-in with the greater (major, minor) wins"). Called with c.mu held.
func (c *Cache) rebuildIndices() {
	c.byID = map[string]*Plugin{}
	c.byIDMajor = map[idMajorKey]*Plugin{}
	for _, bs := range c.binaries {
		for _, p := range bs.plugins {
			if cur, ok := c.byID[p.Identifier]; !ok || greaterVersion(p, cur) {
				c.byID[p.Identifier] = p
			}
			key := idMajorKey{p.Identifier, p.MajorVersion}
			if cur, ok := c.byIDMajor[key]; !ok || p.MinorVersion > cur.MinorVersion {
				c.byIDMajor[key] = p
			}
		}
	}
}

func greaterVersion(a, b *Plugin) bool {
	if a.MajorVersion != b.MajorVersion {
		return a.MajorVersion > b.MajorVersion
	}
	return a.MinorVersion > b.MinorVersion
}

var (
	globalMu sync.Mutex
	global   *Cache
)

// Init creates the process-wide Cache singleton (replacing any previous
// one) and returns it.
func Init(ctx context.Context, version string) *Cache {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = New(version)
	xlog.From(ctx).Info().With("version", version).Log("plugincache initialized")
	return global
}

// Global returns the process-wide singleton, or nil if Init has not been
// called (or Clear has since been called).
func Global() *Cache {
	globalMu.Lock()
	defer globalMu.Unlock()
	return global
}

// Clear tears down the process-wide singleton.
func Clear() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = nil
}
