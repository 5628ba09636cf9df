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

package plugincache

import (
	"context"

	"github.com/openfx-host/ofxhost/binloader"
	"github.com/openfx-host/ofxhost/internal/xerr"
	"github.com/openfx-host/ofxhost/internal/xlog"
	"github.com/openfx-host/ofxhost/ofxabi"
)

// Reconcile scans envVar's search paths plus the OS defaults, compares
// what is found against the in-memory cache, and dispatches discovery
// (spec §4.E) for every binary that is new or whose disk signature
// changed. host is passed straight through to each plug-in's setHost call
// during discovery (component J owns constructing it). Reconcile never
// returns an error for an individual bad binary or plug-in — those are
// logged and skipped, matching spec §4.D/§4.E's "confirm or drop" posture;
// it only returns an error if no handler at all is registered, which is a
// caller-programming mistake rather than a runtime condition.
func (c *Cache) Reconcile(ctx context.Context, envVar string, host *ofxabi.Host) error {
	c.mu.Lock()
	if len(c.handlers) == 0 {
		c.mu.Unlock()
		return xerr.Const("plugincache: no API handlers registered")
	}
	c.mu.Unlock()

	log := xlog.From(ctx)
	bundleDirs := ScanBundles(SearchPaths(envVar))

	seen := map[string]bool{}
	for _, bundleDir := range bundleDirs {
		path, ok := ResolveBinary(bundleDir)
		if !ok {
			continue
		}
		seen[path] = true
		c.reconcileOne(ctx, log, path, bundleDir, host)
	}

	c.mu.Lock()
	for path := range c.binaries {
		if !seen[path] {
			delete(c.binaries, path)
			c.dirty = true
			log.Info().With("path", path).Log("plugincache: binary dropped from disk")
		}
	}
	c.rebuildIndices()
	c.mu.Unlock()
	return nil
}

func (c *Cache) reconcileOne(ctx context.Context, log *xlog.Logger, path, bundleDir string, host *ofxabi.Host) {
	c.mu.Lock()
	existing, has := c.binaries[path]
	c.mu.Unlock()

	if has && !existing.bin.Changed() {
		// Disk signature matches the recorded one: accepted without
		// dlopen (spec §4.D: "Cached binaries whose disk signature
		// matches are accepted without loading the shared library").
		return
	}

	bin := binloader.New(path)
	if err := bin.Stat(); err != nil {
		log.Error().With("path", path).With("error", err).Log("plugincache: binary invalid")
		return
	}

	plugins, err := c.discover(ctx, bin, host)
	if err != nil {
		log.Error().With("path", path).With("error", err).Log("plugincache: discovery failed")
		return
	}

	c.mu.Lock()
	c.binaries[path] = &binaryState{bin: bin, bundlePath: bundleDir, plugins: plugins}
	c.dirty = true
	c.mu.Unlock()
	log.Info().With("path", path).With("plugins", len(plugins)).Log("plugincache: binary (re)discovered")
}

// discover loads bin, enumerates its exported plug-ins, dispatches each
// one to its API handler, and unloads bin again once every plug-in has
// been through load/describe/unload (spec §4.E).
func (c *Cache) discover(ctx context.Context, bin *binloader.Binary, host *ofxabi.Host) (plugins []*Plugin, err error) {
	defer xerr.Recover(&err)

	if err := bin.Ref(); err != nil {
		return nil, err
	}
	defer bin.Unref()

	entry := bin.Discovery()
	n := entry.NumPlugins()
	log := xlog.From(ctx)

	for i := 0; i < n; i++ {
		raw := entry.Plugin(i)
		h := c.findHandlerLocked(raw.APIName, raw.APIVersion)
		if h == nil {
			log.Debug().With("api", raw.APIName).With("identifier", raw.Identifier).
				Log("plugincache: no handler for API, skipping plug-in")
			continue
		}
		descriptor, props, content, err := h.Confirm(bin, raw, host)
		if err != nil {
			log.Error().With("identifier", raw.Identifier).With("error", err).
				Log("plugincache: describe failed, dropping plug-in")
			continue
		}
		plugins = append(plugins, &Plugin{
			Identifier:     raw.Identifier,
			MajorVersion:   int(raw.VersionMajor),
			MinorVersion:   int(raw.VersionMinor),
			API:            raw.APIName,
			APIVersion:     raw.APIVersion,
			Index:          i,
			Binary:         bin,
			Descriptor:     descriptor,
			BaseProperties: props,
			APIContent:     content,
		})
	}
	return plugins, nil
}

func (c *Cache) findHandlerLocked(apiName string, apiVersion int) Handler {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findHandler(apiName, apiVersion)
}
