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
	"os"

	"github.com/openfx-host/ofxhost/binloader"
	"github.com/openfx-host/ofxhost/internal/xlog"
	"github.com/openfx-host/ofxhost/xmlcodec"
)

// Load reads the on-disk cache file at path into c. A missing file, a
// malformed document, or a cache-version mismatch are all treated as "no
// cache yet": Load returns normally with c left empty (and c.dirty left
// false — the first Reconcile call against an empty cache then marks it
// dirty the moment it finds anything), matching spec §4.D ("the
// cache-version string guards schema compatibility - a mismatch discards
// the cache silently").
func (c *Cache) Load(ctx context.Context, path string) error {
	log := xlog.From(ctx)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Info().With("path", path).Log("plugincache: no cache file yet")
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	decoded, ok := xmlcodec.ReadCache(f)
	if !ok {
		log.Warning().With("path", path).Log("plugincache: malformed cache file, ignoring")
		return nil
	}
	if decoded.Version != c.version {
		log.Warning().With("path", path).With("cached_version", decoded.Version).
			With("current_version", c.version).Log("plugincache: cache version mismatch, ignoring")
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, bundle := range decoded.Bundles {
		for _, be := range bundle.Binaries {
			bin := binloader.New(be.Path)
			bin.SetSignature(be.Mtime, be.Size)
			bs := &binaryState{bin: bin, bundlePath: be.BundlePath}
			for _, pe := range be.Plugins {
				h := c.findHandler(pe.API, pe.APIVersion)
				if h == nil {
					continue
				}
				descriptor, err := h.Restore(pe)
				if err != nil {
					continue
				}
				bs.plugins = append(bs.plugins, &Plugin{
					Identifier:     pe.Name,
					MajorVersion:   pe.MajorVersion,
					MinorVersion:   pe.MinorVersion,
					API:            pe.API,
					APIVersion:     pe.APIVersion,
					Index:          pe.Index,
					Binary:         bin,
					Descriptor:     descriptor,
					BaseProperties: pe.APIProperties,
					APIContent:     pe.APIContent,
				})
			}
			c.binaries[be.Path] = bs
		}
	}
	c.rebuildIndices()
	return nil
}

// Save writes c back to path unless it is clean (spec §4.D: "Cache is
// written back unchanged if not dirty; otherwise fully re-serialized").
// force bypasses the dirty check, for an explicit "write no matter what"
// caller (e.g. first-run cache creation).
func (c *Cache) Save(path string, force bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty && !force {
		return nil
	}

	cache := xmlcodec.Cache{Version: c.version}
	for _, bs := range c.binaries {
		be := xmlcodec.BinaryEntry{BundlePath: bs.bundlePath}
		if bs.bin != nil {
			be.Path = bs.bin.Path()
			be.Mtime, be.Size = bs.bin.Signature()
		}
		for _, p := range bs.plugins {
			be.Plugins = append(be.Plugins, xmlcodec.PluginEntry{
				Name:          p.Identifier,
				Index:         p.Index,
				API:           p.API,
				APIVersion:    p.APIVersion,
				MajorVersion:  p.MajorVersion,
				MinorVersion:  p.MinorVersion,
				APIProperties: p.BaseProperties,
				APIContent:    p.APIContent,
			})
		}
		cache.Bundles = append(cache.Bundles, xmlcodec.Bundle{Binaries: []xmlcodec.BinaryEntry{be}})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := xmlcodec.WriteCache(f, cache); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
