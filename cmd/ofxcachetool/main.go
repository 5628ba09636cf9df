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

// ofxcachetool scans the OFX plug-in search path, reconciles it against
// an on-disk plugincache XML file, and dumps the result. It is not a
// sample plug-in host: it never dispatches describe/load/instantiate
// against the image-effect suite's clip or parameter actions, only far
// enough through component D/E to confirm what is installed (spec's
// Non-goals exclude "a full sample host" from this library's scope).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/openfx-host/ofxhost/config"
	"github.com/openfx-host/ofxhost/host"
	"github.com/openfx-host/ofxhost/imageeffect"
	"github.com/openfx-host/ofxhost/internal/xlog"
	"github.com/openfx-host/ofxhost/metrics"
	"github.com/openfx-host/ofxhost/plugincache"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	cachePath = flag.String("cache", "ofx-plugin-cache.xml", "path to the on-disk plugin cache file")
	envVar    = flag.String("env", "OFX_PLUGIN_PATH", "environment variable naming the plug-in search path")
	write     = flag.Bool("write", false, "write the cache file back if reconciliation left it dirty")
)

func main() {
	configPath := config.Flag(flag.CommandLine)
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		fmt.Fprintln(os.Stderr, "ofxcachetool:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx = xlog.Bind(ctx, xlog.Std(os.Stderr), parseSeverity(cfg.LogVerbosity))
	log := xlog.From(ctx)

	cacheVersion := cfg.CacheVersion
	if cacheVersion == "" {
		cacheVersion = "1"
	}

	// crashreport has no role here: this tool never instantiates an effect
	// (no kOfxActionCreateInstance, no imageeffect.Instance.call), so there
	// is nothing for a Sentry Sink to ever catch a foreign exception from.
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	cache := plugincache.New(cacheVersion)
	cache.RegisterHandler(imageeffect.NewHandler(1, 1))

	if err := cache.Load(ctx, *cachePath); err != nil {
		return fmt.Errorf("ofxcachetool: loading cache: %w", err)
	}

	id := host.Identity{Name: "ofxcachetool", Label: "OFX Cache Tool", Version: []int64{1, 0}, VersionLabel: "1.0"}
	caps := host.Capabilities{
		SupportedContexts:   []string{"OfxImageEffectContextFilter"},
		SupportedComponents: []string{"OfxImageComponentRGBA"},
		SupportsTiles:       true,
	}
	h := host.New(id, caps, host.NopSink{})
	defer h.Close()

	m.Timer("scan")(doReconcile(ctx, cache, h))

	for _, p := range cache.Plugins() {
		fmt.Printf("%s\tv%d.%d\t%s (API v%d)\t%s\n", p.Identifier, p.MajorVersion, p.MinorVersion, p.API, p.APIVersion, p.Binary.Path())
	}

	if cache.Dirty() {
		log.Info().Log("ofxcachetool: cache changed")
		if *write {
			if err := cache.Save(*cachePath, false); err != nil {
				return fmt.Errorf("ofxcachetool: saving cache: %w", err)
			}
		} else {
			log.Info().Log("ofxcachetool: pass -write to persist the change")
		}
	}

	return dumpMetrics(reg)
}

func doReconcile(ctx context.Context, cache *plugincache.Cache, h *host.Host) string {
	if err := cache.Reconcile(ctx, *envVar, h.Raw()); err != nil {
		xlog.From(ctx).Error().With("error", err).Log("ofxcachetool: reconcile failed")
		return "kOfxStatFailed"
	}
	return "kOfxStatOK"
}

func dumpMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, f := range families {
		fmt.Fprintf(os.Stderr, "# %s\n", f.GetName())
	}
	return nil
}

func parseSeverity(name string) xlog.Severity {
	switch strings.ToLower(name) {
	case "verbose":
		return xlog.Verbose
	case "debug":
		return xlog.Debug
	case "warning":
		return xlog.Warning
	case "error":
		return xlog.Error
	case "fatal":
		return xlog.Fatal
	default:
		return xlog.Info
	}
}
