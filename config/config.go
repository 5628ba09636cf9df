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

// Package config loads the settings that configure the host *embedding*
// this library — they are orthogonal to OFX_PLUGIN_PATH, which spec §6
// reserves for the environment and which this package never reads.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RemoteNode names one render-farm node config.Load's YAML file may list
// under remoteNodes, mirrored into a remotescan.Configuration by the
// caller (config intentionally has no import-time dependency on
// remotescan, so a host that never scans a farm doesn't pull it in).
type RemoteNode struct {
	Name       string   `yaml:"name"`
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	User       string   `yaml:"user"`
	Keyfile    string   `yaml:"keyfile"`
	KnownHosts string   `yaml:"knownHosts"`
	ArchDirs   []string `yaml:"archDirs"`
}

// Config is the host-wide settings document (spec SPEC_FULL §10.3).
type Config struct {
	// SearchPaths holds the YAML file's searchPaths list. No package in
	// this module reads it: plugincache scans only the environment
	// variable's entries and the OS-default directories.
	SearchPaths []string `yaml:"searchPaths"`

	// CacheVersion tags the on-disk plug-in cache format (spec §4.D/
	// §4.E's reconcile pass invalidates a cache written by a different
	// version rather than attempting to read it).
	CacheVersion string `yaml:"cacheVersion"`

	// LogVerbosity names the minimum xlog.Severity to emit, by name
	// ("verbose", "debug", "info", "warning", "error", "fatal").
	LogVerbosity string `yaml:"logVerbosity"`

	// RemoteScanEnabled gates whether RemoteNodes is consulted at all;
	// a farm controller not yet configured for remote scanning can carry
	// a RemoteNodes list in its config file without it taking effect.
	RemoteScanEnabled bool         `yaml:"remoteScanEnabled"`
	RemoteNodes       []RemoteNode `yaml:"remoteNodes"`
}

// DefaultPath is the path Load's Flag looks for when the caller doesn't
// override it.
const DefaultPath = "/etc/ofxhost/config.yaml"

// Flag registers a -config flag (default DefaultPath) on fs and returns
// the string pointer Parse populates once fs.Parse has been called by the
// caller — following the same flag-then-unmarshal split the teacher's own
// env.yaml loader uses, so a host embedding this library controls when
// flag.Parse actually runs.
func Flag(fs *flag.FlagSet) *string {
	return fs.String("config", DefaultPath, "path to the host configuration YAML file")
}

// Load reads and parses the YAML file at path. A missing file is not an
// error: it returns the zero Config, which callers should further default
// (search paths empty, cache version untagged, remote scanning off).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals raw YAML bytes into a Config, split out from Load so
// tests exercise the format without touching a filesystem.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing YAML: %w", err)
	}
	return &c, nil
}
