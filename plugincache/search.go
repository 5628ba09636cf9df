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
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SearchPath is one entry in the assembled plug-in search list (spec §4.D).
type SearchPath struct {
	Dir       string
	Recursive bool
}

// pathListSeparator is ';' on Windows, ':' elsewhere (spec §6).
func pathListSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// SearchPaths assembles the ordered path list: the envVar's colon/semicolon
// separated entries (recursive, since an explicit OFX_PLUGIN_PATH entry is
// trusted to be scanned in full) followed by the OS-default plug-in
// directories (non-recursive, matching the convention every OFX host
// observes for its default install locations).
func SearchPaths(envVar string) []SearchPath {
	var out []SearchPath
	if v := os.Getenv(envVar); v != "" {
		for _, p := range strings.Split(v, pathListSeparator()) {
			if p == "" {
				continue
			}
			out = append(out, SearchPath{Dir: p, Recursive: true})
		}
	}
	for _, p := range defaultPluginDirs() {
		out = append(out, SearchPath{Dir: p, Recursive: false})
	}
	return out
}

func defaultPluginDirs() []string {
	switch runtime.GOOS {
	case "windows":
		var dirs []string
		if pf := os.Getenv("PROGRAMFILES"); pf != "" {
			dirs = append(dirs, filepath.Join(pf, "Common Files", "OFX", "Plugins"))
		}
		return dirs
	case "darwin":
		return []string{"/Library/OFX/Plugins"}
	default:
		return []string{"/usr/OFX/Plugins"}
	}
}

const bundleSuffix = ".ofx.bundle"

// ScanBundles walks every search path and returns the bundle directories
// found (each ending in ".ofx.bundle", spec §4.D). Non-recursive entries
// only consider the path's immediate children; recursive entries walk the
// full subtree, not descending further once a bundle directory itself has
// been matched (a bundle never nests another bundle).
func ScanBundles(paths []SearchPath) []string {
	var bundles []string
	for _, sp := range paths {
		if sp.Recursive {
			bundles = append(bundles, scanRecursive(sp.Dir)...)
		} else {
			bundles = append(bundles, scanShallow(sp.Dir)...)
		}
	}
	return bundles
}

func scanShallow(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), bundleSuffix) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out
}

func scanRecursive(dir string) []string {
	var out []string
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), bundleSuffix) {
			out = append(out, path)
			return filepath.SkipDir
		}
		return nil
	})
	return out
}

// ResolveBinary returns the per-arch binary path for bundleDir (spec §4.D/
// §6: "<bundle>/Contents/<arch>/<basename>"), trying archCandidates() in
// order and returning the first that exists on disk.
func ResolveBinary(bundleDir string) (path string, ok bool) {
	base := strings.TrimSuffix(filepath.Base(bundleDir), bundleSuffix)
	for _, arch := range archCandidates() {
		candidate := filepath.Join(bundleDir, "Contents", arch, base)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
