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

package plugincache_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/plugincache"
)

func TestSearchPathsReadsEnvAndAppendsDefaults(t *testing.T) {
	sep := ":"
	if runtime.GOOS == "windows" {
		sep = ";"
	}
	const envVar = "OFX_PLUGIN_PATH_TEST"
	t.Setenv(envVar, "/a"+sep+"/b")

	paths := plugincache.SearchPaths(envVar)
	require.GreaterOrEqual(t, len(paths), 2)
	assert.Equal(t, "/a", paths[0].Dir)
	assert.True(t, paths[0].Recursive)
	assert.Equal(t, "/b", paths[1].Dir)
	assert.True(t, paths[1].Recursive)
	for _, p := range paths[2:] {
		assert.False(t, p.Recursive)
	}
}

func TestScanBundlesFindsBundleDirectories(t *testing.T) {
	root := t.TempDir()
	bundle := filepath.Join(root, "Invert.ofx.bundle")
	require.NoError(t, os.MkdirAll(bundle, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notabundle"), 0o755))

	found := plugincache.ScanBundles([]plugincache.SearchPath{{Dir: root, Recursive: false}})
	assert.Equal(t, []string{bundle}, found)
}

func TestScanBundlesRecursiveDescendsSubdirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "vendor", "Blur.ofx.bundle")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found := plugincache.ScanBundles([]plugincache.SearchPath{{Dir: root, Recursive: true}})
	assert.Equal(t, []string{nested}, found)
}

func TestResolveBinaryFindsArchSpecificFile(t *testing.T) {
	root := t.TempDir()
	bundle := filepath.Join(root, "Invert.ofx.bundle")
	arch := filepath.Join(bundle, "Contents", "Linux-x86-64")
	require.NoError(t, os.MkdirAll(arch, 0o755))
	bin := filepath.Join(arch, "Invert")
	require.NoError(t, os.WriteFile(bin, []byte("x"), 0o755))

	if runtime.GOOS != "linux" {
		t.Skip("arch resolution is host-specific; this asserts the Linux-x86-64 layout directly")
	}
	path, ok := plugincache.ResolveBinary(bundle)
	require.True(t, ok)
	assert.Equal(t, bin, path)
}

func TestResolveBinaryMissingReturnsFalse(t *testing.T) {
	_, ok := plugincache.ResolveBinary(filepath.Join(t.TempDir(), "Nothing.ofx.bundle"))
	assert.False(t, ok)
}
