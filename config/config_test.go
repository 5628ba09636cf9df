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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/config"
)

const sample = `
searchPaths:
  - /farm/shared/ofx-plugins
cacheVersion: "3"
logVerbosity: debug
remoteScanEnabled: true
remoteNodes:
  - name: render-01
    host: render-01.farm.internal
    port: 22
    user: farmscan
    keyfile: /etc/ofxhost/farmscan_id_ed25519
    knownHosts: /etc/ofxhost/known_hosts
    archDirs: ["Linux-x86-64"]
`

func TestParseSample(t *testing.T) {
	c, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"/farm/shared/ofx-plugins"}, c.SearchPaths)
	assert.Equal(t, "3", c.CacheVersion)
	assert.Equal(t, "debug", c.LogVerbosity)
	assert.True(t, c.RemoteScanEnabled)
	require.Len(t, c.RemoteNodes, 1)
	assert.Equal(t, "render-01", c.RemoteNodes[0].Name)
	assert.Equal(t, []string{"Linux-x86-64"}, c.RemoteNodes[0].ArchDirs)
}

func TestLoadMissingFileReturnsZeroConfig(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Empty(t, c.SearchPaths)
	assert.False(t, c.RemoteScanEnabled)
}

func TestLoadReadsFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeFile(path, sample))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3", c.CacheVersion)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("searchPaths: [unterminated"))
	assert.Error(t, err)
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o600)
}
