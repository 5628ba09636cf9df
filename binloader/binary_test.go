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

package binloader_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/binloader"
)

func TestStatInvalidPathMarksInvalid(t *testing.T) {
	b := binloader.New(filepath.Join(t.TempDir(), "does-not-exist.so"))
	assert.Error(t, b.Stat())
	assert.False(t, b.Valid())
}

func TestStatRecordsSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.ofx")
	require.NoError(t, os.WriteFile(path, []byte("not a real binary"), 0o644))

	b := binloader.New(path)
	require.NoError(t, b.Stat())
	assert.True(t, b.Valid())

	mtime, size := b.Signature()
	assert.NotZero(t, mtime)
	assert.Equal(t, int64(len("not a real binary")), size)
}

func TestChangedDetectsSizeEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.ofx")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	b := binloader.New(path)
	require.NoError(t, b.Stat())
	assert.False(t, b.Changed())

	// Ensure the filesystem mtime actually advances on platforms with a
	// coarse mtime resolution.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2-longer"), 0o644))
	assert.True(t, b.Changed())
}

func TestChangedTrueWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.ofx")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	b := binloader.New(path)
	require.NoError(t, b.Stat())
	require.NoError(t, os.Remove(path))
	assert.True(t, b.Changed())
}

func TestSetSignaturePrimesWithoutStat(t *testing.T) {
	b := binloader.New(filepath.Join(t.TempDir(), "unused.ofx"))
	b.SetSignature(1234, 5678)
	assert.True(t, b.Valid())
	mtime, size := b.Signature()
	assert.Equal(t, int64(1234), mtime)
	assert.Equal(t, int64(5678), size)
}

func TestUnrefClampsAtZero(t *testing.T) {
	b := binloader.New(filepath.Join(t.TempDir(), "unused.ofx"))
	assert.Equal(t, 0, b.RefCount())
	b.Unref()
	assert.Equal(t, 0, b.RefCount(), "refcount must never go negative (spec §4.A)")
}

func TestRefOnUnloadableBinaryLeavesRefCountZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-shared-library.ofx")
	require.NoError(t, os.WriteFile(path, []byte("not an ELF/Mach-O/PE image"), 0o644))

	b := binloader.New(path)
	err := b.Ref()
	assert.Error(t, err, "loading a non-library file must fail rather than silently succeed")
	assert.Equal(t, 0, b.RefCount())
	assert.False(t, b.Loaded())
}

func TestSymbolOnUnloadedBinaryReturnsNil(t *testing.T) {
	b := binloader.New(filepath.Join(t.TempDir(), "unused.ofx"))
	assert.Nil(t, b.Symbol("OfxGetNumberOfPlugins"), "spec §4.A: symbol lookup on unloaded binary -> null")
}
