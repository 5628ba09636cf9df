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

package crashreport_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/crashreport"
)

func TestNopSinkDiscardsEverything(t *testing.T) {
	var s crashreport.NopSink
	assert.NotPanics(t, func() {
		s.Report(errors.New("boom"), map[string]string{"identifier": "com.example.plugin"})
	})
}

func TestNewSentryRejectsMalformedDSN(t *testing.T) {
	_, err := crashreport.NewSentry("not-a-valid-dsn")
	assert.Error(t, err)
}

func TestNewSentryAcceptsEmptyDSN(t *testing.T) {
	// An empty DSN is a valid, well-known way to construct a client that
	// discards every event (sentry-go's own no-network-configured mode).
	s, err := crashreport.NewSentry("")
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.NotPanics(t, func() {
		s.Report(errors.New("boom"), map[string]string{"action": "kOfxActionRender"})
	})
}
