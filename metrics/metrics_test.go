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

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfx-host/ofxhost/metrics"
)

func TestCacheHitAndMissIncrementIndependently(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()

	hits, err := counterValue(reg, "ofxhost_cache_hits_total")
	require.NoError(t, err)
	assert.Equal(t, float64(2), hits)

	misses, err := counterValue(reg, "ofxhost_cache_misses_total")
	require.NoError(t, err)
	assert.Equal(t, float64(1), misses)
}

func TestObserveActionCountsErrorsOnlyForNonOK(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveAction("kOfxImageEffectActionRender", "kOfxStatOK", 0)
	m.ObserveAction("kOfxImageEffectActionRender", "kOfxStatFailed", 0)

	count, err := counterValue(reg, "ofxhost_action_dispatch_errors_total")
	require.NoError(t, err)
	assert.Equal(t, float64(1), count)
}

func TestTimerRecordsOneObservation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	done := m.Timer("kOfxActionDescribe")
	done("kOfxStatOK")

	families, err := reg.Gather()
	require.NoError(t, err)
	var sampleCount uint64
	for _, f := range families {
		if f.GetName() != "ofxhost_action_dispatch_duration_seconds" {
			continue
		}
		for _, mf := range f.GetMetric() {
			sampleCount += mf.GetHistogram().GetSampleCount()
		}
	}
	assert.EqualValues(t, 1, sampleCount)
}

func TestTwoRegistriesDoNotCollide(t *testing.T) {
	regA := prometheus.NewRegistry()
	regB := prometheus.NewRegistry()

	mA := metrics.New(regA)
	mB := metrics.New(regB)

	mA.CacheHit()
	mB.CacheHit()
	mB.CacheHit()

	a, err := counterValue(regA, "ofxhost_cache_hits_total")
	require.NoError(t, err)
	assert.Equal(t, float64(1), a)

	b, err := counterValue(regB, "ofxhost_cache_hits_total")
	require.NoError(t, err)
	assert.Equal(t, float64(2), b)
}

func counterValue(reg *prometheus.Registry, name string) (float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total, nil
}
