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

// Package crashreport is an optional sink for the foreign exceptions
// internal/xerr.Recover turns into errors: in addition to the caller
// converting the recovered error to kOfxStatFailed, it can be reported
// with the plug-in identifier and action name attached as tags. A host
// with no network egress passes NopSink; nothing else in this repository
// depends on crashreport being configured.
package crashreport

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// Sink receives a recovered plug-in-call panic, tagged with whatever the
// caller knew about the call that failed (typically "identifier" and
// "action").
type Sink interface {
	Report(err error, tags map[string]string)
}

// NopSink discards every report. Use when the embedding host has no
// crash-reporting backend configured.
type NopSink struct{}

// Report does nothing.
func (NopSink) Report(error, map[string]string) {}

// Sentry reports through a dedicated sentry-go Hub rather than the global
// one, so an embedder that already uses Sentry for its own purposes isn't
// forced to share scope/tags with this library's reports.
type Sentry struct {
	hub *sentry.Hub
}

// NewSentry initializes a client against dsn and returns a Sentry sink
// wrapping a new hub with its own empty scope, so later global
// sentry.Init/sentry.ConfigureScope calls elsewhere in the process don't
// change the tags attached to this sink's reports.
func NewSentry(dsn string) (*Sentry, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{Dsn: dsn})
	if err != nil {
		return nil, err
	}
	hub := sentry.NewHub(client, sentry.NewScope())
	return &Sentry{hub: hub}, nil
}

// Report sends err to Sentry with tags attached under a dedicated scope,
// mirroring the teacher pack's hub.WithScope(...).CaptureException shape.
func (s *Sentry) Report(err error, tags map[string]string) {
	s.hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		s.hub.CaptureException(err)
	})
}

// Flush blocks until every report queued before the call is sent, or
// timeout elapses. Call before process exit so a final crash report isn't
// dropped.
func (s *Sentry) Flush(timeout time.Duration) bool {
	return s.hub.Client().Flush(timeout)
}
