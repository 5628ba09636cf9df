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

package host

import (
	"github.com/openfx-host/ofxhost/ofxabi"
	"github.com/openfx-host/ofxhost/ofxstatus"
	"github.com/openfx-host/ofxhost/propset"
)

// Sink receives messages a plug-in addresses to the host (spec §4.J:
// "message / persistent-message routing from plug-in to embedder"). An
// embedder with no UI surface can pass a no-op Sink.
type Sink interface {
	Message(messageType, messageID, text string) ofxstatus.Status
	SetPersistentMessage(messageType, messageID, text string) ofxstatus.Status
	ClearPersistentMessage() ofxstatus.Status
}

// Host is the facade a plug-in's setHost call receives: the host property
// set (component J), the fetchSuite entry the plug-in calls back through,
// and message routing to Sink.
type Host struct {
	Properties *propset.Set
	raw        *ofxabi.Host
	sink       Sink
}

// New builds a Host, seeds its property set from id/caps, and installs the
// fetchSuite trampoline. sink receives every message/persistent-message
// call a plug-in makes; pass a NopSink if the embedder has none.
func New(id Identity, caps Capabilities, sink Sink) *Host {
	props := propset.New(false)
	seedHostProperties(props, id, caps)

	h := &Host{Properties: props, sink: sink}
	h.raw = ofxabi.NewHost(props.Handle())
	installFetchSuite(h)
	return h
}

// Raw returns the ofxabi.Host a RawPlugin.SetHost call needs.
func (h *Host) Raw() *ofxabi.Host { return h.raw }

// Close releases the host's malloc'd C struct and its property set handle.
// Call once, after every plug-in that might call back into this host has
// been unloaded.
func (h *Host) Close() {
	h.raw.Free()
	h.Properties.Release()
}

// NopSink discards every message; ClearPersistentMessage and the others
// report OK so a plug-in never sees ErrMissingHostFeature for messaging.
type NopSink struct{}

func (NopSink) Message(string, string, string) ofxstatus.Status             { return ofxstatus.OK }
func (NopSink) SetPersistentMessage(string, string, string) ofxstatus.Status { return ofxstatus.OK }
func (NopSink) ClearPersistentMessage() ofxstatus.Status                    { return ofxstatus.OK }
