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

// Package ofxstatus holds the OFX C ABI wire constants: status codes,
// action names and the fixed suite/property name strings a plug-in and
// host exchange. Values are fixed by the OFX 1.4 specification and must be
// reproduced bit-identically (spec §1, §6); none of these are design
// choices of this repository.
package ofxstatus

// Status is the fixed numeric wire status code returned by mainEntry and
// every suite function.
type Status int32

const (
	// OK means the action was understood and performed.
	OK Status = 0
	// ReplyYes is a boolean-question reply.
	ReplyYes Status = 0
	// Failed means the action failed for some reason that isn't fatal to
	// the plug-in or host.
	Failed Status = 1
	// ReplyNo is a boolean-question reply.
	ReplyNo Status = 1
	// ErrFatal means something wrong enough to consider the instance dead.
	ErrFatal Status = 2
	// ReplyDefault means the action was not performed, defer to the host's
	// default behaviour.
	ReplyDefault Status = 2
	// ErrUnknown means the action was unrecognised.
	ErrUnknown Status = 3
	// ErrMissingHostFeature means the host does not support a feature the
	// plug-in needs.
	ErrMissingHostFeature Status = 4
	// ErrUnsupported means the action, clip or parameter was understood
	// but not supported.
	ErrUnsupported Status = 5
	// ErrExists means a resource with that name/identifier already exists.
	ErrExists Status = 6
	// ErrFormat means a file/buffer had an unrecognised format.
	ErrFormat Status = 7
	// ErrMemory means memory could not be allocated.
	ErrMemory Status = 8
	// ErrBadHandle means a handle passed in was invalid.
	ErrBadHandle Status = 9
	// ErrBadIndex means an index was out of range.
	ErrBadIndex Status = 10
	// ErrValue means a value was invalid for the given property/parameter.
	ErrValue Status = 11
)

// String renders the status using its wire constant name.
func (s Status) String() string {
	switch s {
	case OK: // == ReplyYes
		return "kOfxStatOK"
	case Failed: // == ReplyNo
		return "kOfxStatFailed"
	case ErrFatal: // == ReplyDefault
		return "kOfxStatErrFatal"
	case ErrUnknown:
		return "kOfxStatErrUnknown"
	case ErrMissingHostFeature:
		return "kOfxStatErrMissingHostFeature"
	case ErrUnsupported:
		return "kOfxStatErrUnsupported"
	case ErrExists:
		return "kOfxStatErrExists"
	case ErrFormat:
		return "kOfxStatErrFormat"
	case ErrMemory:
		return "kOfxStatErrMemory"
	case ErrBadHandle:
		return "kOfxStatErrBadHandle"
	case ErrBadIndex:
		return "kOfxStatErrBadIndex"
	case ErrValue:
		return "kOfxStatErrValue"
	default:
		return "kOfxStatUnknown"
	}
}

// Succeeded reports whether s is one of the two actions-performed statuses:
// ok or default (spec §4.H/§7: "default and ok are both successes at this
// layer").
func (s Status) Succeeded() bool {
	return s == OK || s == ErrFatal // ErrFatal shares the wire value of ReplyDefault.
}

// replyDefault is the unambiguous spelling to use when the context is a
// question reply rather than an action result, since ErrFatal and
// ReplyDefault alias the same wire value (2) by design of the OFX ABI.
const replyDefault = ErrFatal

// IsQuestionReply interprets s as a yes/no/default reply rather than an
// actions status; all three names alias the same numeric space as OK/Failed/ErrFatal.
func IsQuestionReply(s Status) (yes, no, dflt bool) {
	return s == ReplyYes, s == ReplyNo, s == replyDefault
}
