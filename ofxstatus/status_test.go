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

package ofxstatus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfx-host/ofxhost/ofxstatus"
)

func TestStatusStringMatchesWireNames(t *testing.T) {
	cases := map[ofxstatus.Status]string{
		ofxstatus.OK:                    "kOfxStatOK",
		ofxstatus.Failed:                "kOfxStatFailed",
		ofxstatus.ErrFatal:              "kOfxStatErrFatal",
		ofxstatus.ErrUnknown:            "kOfxStatErrUnknown",
		ofxstatus.ErrMissingHostFeature: "kOfxStatErrMissingHostFeature",
		ofxstatus.ErrUnsupported:        "kOfxStatErrUnsupported",
		ofxstatus.ErrExists:             "kOfxStatErrExists",
		ofxstatus.ErrFormat:             "kOfxStatErrFormat",
		ofxstatus.ErrMemory:             "kOfxStatErrMemory",
		ofxstatus.ErrBadHandle:          "kOfxStatErrBadHandle",
		ofxstatus.ErrBadIndex:           "kOfxStatErrBadIndex",
		ofxstatus.ErrValue:              "kOfxStatErrValue",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}

func TestSucceededAcceptsOkAndDefault(t *testing.T) {
	assert.True(t, ofxstatus.OK.Succeeded())
	assert.True(t, ofxstatus.ErrFatal.Succeeded(), "ErrFatal aliases ReplyDefault's wire value")
	assert.False(t, ofxstatus.Failed.Succeeded())
	assert.False(t, ofxstatus.ErrBadHandle.Succeeded())
}

func TestIsQuestionReplyAliasesActionStatuses(t *testing.T) {
	yes, no, dflt := ofxstatus.IsQuestionReply(ofxstatus.ReplyYes)
	assert.True(t, yes)
	assert.False(t, no)
	assert.False(t, dflt)

	yes, no, dflt = ofxstatus.IsQuestionReply(ofxstatus.ReplyNo)
	assert.False(t, yes)
	assert.True(t, no)
	assert.False(t, dflt)

	yes, no, dflt = ofxstatus.IsQuestionReply(ofxstatus.ReplyDefault)
	assert.False(t, yes)
	assert.False(t, no)
	assert.True(t, dflt)
}
