// Copyright (c) 2026, LinguaKit Labs. (https://www.linguakit.dev).
//
// LinguaKit Labs licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		raw      string
		expected Action
		ok       bool
	}{
		{raw: "generateWords", expected: ActionGenerateWords, ok: true},
		{raw: "generateSpeech", expected: ActionGenerateSpeech, ok: true},
		{raw: "assessPronunciation", expected: ActionAssessPronunciation, ok: true},
		{raw: "getTranslatedInstructions", expected: ActionGetTranslatedInstructions, ok: true},
		{raw: "GenerateWords", expected: "", ok: false},
		{raw: "generatewords", expected: "", ok: false},
		{raw: "", expected: "", ok: false},
		{raw: "deleteEverything", expected: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			action, ok := ParseAction(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, action)
		})
	}
}
