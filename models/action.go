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

// Action identifies one of the gateway operations. The set is closed; the
// dispatch switch in the controller covers every constant so adding a new
// action is a compile-visible change.
type Action string

const (
	ActionGenerateWords             Action = "generateWords"
	ActionGenerateSpeech            Action = "generateSpeech"
	ActionAssessPronunciation       Action = "assessPronunciation"
	ActionGetTranslatedInstructions Action = "getTranslatedInstructions"
)

// ParseAction maps a raw action string to its Action. The second return is
// false for anything outside the recognized set.
func ParseAction(raw string) (Action, bool) {
	switch Action(raw) {
	case ActionGenerateWords, ActionGenerateSpeech, ActionAssessPronunciation, ActionGetTranslatedInstructions:
		return Action(raw), true
	default:
		return "", false
	}
}
