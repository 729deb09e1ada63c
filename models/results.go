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

// Speech is a synthesized pronunciation of a single word or phrase,
// binary-encoded as base64 text.
type Speech struct {
	AudioBase64 string
	MimeType    string
}

// Assessment is the outcome of comparing a learner's recorded pronunciation
// against native pronunciation norms. Score is 1-100 inclusive, 100 being
// native-level.
type Assessment struct {
	Score    int
	Feedback string
}
