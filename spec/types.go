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

// Package spec holds the wire types of the gateway API.
package spec

import "encoding/json"

// ActionRequest is the inbound envelope for the gateway entry point.
// Payload is kept raw so the controller can decode it per action.
type ActionRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// GenerateWordsPayload carries the inputs of the generateWords action.
type GenerateWordsPayload struct {
	Topic    string `json:"topic"`
	Language string `json:"language"`
}

// GenerateSpeechPayload carries the inputs of the generateSpeech action.
type GenerateSpeechPayload struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// AssessPronunciationPayload carries the inputs of the assessPronunciation action.
type AssessPronunciationPayload struct {
	Word            string `json:"word"`
	Language        string `json:"language"`
	UserAudioBase64 string `json:"userAudioBase64"`
	MimeType        string `json:"mimeType"`
}

// TranslatedInstructionsPayload carries the inputs of the getTranslatedInstructions action.
type TranslatedInstructionsPayload struct {
	LanguageName string `json:"languageName"`
}

// WordListResponse is the success body of generateWords.
type WordListResponse struct {
	Words []string `json:"words"`
}

// SpeechResponse is the success body of generateSpeech.
type SpeechResponse struct {
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType"`
}

// AssessmentResponse is the success body of assessPronunciation.
type AssessmentResponse struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// InstructionsResponse is the success body of getTranslatedInstructions.
type InstructionsResponse struct {
	Instructions string `json:"instructions"`
}

// ErrorResponse is the error body for client and server failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CacheStatsResponse reports the size of the in-process result cache.
type CacheStatsResponse struct {
	Entries int `json:"entries"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
