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

package utils

import (
	"github.com/linguakit/language-coach-platform/speech-gateway-service/models"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/spec"
)

func ConvertToWordListResponse(words []string) spec.WordListResponse {
	if len(words) == 0 {
		return spec.WordListResponse{Words: []string{}}
	}
	return spec.WordListResponse{Words: words}
}

func ConvertToSpeechResponse(speech models.Speech) spec.SpeechResponse {
	return spec.SpeechResponse{
		AudioBase64: speech.AudioBase64,
		MimeType:    speech.MimeType,
	}
}

func ConvertToAssessmentResponse(assessment models.Assessment) spec.AssessmentResponse {
	return spec.AssessmentResponse{
		Score:    assessment.Score,
		Feedback: assessment.Feedback,
	}
}

func ConvertToInstructionsResponse(instructions string) spec.InstructionsResponse {
	return spec.InstructionsResponse{Instructions: instructions}
}
