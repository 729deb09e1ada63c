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

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/gemini"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/middleware/logger"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/models"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/retry"
)

// AssessmentService scores a learner's recorded pronunciation against native
// norms. Results are never cached: each recording is a unique, non-repeatable
// sample and memoized feedback would be stale for the next attempt.
type AssessmentService struct {
	gemini      gemini.Client
	retryPolicy retry.Policy
	model       string
}

// NewAssessmentService creates an assessment service.
func NewAssessmentService(client gemini.Client, policy retry.Policy, model string) *AssessmentService {
	return &AssessmentService{
		gemini:      client,
		retryPolicy: policy,
		model:       model,
	}
}

var assessmentSchema = &gemini.Schema{
	Type: "OBJECT",
	Properties: map[string]*gemini.Schema{
		"score":    {Type: "INTEGER"},
		"feedback": {Type: "STRING"},
	},
	Required: []string{"score", "feedback"},
}

// AssessPronunciation sends the learner's recording to the provider and
// returns a 1-100 score with constructive feedback.
func (s *AssessmentService) AssessPronunciation(ctx context.Context, word, language, userAudioBase64, mimeType string) (models.Assessment, error) {
	if strings.TrimSpace(word) == "" {
		return models.Assessment{}, fmt.Errorf("word must not be empty")
	}
	if strings.TrimSpace(language) == "" {
		return models.Assessment{}, fmt.Errorf("language must not be empty")
	}
	if userAudioBase64 == "" {
		return models.Assessment{}, fmt.Errorf("userAudioBase64 must not be empty")
	}
	if mimeType == "" {
		return models.Assessment{}, fmt.Errorf("mimeType must not be empty")
	}
	log := logger.GetLogger(ctx)

	prompt := fmt.Sprintf(
		"The attached audio is a language learner pronouncing the word %q in %s. "+
			"Compare it against native pronunciation norms and rate it from 1 to 100, "+
			"where 100 is native-level. Respond with a JSON object containing an integer "+
			"\"score\" and a short, constructive, encouraging \"feedback\" string.",
		word, language)

	result, err := retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*gemini.GenerateResult, error) {
		return s.gemini.GenerateContent(ctx, gemini.GenerateRequest{
			Model:          s.model,
			Prompt:         prompt,
			Audio:          &gemini.Blob{MimeType: mimeType, Data: userAudioBase64},
			ResponseSchema: assessmentSchema,
		})
	})
	if err != nil {
		return models.Assessment{}, err
	}

	assessment, err := parseAssessment(result.Text)
	if err != nil {
		return models.Assessment{}, err
	}

	log.Info("pronunciation assessed", "word", word, "language", language, "score", assessment.Score)
	return assessment, nil
}

// parseAssessment validates that the response carries both required fields.
// A malformed answer is treated as fatal, not transient.
func parseAssessment(text string) (models.Assessment, error) {
	var parsed struct {
		Score    *int    `json:"score"`
		Feedback *string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return models.Assessment{}, fmt.Errorf("model response did not contain a valid assessment: %w", err)
	}
	if parsed.Score == nil || parsed.Feedback == nil {
		return models.Assessment{}, fmt.Errorf("model response did not contain a score and feedback")
	}
	assessment := models.Assessment{Score: *parsed.Score, Feedback: *parsed.Feedback}
	// The score contract is 1-100 inclusive; clamp outliers instead of
	// surfacing them to the learner.
	if assessment.Score < 1 {
		assessment.Score = 1
	}
	if assessment.Score > 100 {
		assessment.Score = 100
	}
	return assessment, nil
}
