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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/clientmocks"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/gemini"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/models"
)

func TestAssessPronunciation_Success(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{Text: `{"score": 85, "feedback": "Great vowel length, watch the rolled r."}`}, nil
		},
	}
	service := NewAssessmentService(mockClient, testRetryPolicy(), testModel)

	assessment, err := service.AssessPronunciation(context.Background(), "perro", "Spanish", "c29tZWF1ZGlv", "audio/webm")

	require.NoError(t, err)
	assert.Equal(t, 85, assessment.Score)
	assert.Equal(t, "Great vowel length, watch the rolled r.", assessment.Feedback)

	calls := mockClient.GenerateContentCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Req.Audio)
	assert.Equal(t, "audio/webm", calls[0].Req.Audio.MimeType)
	assert.Equal(t, "c29tZWF1ZGlv", calls[0].Req.Audio.Data)
	require.NotNil(t, calls[0].Req.ResponseSchema)
	assert.ElementsMatch(t, []string{"score", "feedback"}, calls[0].Req.ResponseSchema.Required)
}

func TestAssessPronunciation_RepeatedCallsAlwaysHitProvider(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{Text: `{"score": 70, "feedback": "Keep practicing."}`}, nil
		},
	}
	service := NewAssessmentService(mockClient, testRetryPolicy(), testModel)

	// Identical inputs twice: each recording is assessed fresh, never memoized.
	_, err := service.AssessPronunciation(context.Background(), "perro", "Spanish", "c29tZWF1ZGlv", "audio/webm")
	require.NoError(t, err)
	_, err = service.AssessPronunciation(context.Background(), "perro", "Spanish", "c29tZWF1ZGlv", "audio/webm")
	require.NoError(t, err)

	assert.Len(t, mockClient.GenerateContentCalls(), 2)
}

func TestAssessPronunciation_MissingFieldsIsFatal(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{Text: `{"score": 85}`}, nil
		},
	}
	service := NewAssessmentService(mockClient, testRetryPolicy(), testModel)

	_, err := service.AssessPronunciation(context.Background(), "perro", "Spanish", "c29tZWF1ZGlv", "audio/webm")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not contain a score and feedback")
	assert.Len(t, mockClient.GenerateContentCalls(), 1)
}

func TestAssessPronunciation_ValidatesInputs(t *testing.T) {
	mockClient := &clientmocks.ClientMock{}
	service := NewAssessmentService(mockClient, testRetryPolicy(), testModel)

	cases := []struct {
		name                            string
		word, language, audio, mimeType string
	}{
		{name: "empty word", word: "", language: "Spanish", audio: "aa", mimeType: "audio/webm"},
		{name: "empty language", word: "perro", language: "", audio: "aa", mimeType: "audio/webm"},
		{name: "empty audio", word: "perro", language: "Spanish", audio: "", mimeType: "audio/webm"},
		{name: "empty mime type", word: "perro", language: "Spanish", audio: "aa", mimeType: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.AssessPronunciation(context.Background(), tc.word, tc.language, tc.audio, tc.mimeType)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, mockClient.GenerateContentCalls())
}

func TestParseAssessment_ClampsScoreRange(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected models.Assessment
	}{
		{
			name:     "below range",
			text:     `{"score": 0, "feedback": "f"}`,
			expected: models.Assessment{Score: 1, Feedback: "f"},
		},
		{
			name:     "above range",
			text:     `{"score": 140, "feedback": "f"}`,
			expected: models.Assessment{Score: 100, Feedback: "f"},
		},
		{
			name:     "in range",
			text:     `{"score": 55, "feedback": "f"}`,
			expected: models.Assessment{Score: 55, Feedback: "f"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assessment, err := parseAssessment(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, assessment)
		})
	}
}
