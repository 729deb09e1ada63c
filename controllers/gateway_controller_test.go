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

package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/clientmocks"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/gemini"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/retry"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/services"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/spec"
)

func newTestController(mockClient *clientmocks.ClientMock) (GatewayController, *services.ResultCache) {
	policy := retry.Policy{MaxAttempts: 2, InitialDelay: time.Millisecond}
	cache := services.NewResultCache(time.Hour)
	ctrl := NewGatewayController(
		services.NewVocabularyService(mockClient, cache, policy, "text-model"),
		services.NewSpeechService(mockClient, cache, policy, "speech-model"),
		services.NewAssessmentService(mockClient, policy, "text-model"),
		services.NewInstructionsService(mockClient, cache, policy, "text-model", "English"),
		cache,
	)
	return ctrl, cache
}

func postAction(t *testing.T, ctrl GatewayController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/gateway", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.HandleAction(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) spec.ErrorResponse {
	t.Helper()
	var resp spec.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleAction_RejectsNonPost(t *testing.T) {
	mockClient := &clientmocks.ClientMock{}
	ctrl, _ := newTestController(mockClient)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/gateway", strings.NewReader("this body is never read"))
			rec := httptest.NewRecorder()
			ctrl.HandleAction(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
	assert.Empty(t, mockClient.GenerateContentCalls())
}

func TestHandleAction_InvalidBody(t *testing.T) {
	mockClient := &clientmocks.ClientMock{}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec).Error)
	assert.Empty(t, mockClient.GenerateContentCalls())
}

func TestHandleAction_UnknownAction(t *testing.T) {
	mockClient := &clientmocks.ClientMock{}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "summonDragons", "payload": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", decodeError(t, rec).Error)
	assert.Empty(t, mockClient.GenerateContentCalls())
}

func TestHandleAction_ActionNamesAreCaseSensitive(t *testing.T) {
	mockClient := &clientmocks.ClientMock{}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "GenerateWords", "payload": {"topic": "animals", "language": "Spanish"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, mockClient.GenerateContentCalls())
}

func TestHandleAction_GenerateWords(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{Text: `{"words": ["gato", "perro"]}`}, nil
		},
	}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "generateWords", "payload": {"topic": "animals", "language": "Spanish"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp spec.WordListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"gato", "perro"}, resp.Words)
}

func TestHandleAction_GenerateWordsInvalidPayload(t *testing.T) {
	mockClient := &clientmocks.ClientMock{}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "generateWords", "payload": "not an object"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payload", decodeError(t, rec).Error)
	assert.Empty(t, mockClient.GenerateContentCalls())
}

func TestHandleAction_GenerateSpeech(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{
				Audio: &gemini.Blob{MimeType: "audio/wav", Data: "UklGRg=="},
			}, nil
		},
	}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "generateSpeech", "payload": {"text": "hola", "voice": "Kore"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp spec.SpeechResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "UklGRg==", resp.AudioBase64)
	assert.Equal(t, "audio/wav", resp.MimeType)
}

func TestHandleAction_AssessPronunciation(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{Text: `{"score": 92, "feedback": "Nearly native."}`}, nil
		},
	}
	ctrl, cache := newTestController(mockClient)

	rec := postAction(t, ctrl,
		`{"action": "assessPronunciation", "payload": {"word": "perro", "language": "Spanish", "userAudioBase64": "c29tZQ==", "mimeType": "audio/webm"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp spec.AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 92, resp.Score)
	assert.Equal(t, "Nearly native.", resp.Feedback)

	// Assessments never land in the result cache.
	assert.Equal(t, 0, cache.Size())
}

func TestHandleAction_GetTranslatedInstructions(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{Text: "1. **Choisissez** un sujet."}, nil
		},
	}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "getTranslatedInstructions", "payload": {"languageName": "French"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp spec.InstructionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1. **Choisissez** un sujet.", resp.Instructions)
}

func TestHandleAction_ServiceFailureMapsTo500(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return nil, &gemini.APIError{StatusCode: http.StatusServiceUnavailable, Message: "overloaded"}
		},
	}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "generateWords", "payload": {"topic": "animals", "language": "Spanish"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, retry.ErrServiceBusy.Error(), decodeError(t, rec).Error)
	// Two attempts per the test policy, then the budget is spent.
	assert.Len(t, mockClient.GenerateContentCalls(), 2)
}

func TestGetCacheStats(t *testing.T) {
	mockClient := &clientmocks.ClientMock{
		GenerateContentFunc: func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResult, error) {
			return &gemini.GenerateResult{Text: `{"words": ["gato"]}`}, nil
		},
	}
	ctrl, _ := newTestController(mockClient)

	rec := postAction(t, ctrl, `{"action": "generateWords", "payload": {"topic": "animals", "language": "Spanish"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/gateway/cache/stats", nil)
	statsRec := httptest.NewRecorder()
	ctrl.GetCacheStats(statsRec, req)

	require.Equal(t, http.StatusOK, statsRec.Code)
	var resp spec.CacheStatsResponse
	require.NoError(t, json.Unmarshal(statsRec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Entries)
}
