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
	"encoding/json"
	"net/http"

	"github.com/linguakit/language-coach-platform/speech-gateway-service/middleware/logger"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/models"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/services"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/spec"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/utils"
)

// GatewayController defines the HTTP handlers of the gateway entry point
type GatewayController interface {
	HandleAction(w http.ResponseWriter, r *http.Request)
	GetCacheStats(w http.ResponseWriter, r *http.Request)
}

type gatewayController struct {
	vocabulary   *services.VocabularyService
	speech       *services.SpeechService
	assessment   *services.AssessmentService
	instructions *services.InstructionsService
	cache        *services.ResultCache
}

// NewGatewayController creates a new gateway controller
func NewGatewayController(
	vocabulary *services.VocabularyService,
	speech *services.SpeechService,
	assessment *services.AssessmentService,
	instructions *services.InstructionsService,
	cache *services.ResultCache,
) GatewayController {
	return &gatewayController{
		vocabulary:   vocabulary,
		speech:       speech,
		assessment:   assessment,
		instructions: instructions,
		cache:        cache,
	}
}

// HandleAction is the single gateway entry point. It accepts POST only,
// routes the envelope to the matching service, and always answers with a
// response envelope: 200 with the typed result, 400 for a request the
// gateway refuses to dispatch, 500 for any service failure.
func (c *gatewayController) HandleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		// Method rejection happens before the body is touched; no envelope.
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("HandleAction: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	action, ok := models.ParseAction(req.Action)
	if !ok {
		log.Error("HandleAction: unrecognized action", "action", req.Action)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid action")
		return
	}

	switch action {
	case models.ActionGenerateWords:
		c.handleGenerateWords(w, r, req.Payload)
	case models.ActionGenerateSpeech:
		c.handleGenerateSpeech(w, r, req.Payload)
	case models.ActionAssessPronunciation:
		c.handleAssessPronunciation(w, r, req.Payload)
	case models.ActionGetTranslatedInstructions:
		c.handleGetTranslatedInstructions(w, r, req.Payload)
	}
}

func (c *gatewayController) handleGenerateWords(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var payload spec.GenerateWordsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error("handleGenerateWords: failed to decode payload", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	words, err := c.vocabulary.GenerateWords(ctx, payload.Topic, payload.Language)
	if err != nil {
		log.Error("handleGenerateWords: failed to generate words", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, utils.ConvertToWordListResponse(words))
}

func (c *gatewayController) handleGenerateSpeech(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var payload spec.GenerateSpeechPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error("handleGenerateSpeech: failed to decode payload", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	speech, err := c.speech.SynthesizeSpeech(ctx, payload.Text, payload.Voice)
	if err != nil {
		log.Error("handleGenerateSpeech: failed to synthesize speech", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, utils.ConvertToSpeechResponse(speech))
}

func (c *gatewayController) handleAssessPronunciation(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var payload spec.AssessPronunciationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error("handleAssessPronunciation: failed to decode payload", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	assessment, err := c.assessment.AssessPronunciation(ctx, payload.Word, payload.Language, payload.UserAudioBase64, payload.MimeType)
	if err != nil {
		log.Error("handleAssessPronunciation: failed to assess pronunciation", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, utils.ConvertToAssessmentResponse(assessment))
}

func (c *gatewayController) handleGetTranslatedInstructions(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var payload spec.TranslatedInstructionsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error("handleGetTranslatedInstructions: failed to decode payload", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	instructions, err := c.instructions.GetTranslatedInstructions(ctx, payload.LanguageName)
	if err != nil {
		log.Error("handleGetTranslatedInstructions: failed to get instructions", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteSuccessResponse(w, http.StatusOK, utils.ConvertToInstructionsResponse(instructions))
}

// GetCacheStats reports the current result cache size. Operational aid only.
func (c *gatewayController) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, http.StatusOK, spec.CacheStatsResponse{Entries: c.cache.Size()})
}
