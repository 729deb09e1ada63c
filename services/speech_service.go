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
	"fmt"
	"strings"

	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/gemini"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/middleware/logger"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/models"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/retry"
)

// SpeechService synthesizes native pronunciation audio for single words.
type SpeechService struct {
	gemini      gemini.Client
	cache       *ResultCache
	retryPolicy retry.Policy
	model       string
}

// NewSpeechService creates a speech service.
func NewSpeechService(client gemini.Client, cache *ResultCache, policy retry.Policy, model string) *SpeechService {
	return &SpeechService{
		gemini:      client,
		cache:       cache,
		retryPolicy: policy,
		model:       model,
	}
}

// SynthesizeSpeech returns base64-encoded audio of text spoken in the given
// voice. Results are memoized per (text, voice), folded case-insensitively;
// the client fans out one call per word card and repeated words resolve from
// cache.
func (s *SpeechService) SynthesizeSpeech(ctx context.Context, text, voice string) (models.Speech, error) {
	if strings.TrimSpace(text) == "" {
		return models.Speech{}, fmt.Errorf("text must not be empty")
	}
	if strings.TrimSpace(voice) == "" {
		return models.Speech{}, fmt.Errorf("voice must not be empty")
	}
	log := logger.GetLogger(ctx)

	key := speechCacheKey(text, voice)
	if cached, ok := s.cache.Get(key); ok {
		if speech, ok := cached.(models.Speech); ok {
			log.Debug("speech served from cache", "text", text, "voice", voice)
			return speech, nil
		}
	}

	result, err := retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*gemini.GenerateResult, error) {
		return s.gemini.GenerateContent(ctx, gemini.GenerateRequest{
			Model:              s.model,
			Prompt:             fmt.Sprintf("Pronounce clearly and naturally: %s", text),
			ResponseModalities: []string{"AUDIO"},
			Voice:              voice,
		})
	})
	if err != nil {
		return models.Speech{}, err
	}

	if result.Audio == nil || result.Audio.Data == "" {
		return models.Speech{}, fmt.Errorf("no audio data received")
	}

	speech := models.Speech{
		AudioBase64: result.Audio.Data,
		MimeType:    result.Audio.MimeType,
	}
	s.cache.Set(key, speech)
	log.Info("speech synthesized", "text", text, "voice", voice)
	return speech, nil
}
