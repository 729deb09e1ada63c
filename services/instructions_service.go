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
	"github.com/linguakit/language-coach-platform/speech-gateway-service/resources"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/retry"
)

// InstructionsService serves the app usage guide, translating it on demand.
type InstructionsService struct {
	gemini       gemini.Client
	cache        *ResultCache
	retryPolicy  retry.Policy
	model        string
	baseLanguage string
}

// NewInstructionsService creates an instructions service. baseLanguage is the
// language the canonical guide is written in.
func NewInstructionsService(client gemini.Client, cache *ResultCache, policy retry.Policy, model, baseLanguage string) *InstructionsService {
	return &InstructionsService{
		gemini:       client,
		cache:        cache,
		retryPolicy:  policy,
		model:        model,
		baseLanguage: baseLanguage,
	}
}

// GetTranslatedInstructions returns the usage guide in languageName.
// Requests for the base language return the canonical text directly, with no
// provider call and no cache entry; the copy is a process constant and
// serving it costs nothing. Translations are memoized per language.
func (s *InstructionsService) GetTranslatedInstructions(ctx context.Context, languageName string) (string, error) {
	if strings.TrimSpace(languageName) == "" {
		return "", fmt.Errorf("languageName must not be empty")
	}
	log := logger.GetLogger(ctx)

	if strings.EqualFold(languageName, s.baseLanguage) {
		return resources.CanonicalInstructions, nil
	}

	key := instructionsCacheKey(languageName)
	if cached, ok := s.cache.Get(key); ok {
		if instructions, ok := cached.(string); ok {
			log.Debug("instructions served from cache", "language", languageName)
			return instructions, nil
		}
	}

	prompt := fmt.Sprintf(
		"Translate the following app instructions into %s. Preserve the numbered "+
			"list markers and the markdown emphasis markers exactly. Reply with the "+
			"translated text only, without commentary.\n\n%s",
		languageName, resources.CanonicalInstructions)

	result, err := retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*gemini.GenerateResult, error) {
		return s.gemini.GenerateContent(ctx, gemini.GenerateRequest{
			Model:  s.model,
			Prompt: prompt,
		})
	})
	if err != nil {
		return "", err
	}

	if result.Text == "" {
		return "", fmt.Errorf("no translation received")
	}

	s.cache.Set(key, result.Text)
	log.Info("instructions translated", "language", languageName)
	return result.Text, nil
}
