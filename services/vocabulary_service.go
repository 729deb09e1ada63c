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
	"github.com/linguakit/language-coach-platform/speech-gateway-service/retry"
)

// maxWordsPerList caps how many words one generateWords call returns.
const maxWordsPerList = 10

// VocabularyService produces short topic-based word lists for learners.
type VocabularyService struct {
	gemini      gemini.Client
	cache       *ResultCache
	retryPolicy retry.Policy
	model       string
}

// NewVocabularyService creates a vocabulary service.
func NewVocabularyService(client gemini.Client, cache *ResultCache, policy retry.Policy, model string) *VocabularyService {
	return &VocabularyService{
		gemini:      client,
		cache:       cache,
		retryPolicy: policy,
		model:       model,
	}
}

// wordListSchema constrains the provider to a JSON object with a words array.
var wordListSchema = &gemini.Schema{
	Type: "OBJECT",
	Properties: map[string]*gemini.Schema{
		"words": {
			Type:  "ARRAY",
			Items: &gemini.Schema{Type: "STRING"},
		},
	},
	Required: []string{"words"},
}

// GenerateWords returns up to ten distinct single words on topic in the
// target language. Results are memoized per (topic, language), folded
// case-insensitively.
func (s *VocabularyService) GenerateWords(ctx context.Context, topic, language string) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic must not be empty")
	}
	if strings.TrimSpace(language) == "" {
		return nil, fmt.Errorf("language must not be empty")
	}
	log := logger.GetLogger(ctx)

	key := wordsCacheKey(topic, language)
	if cached, ok := s.cache.Get(key); ok {
		if words, ok := cached.([]string); ok {
			log.Debug("word list served from cache", "topic", topic, "language", language)
			return words, nil
		}
	}

	prompt := fmt.Sprintf(
		"Generate a list of %d common, distinct single words about the topic %q in %s, "+
			"suitable for a language learner practicing pronunciation. "+
			"Respond with a JSON object containing a \"words\" array of strings and nothing else.",
		maxWordsPerList, topic, language)

	result, err := retry.Do(ctx, s.retryPolicy, func(ctx context.Context) (*gemini.GenerateResult, error) {
		return s.gemini.GenerateContent(ctx, gemini.GenerateRequest{
			Model:          s.model,
			Prompt:         prompt,
			ResponseSchema: wordListSchema,
		})
	})
	if err != nil {
		return nil, err
	}

	words, err := parseWordList(result.Text)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, words)
	log.Info("word list generated", "topic", topic, "language", language, "count", len(words))
	return words, nil
}

// parseWordList validates the provider's structured response. A missing,
// empty or mistyped words field is a response-shape failure; no default list
// is substituted.
func parseWordList(text string) ([]string, error) {
	var parsed struct {
		Words []string `json:"words"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("model response did not contain a valid words list: %w", err)
	}
	if len(parsed.Words) == 0 {
		return nil, fmt.Errorf("model response did not contain a words list")
	}
	if len(parsed.Words) > maxWordsPerList {
		parsed.Words = parsed.Words[:maxWordsPerList]
	}
	return parsed.Words, nil
}
