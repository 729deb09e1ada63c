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

package wiring

import (
	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/gemini"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/config"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/controllers"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/retry"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/services"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	// Controllers
	GatewayController controllers.GatewayController

	// Shared state
	ResultCache *services.ResultCache

	// Clients
	GeminiClient gemini.Client
}

// InitializeAppParams wires the dependency graph: one provider client, one
// process-wide result cache, one retry policy, and the per-action services
// behind the gateway controller.
func InitializeAppParams(cfg *config.Config) (*AppParams, error) {
	geminiClient := gemini.NewClient(cfg.Gemini)
	return initializeWithClient(cfg, geminiClient), nil
}

// InitializeAppParamsWithClient wires the graph around a caller-provided
// provider client. Tests use it to substitute a mock.
func InitializeAppParamsWithClient(cfg *config.Config, client gemini.Client) *AppParams {
	return initializeWithClient(cfg, client)
}

func initializeWithClient(cfg *config.Config, client gemini.Client) *AppParams {
	cache := services.NewResultCache(cfg.Cache.TTL())
	policy := retry.Policy{
		MaxAttempts:  cfg.Retry.MaxAttempts,
		InitialDelay: cfg.Retry.InitialDelay(),
	}

	vocabulary := services.NewVocabularyService(client, cache, policy, cfg.Gemini.TextModel)
	speech := services.NewSpeechService(client, cache, policy, cfg.Gemini.SpeechModel)
	assessment := services.NewAssessmentService(client, policy, cfg.Gemini.TextModel)
	instructions := services.NewInstructionsService(client, cache, policy, cfg.Gemini.TextModel, cfg.BaseLanguage)

	return &AppParams{
		GatewayController: controllers.NewGatewayController(vocabulary, speech, assessment, instructions, cache),
		ResultCache:       cache,
		GeminiClient:      client,
	}
}
