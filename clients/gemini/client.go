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

// Package gemini is a thin client for the Google Gemini generateContent API.
// It performs one HTTP attempt per call and classifies failures so the retry
// executor can decide what is worth repeating.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/linguakit/language-coach-platform/speech-gateway-service/clients/requests"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/config"
)

//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/gemini_client_fake.go . Client:ClientMock

// Client calls the generative-AI provider. One invocation is one
// request/response exchange with no internal retries.
type Client interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// GenerateRequest describes one provider call.
type GenerateRequest struct {
	// Model is the provider model name, e.g. a text or a TTS model.
	Model string
	// Prompt is the text instruction sent to the model.
	Prompt string
	// Audio optionally attaches a binary audio part to the prompt.
	Audio *Blob
	// ResponseSchema optionally constrains the response to structured JSON.
	ResponseSchema *Schema
	// ResponseModalities requests non-text output, e.g. ["AUDIO"] for TTS.
	ResponseModalities []string
	// Voice selects the synthesis voice; only meaningful with a TTS model.
	Voice string
}

// GenerateResult is the parsed provider answer: the concatenated text of the
// first candidate (markdown code fences stripped) and its inline audio part,
// when present.
type GenerateResult struct {
	Text  string
	Audio *Blob
}

type geminiClient struct {
	httpClient requests.HttpClient
	apiKey     string
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a Gemini client from the provider configuration.
func NewClient(cfg config.GeminiConfig) Client {
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitRPS)
	}
	return &geminiClient{
		httpClient: &http.Client{Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		limiter:    limiter,
	}
}

func (c *geminiClient) GenerateContent(ctx context.Context, genReq GenerateRequest) (*GenerateResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("gemini: rate limiter wait: %w", err)
		}
	}

	parts := []Part{{Text: genReq.Prompt}}
	if genReq.Audio != nil {
		parts = append(parts, Part{InlineData: genReq.Audio})
	}
	body := generateContentRequest{
		Contents: []Content{{Parts: parts}},
	}
	genCfg := &GenerationConfig{}
	if genReq.ResponseSchema != nil {
		genCfg.ResponseMimeType = "application/json"
		genCfg.ResponseSchema = genReq.ResponseSchema
	}
	if len(genReq.ResponseModalities) > 0 {
		genCfg.ResponseModalities = genReq.ResponseModalities
	}
	if genReq.Voice != "" {
		genCfg.SpeechConfig = &SpeechConfig{
			VoiceConfig: &VoiceConfig{
				PrebuiltVoiceConfig: &PrebuiltVoiceConfig{VoiceName: genReq.Voice},
			},
		}
	}
	if genCfg.ResponseSchema != nil || len(genCfg.ResponseModalities) > 0 || genCfg.SpeechConfig != nil {
		body.GenerationConfig = genCfg
	}

	req := &requests.HttpRequest{
		Name:   "gemini.GenerateContent",
		URL:    fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, genReq.Model),
		Method: http.MethodPost,
	}
	req.SetHeader("x-goog-api-key", c.apiKey)
	if err := req.SetJson(body); err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	result := requests.SendRequest(ctx, c.httpClient, req)
	if err := result.Err(); err != nil {
		return nil, &TransportError{Err: err}
	}

	var resp generateContentResponse
	if err := result.ScanResponse(&resp, http.StatusOK); err != nil {
		var httpErr *requests.HttpError
		if errors.As(err, &httpErr) {
			return nil, &APIError{
				StatusCode: httpErr.StatusCode,
				Message:    parseErrorMessage(httpErr.Body),
			}
		}
		return nil, fmt.Errorf("gemini: %w", err)
	}

	return extractResult(&resp)
}

// parseErrorMessage pulls the human-readable message out of a provider error
// body, falling back to the raw body.
func parseErrorMessage(body string) string {
	var parsed apiErrorBody
	if err := json.Unmarshal([]byte(body), &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return body
}

func extractResult(resp *generateContentResponse) (*GenerateResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: response contained no candidates")
	}
	result := &GenerateResult{}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
		if part.InlineData != nil && result.Audio == nil {
			result.Audio = part.InlineData
		}
	}
	result.Text = stripCodeFences(text.String())
	return result, nil
}

// stripCodeFences removes a surrounding markdown code fence, with or without
// a language tag, from model output. Models constrained to JSON still wrap
// their answer in fences often enough that parsing must tolerate it.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
