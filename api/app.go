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

package api

import (
	"net/http"

	"github.com/linguakit/language-coach-platform/speech-gateway-service/config"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/middleware"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/middleware/logger"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/spec"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/utils"
	"github.com/linguakit/language-coach-platform/speech-gateway-service/wiring"
)

// MakeHTTPHandler creates a new HTTP handler with middleware and routes
func MakeHTTPHandler(params *wiring.AppParams, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Register health check
	registerHealthCheck(mux)

	// Create a sub-mux for API v1 routes
	apiMux := http.NewServeMux()
	RegisterGatewayRoutes(apiMux, params.GatewayController)

	// Apply middleware in reverse order (last middleware is applied first)
	apiHandler := http.Handler(apiMux)
	apiHandler = logger.RequestLogger()(apiHandler)
	apiHandler = middleware.AddCorrelationID()(apiHandler)
	apiHandler = middleware.CORS(cfg.CORSAllowedOrigin)(apiHandler)
	apiHandler = middleware.RecovererOnPanic()(apiHandler)

	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiHandler))

	return mux
}

func registerHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccessResponse(w, http.StatusOK, spec.HealthResponse{Status: "healthy"})
	})
}
