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

	"github.com/linguakit/language-coach-platform/speech-gateway-service/controllers"
)

// RegisterGatewayRoutes registers the gateway entry point and its
// operational endpoints. The entry point is registered without a method
// pattern on purpose: the controller answers non-POST methods itself with a
// bodyless 405.
func RegisterGatewayRoutes(mux *http.ServeMux, ctrl controllers.GatewayController) {
	mux.HandleFunc("/gateway", ctrl.HandleAction)
	mux.HandleFunc("GET /gateway/cache/stats", ctrl.GetCacheStats)
}
