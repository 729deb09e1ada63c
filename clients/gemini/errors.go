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

package gemini

import (
	"fmt"
	"net/http"
	"slices"
)

// transientStatusCodes are provider statuses that signal overload or
// temporary unavailability rather than a broken request.
var transientStatusCodes = []int{
	http.StatusTooManyRequests,     // 429
	http.StatusInternalServerError, // 500
	http.StatusBadGateway,          // 502
	http.StatusServiceUnavailable,  // 503
	http.StatusGatewayTimeout,      // 504
}

// APIError is a non-2xx answer from the Gemini API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini api error (status %d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether the status marks a transient condition. Statuses
// like 400 or 403 describe the request or the credential and never heal on
// their own.
func (e *APIError) Retryable() bool {
	return slices.Contains(transientStatusCodes, e.StatusCode)
}

// TransportError is a failure before any provider answer arrived, e.g. a
// connection reset or attempt timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Retryable is always true for transport failures; the request never reached
// a definitive answer.
func (e *TransportError) Retryable() bool { return true }
