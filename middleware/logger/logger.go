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

// Package logger carries a request-scoped slog.Logger through the context.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type contextKey struct{}

// WithLogger returns a context carrying log.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// GetLogger returns the request-scoped logger, or the process default when
// the context carries none.
func GetLogger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request and installs a request-scoped
// logger annotated with method, path and correlation ID.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slog.Default().With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if correlationID := w.Header().Get("X-Correlation-ID"); correlationID != "" {
				log = log.With(slog.String("correlationId", correlationID))
			}

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(recorder, r.WithContext(WithLogger(r.Context(), log)))

			log.Info("request completed",
				slog.Int("status", recorder.status),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
