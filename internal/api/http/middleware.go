package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/kidiezyllex/real-estate-BE/internal/config"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/security"
)

// authMiddleware enforces the security level configured for the matched route. A nil
// verifier leaves every route open.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.verifier == nil || config.GetSecurityLevel(routeName(r)) == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token := extractToken(r)
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}
		claims, err := s.verifier.ValidateToken(token)
		if err != nil {
			status := http.StatusUnauthorized
			if err == security.ErrWrongTokenType {
				status = http.StatusForbidden
			}
			writeMessage(w, status, err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(security.WithClaims(r.Context(), claims)))
	})
}

func extractToken(r *http.Request) string {
	token := r.Header.Get("Authorization")
	// Remove Bearer prefix if present
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		token = token[7:]
	}
	return strings.TrimSpace(token)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", routeName(r),
			"status", recorder.status,
			"duration", time.Since(start))
	})
}
