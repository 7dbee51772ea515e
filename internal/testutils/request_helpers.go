package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
)

// CreateTestRequestWithContext builds a request carrying claims, a
// checkout session and a discard logger, as the middleware chain would.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, sessionID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	claims := &models.Claims{UserID: userID, Email: "test@example.com"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	ctx = middleware.WithLogger(ctx, logger)

	if sessionID != "" {
		ctx = middleware.WithSession(ctx, sessionID)
	}

	return req.WithContext(ctx)
}

// CreateTestRequestWithoutContext builds an unauthenticated request
// with a session and a discard logger.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithLogger(req.Context(), logger)

	if sessionID != "" {
		ctx = middleware.WithSession(ctx, sessionID)
	}

	return req.WithContext(ctx)
}
