package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/service"
)

func testConfig() config.Config {
	return config.Config{RateLimitRPS: 100, RateLimitBurst: 100}
}

func do(t *testing.T, h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(`{"length":12}`))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterOpen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := newRouter(ctx, testConfig(), service.NewGeneratorService(nil))

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/v1/generate", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, r, http.MethodGet, "/api/v1/generate", "").Code)
}

func TestRouterWithAuth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := testConfig()
	cfg.TokenSecret = "secret"
	r := newRouter(ctx, cfg, service.NewGeneratorService(nil))

	token, err := crypto.GenerateToken("provisioner", "secret", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodPost, "/api/v1/generate", "").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/v1/generate", token).Code)
}
