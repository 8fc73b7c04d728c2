package aimlapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinalize/sinalize-api/internal/config"
	"github.com/sinalize/sinalize-api/internal/generation"
)

func testConfig(baseURL string) config.ImageAPIConfig {
	return config.ImageAPIConfig{
		Token:          "test-token",
		BaseURL:        baseURL,
		Provider:       "fal-ai",
		Model:          "flux-pro/v1.1-ultra-raw",
		Size:           "256x256",
		TimeoutSeconds: 5,
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		cfg := testConfig("https://api.example.com")
		cfg.Token = ""
		_, err := NewClient(cfg)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("missing base URL", func(t *testing.T) {
		cfg := testConfig("")
		_, err := NewClient(cfg)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}

func TestGenerateImageSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body imageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "fal-ai", body.Provider)
		assert.Equal(t, "flux-pro/v1.1-ultra-raw", body.Model)
		assert.Equal(t, "256x256", body.Size)
		assert.Equal(t, "a red fridge", body.Prompt)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"images":[{"url":"https://cdn.example.com/img.png"}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	url, err := client.GenerateImage(context.Background(), "a red fridge")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", url)
}

func TestGenerateImageRateLimited(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.GenerateImage(context.Background(), "word")
	assert.ErrorIs(t, err, generation.ErrRateLimited)
}

func TestGenerateImageServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream failure"))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.GenerateImage(context.Background(), "word")
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	assert.Contains(t, err.Error(), "500")
}

func TestGenerateImageEmptyImages(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"images":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.GenerateImage(context.Background(), "word")
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}
