package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Child-friendly style directives applied to every image prompt before
// dispatch. Wording is part of the product behavior.
const (
	imagePromptPrefix = "Create a cute, simple 2D cartoon with bright colors, " +
		"rounded shapes and minimal details, showing: "
	imagePromptSuffix = ". Make it simple and easily recognizable for children."
)

// ImageRequest pairs the source text an illustration belongs to with the
// prompt text sent to the provider (the target-language text).
type ImageRequest struct {
	SourceText string
	PromptText string
}

// ImageResult is one successfully generated illustration, paired back with
// its originating request.
type ImageResult struct {
	SourceText string
	PromptText string
	URL        string
}

// ImageFetcherConfig holds the fetcher's tunables.
type ImageFetcherConfig struct {
	// MaxConcurrent caps simultaneous in-flight provider calls.
	// If zero or negative, defaults to 5.
	MaxConcurrent int

	// MaxAttempts bounds how often a rate-limited request is retried.
	// If zero or negative, defaults to 3.
	MaxAttempts int

	// RetryBackoff is the wait between rate-limit retries.
	// If zero or negative, defaults to one second.
	RetryBackoff time.Duration
}

// ImageFetcher fans image-generation requests out to the provider under a
// concurrency cap. Rate-limited requests are retried a bounded number of
// times; any other per-item failure is logged and the item dropped from the
// output, never aborting the batch. The permit pool is process-wide per
// fetcher instance.
type ImageFetcher struct {
	client  ImageClient
	logger  *slog.Logger
	permits chan struct{}

	maxAttempts  int
	retryBackoff time.Duration
}

// NewImageFetcher creates an ImageFetcher with the given client and config.
func NewImageFetcher(client ImageClient, cfg ImageFetcherConfig, logger *slog.Logger) *ImageFetcher {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ImageFetcher{
		client:       client,
		logger:       logger,
		permits:      make(chan struct{}, maxConcurrent),
		maxAttempts:  maxAttempts,
		retryBackoff: retryBackoff,
	}
}

// FormatPrompt wraps a prompt with the child-friendly style directives.
func FormatPrompt(prompt string) string {
	return imagePromptPrefix + prompt + imagePromptSuffix
}

// FetchAll generates illustrations for all requests concurrently, at most
// MaxConcurrent in flight at once. Results keep the input order; requests
// whose generation failed are absent from the output rather than retained
// as placeholders.
func (f *ImageFetcher) FetchAll(ctx context.Context, requests []ImageRequest) []ImageResult {
	urls := make([]string, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req ImageRequest) {
			defer wg.Done()

			url, err := f.fetchOne(ctx, req.PromptText)
			if err != nil {
				f.logger.Error("image generation failed",
					"prompt", req.PromptText,
					"error", err)
				return
			}
			urls[i] = url
		}(i, req)
	}
	wg.Wait()

	results := make([]ImageResult, 0, len(requests))
	for i, req := range requests {
		if urls[i] == "" {
			continue
		}
		results = append(results, ImageResult{
			SourceText: req.SourceText,
			PromptText: req.PromptText,
			URL:        urls[i],
		})
	}
	return results
}

// FetchOne generates a single illustration under the same permit pool and
// retry policy as FetchAll.
func (f *ImageFetcher) FetchOne(ctx context.Context, promptText string) (string, error) {
	return f.fetchOne(ctx, promptText)
}

// fetchOne acquires a permit, formats the prompt, and calls the provider,
// retrying rate-limited calls up to maxAttempts with a fixed backoff. The
// permit is held across retries so retry pressure stays inside the cap.
func (f *ImageFetcher) fetchOne(ctx context.Context, promptText string) (string, error) {
	select {
	case f.permits <- struct{}{}:
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrTransientFailure, ctx.Err())
	}
	defer func() { <-f.permits }()

	prompt := FormatPrompt(promptText)

	var lastErr error
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		url, err := f.client.GenerateImage(ctx, prompt)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if !errors.Is(err, ErrRateLimited) {
			return "", err
		}

		f.logger.Warn("image provider rate limited, backing off",
			"attempt", attempt,
			"max_attempts", f.maxAttempts,
			"backoff", f.retryBackoff)

		if attempt == f.maxAttempts {
			break
		}

		select {
		case <-time.After(f.retryBackoff):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrTransientFailure, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: exceeded %d attempts: %v",
		ErrRateLimited, f.maxAttempts, lastErr)
}
