package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingImageClient tracks the number of concurrent in-flight calls and
// delegates to fn.
type countingImageClient struct {
	fn        func(prompt string) (string, error)
	inFlight  atomic.Int32
	maxSeen   atomic.Int32
	callCount atomic.Int32
}

func (c *countingImageClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	current := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	for {
		max := c.maxSeen.Load()
		if current <= max || c.maxSeen.CompareAndSwap(max, current) {
			break
		}
	}

	c.callCount.Add(1)
	// Give other goroutines a chance to pile up on the semaphore.
	time.Sleep(5 * time.Millisecond)
	return c.fn(prompt)
}

func requests(n int) []ImageRequest {
	reqs := make([]ImageRequest, n)
	for i := range reqs {
		reqs[i] = ImageRequest{
			SourceText: fmt.Sprintf("palavra%d", i),
			PromptText: fmt.Sprintf("word%d", i),
		}
	}
	return reqs
}

func TestFetchAllRespectsConcurrencyCap(t *testing.T) {
	t.Parallel()

	client := &countingImageClient{
		fn: func(prompt string) (string, error) {
			return "https://img.example.com/x.png", nil
		},
	}
	fetcher := NewImageFetcher(client, ImageFetcherConfig{MaxConcurrent: 3}, nil)

	results := fetcher.FetchAll(context.Background(), requests(20))

	assert.Len(t, results, 20)
	assert.LessOrEqual(t, client.maxSeen.Load(), int32(3),
		"no more than K provider calls may be in flight simultaneously")
}

func TestFetchAllPairsResultsWithSourceText(t *testing.T) {
	t.Parallel()

	client := &countingImageClient{
		fn: func(prompt string) (string, error) {
			return "https://img.example.com/" + prompt, nil
		},
	}
	fetcher := NewImageFetcher(client, ImageFetcherConfig{MaxConcurrent: 4}, nil)

	results := fetcher.FetchAll(context.Background(), requests(8))
	require.Len(t, results, 8)

	seen := map[string]bool{}
	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("palavra%d", i), res.SourceText,
			"results keep input order")
		assert.Contains(t, res.URL, res.PromptText,
			"each URL must come from the item's own prompt")
		assert.False(t, seen[res.SourceText], "each input appears at most once")
		seen[res.SourceText] = true
	}
}

func TestFetchAllIsolatesPerItemFailures(t *testing.T) {
	t.Parallel()

	client := &countingImageClient{
		fn: func(prompt string) (string, error) {
			if strings.HasSuffix(prompt, "word3"+imagePromptSuffix) {
				return "", errors.New("provider exploded")
			}
			return "https://img.example.com/ok.png", nil
		},
	}
	fetcher := NewImageFetcher(client, ImageFetcherConfig{MaxConcurrent: 2}, nil)

	results := fetcher.FetchAll(context.Background(), requests(6))

	assert.Len(t, results, 5, "failed item is dropped, not retained as a placeholder")
	for _, res := range results {
		assert.NotEqual(t, "palavra3", res.SourceText)
	}
}

func TestFetchOneRetriesRateLimitWithBound(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	attempts := 0
	client := &countingImageClient{
		fn: func(prompt string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			attempts++
			if attempts < 3 {
				return "", ErrRateLimited
			}
			return "https://img.example.com/done.png", nil
		},
	}
	fetcher := NewImageFetcher(client, ImageFetcherConfig{
		MaxConcurrent: 1,
		MaxAttempts:   3,
		RetryBackoff:  time.Millisecond,
	}, nil)

	url, err := fetcher.FetchOne(context.Background(), "word")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/done.png", url)
	assert.Equal(t, 3, attempts)
}

func TestFetchOneGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	client := &countingImageClient{
		fn: func(prompt string) (string, error) {
			return "", ErrRateLimited
		},
	}
	fetcher := NewImageFetcher(client, ImageFetcherConfig{
		MaxConcurrent: 1,
		MaxAttempts:   4,
		RetryBackoff:  time.Millisecond,
	}, nil)

	_, err := fetcher.FetchOne(context.Background(), "word")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(4), client.callCount.Load(),
		"retry count must be bounded by MaxAttempts")
}

func TestFetchOneDoesNotRetryOtherFailures(t *testing.T) {
	t.Parallel()

	client := &countingImageClient{
		fn: func(prompt string) (string, error) {
			return "", errors.New("malformed response body")
		},
	}
	fetcher := NewImageFetcher(client, ImageFetcherConfig{MaxConcurrent: 1, MaxAttempts: 5}, nil)

	_, err := fetcher.FetchOne(context.Background(), "word")
	assert.Error(t, err)
	assert.Equal(t, int32(1), client.callCount.Load())
}

func TestFormatPrompt(t *testing.T) {
	t.Parallel()

	formatted := FormatPrompt("a red fridge")
	assert.True(t, strings.HasPrefix(formatted, imagePromptPrefix))
	assert.True(t, strings.HasSuffix(formatted, imagePromptSuffix))
	assert.Contains(t, formatted, "a red fridge")
}
