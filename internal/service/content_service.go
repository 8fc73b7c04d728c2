package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/generation"
	"github.com/sinalize/sinalize-api/internal/platform/logger"
	"github.com/sinalize/sinalize-api/internal/store"
)

// ContentServiceError is a custom error type for content service errors.
type ContentServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ContentServiceError.
func (e *ContentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("content service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ContentServiceError) Unwrap() error {
	return e.Err
}

// NewContentServiceError creates a new ContentServiceError.
func NewContentServiceError(operation, message string, err error) *ContentServiceError {
	return &ContentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ContentResult is the outcome of a content-generation request: the
// collection, its items, and whether the collection pre-existed (dedup
// short-circuit) rather than being generated on this call.
type ContentResult struct {
	Collection *domain.Collection
	Items      []*domain.ContentItem
	IsExisting bool
}

// ContentService orchestrates collection content generation and on-demand
// illustration of individual items.
type ContentService interface {
	// GenerateContent creates (or returns the existing) collection for the
	// user and topic, generating bilingual words and sentences for new ones.
	GenerateContent(ctx context.Context, userID uuid.UUID, topic string) (*ContentResult, error)

	// GenerateItemImage returns the illustration URL for one content item of
	// a collection, identified by its target-language text. The URL is
	// generated at most once and served from the store thereafter.
	GenerateItemImage(ctx context.Context, collectionID uuid.UUID, textEN string) (string, error)
}

// contentServiceImpl implements the ContentService interface.
type contentServiceImpl struct {
	txRunner        store.TxRunner
	userStore       store.UserStore
	collectionStore store.CollectionStore
	generator       generation.TextGenerator
	fetcher         *generation.ImageFetcher
	inlineImages    bool
	logger          *slog.Logger
}

// NewContentService creates a new ContentService.
// It returns an error if any of the required dependencies are nil.
// When inlineImages is set, a successful generation pass also fans out
// illustration requests for every new item before returning (legacy variant);
// otherwise images are generated on demand through GenerateItemImage.
func NewContentService(
	txRunner store.TxRunner,
	userStore store.UserStore,
	collectionStore store.CollectionStore,
	generator generation.TextGenerator,
	fetcher *generation.ImageFetcher,
	inlineImages bool,
	logger *slog.Logger,
) (ContentService, error) {
	if txRunner == nil {
		return nil, domain.NewValidationError("txRunner", "cannot be nil", domain.ErrValidation)
	}
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if collectionStore == nil {
		return nil, domain.NewValidationError("collectionStore", "cannot be nil", domain.ErrValidation)
	}
	if generator == nil {
		return nil, domain.NewValidationError("generator", "cannot be nil", domain.ErrValidation)
	}
	if fetcher == nil {
		return nil, domain.NewValidationError("fetcher", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &contentServiceImpl{
		txRunner:        txRunner,
		userStore:       userStore,
		collectionStore: collectionStore,
		generator:       generator,
		fetcher:         fetcher,
		inlineImages:    inlineImages,
		logger:          logger.With(slog.String("component", "content_service")),
	}, nil
}

// GenerateContent implements ContentService.GenerateContent
//
// For a topic the user already has a collection for (after normalization),
// the stored content is returned unchanged and no model call is made. For a
// new topic the collection record is created first, then words and sentences
// are generated sequentially and persisted in one transaction. The collection
// record is deliberately not rolled back when generation fails after its
// creation.
func (s *contentServiceImpl) GenerateContent(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
) (*ContentResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(topic) == "" {
		return nil, domain.NewValidationError("topic", "cannot be empty", domain.ErrValidation)
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	normalized := domain.NormalizeTopic(topic)

	// Dedup short-circuit: same (user, topic) always resolves to the same
	// collection, with no second generation pass.
	existing, err := s.collectionStore.GetByUserAndTopic(ctx, user.ID, normalized)
	if err == nil {
		items, listErr := s.collectionStore.ListItems(ctx, existing.ID)
		if listErr != nil {
			return nil, NewContentServiceError("generate_content", "failed to load existing items", listErr)
		}
		log.Debug("returning existing collection",
			slog.String("collection_id", existing.ID.String()),
			slog.String("topic", normalized))
		return &ContentResult{Collection: existing, Items: items, IsExisting: true}, nil
	}
	if !store.IsNotFoundError(err) {
		return nil, NewContentServiceError("generate_content", "collection lookup failed", err)
	}

	collection, err := domain.NewCollection(user.ID, "Coleção de "+normalized, topic)
	if err != nil {
		return nil, err
	}

	if err := s.collectionStore.Create(ctx, collection); err != nil {
		return nil, NewContentServiceError("generate_content", "failed to create collection", err)
	}

	items, err := s.generateItems(ctx, collection)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.collectionStore.WithTx(tx).CreateItems(ctx, items)
	})
	if err != nil {
		return nil, NewContentServiceError("generate_content", "failed to persist items", err)
	}

	if s.inlineImages {
		s.illustrateInline(ctx, items)
	}

	log.Info("generated collection content",
		slog.String("collection_id", collection.ID.String()),
		slog.String("topic", normalized),
		slog.Int("item_count", len(items)))

	return &ContentResult{Collection: collection, Items: items, IsExisting: false}, nil
}

// generateItems runs the two sequential model passes (words, then sentences
// built from those words) and zips the bilingual lists into content items,
// truncated to the per-kind maximum.
func (s *contentServiceImpl) generateItems(
	ctx context.Context,
	collection *domain.Collection,
) ([]*domain.ContentItem, error) {
	wordsRaw, err := s.generator.Generate(ctx, generation.WordListPrompt(collection.Topic))
	if err != nil {
		return nil, NewContentServiceError("generate_content", "word generation call failed", err)
	}

	var words generation.WordListSchema
	if err := generation.ExtractJSON(wordsRaw, &words); err != nil {
		return nil, fmt.Errorf("%w: no usable word list: %v", generation.ErrGenerationFailed, err)
	}
	if len(words.PalavrasPT) == 0 || len(words.PalavrasEN) == 0 {
		return nil, fmt.Errorf("%w: empty word list", generation.ErrGenerationFailed)
	}

	sentencesRaw, err := s.generator.Generate(
		ctx,
		generation.SentencePrompt(words.PalavrasPT, words.PalavrasEN),
	)
	if err != nil {
		return nil, NewContentServiceError("generate_content", "sentence generation call failed", err)
	}

	var sentences generation.SentenceListSchema
	if err := generation.ExtractJSON(sentencesRaw, &sentences); err != nil {
		return nil, fmt.Errorf("%w: no usable sentence list: %v", generation.ErrGenerationFailed, err)
	}

	var items []*domain.ContentItem

	wordCount := zipLimit(len(words.PalavrasPT), len(words.PalavrasEN))
	for i := 0; i < wordCount; i++ {
		item, err := domain.NewContentItem(
			collection.ID,
			domain.ContentKindWord,
			words.PalavrasPT[i],
			words.PalavrasEN[i],
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	sentenceCount := zipLimit(len(sentences.FrasesPT), len(sentences.FrasesEN))
	for i := 0; i < sentenceCount; i++ {
		item, err := domain.NewContentItem(
			collection.ID,
			domain.ContentKindSentence,
			sentences.FrasesPT[i],
			sentences.FrasesEN[i],
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// illustrateInline fans out illustration requests for freshly generated
// items and records the URLs. Failures are already isolated per item by the
// fetcher; a failed store update only loses the cached URL.
func (s *contentServiceImpl) illustrateInline(ctx context.Context, items []*domain.ContentItem) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	requests := make([]generation.ImageRequest, 0, len(items))
	byPrompt := make(map[string]*domain.ContentItem, len(items))
	for _, item := range items {
		requests = append(requests, generation.ImageRequest{
			SourceText: item.TextPT,
			PromptText: item.TextEN,
		})
		byPrompt[item.TextEN] = item
	}

	for _, result := range s.fetcher.FetchAll(ctx, requests) {
		item, ok := byPrompt[result.PromptText]
		if !ok {
			continue
		}
		item.SetImageURL(result.URL)
		if err := s.collectionStore.UpdateItemImageURL(ctx, item.ID, result.URL); err != nil {
			log.Error("failed to record inline image URL",
				slog.String("item_id", item.ID.String()),
				slog.String("error", err.Error()))
		}
	}
}

// GenerateItemImage implements ContentService.GenerateItemImage
// Compute-once memoization: a stored URL is returned as-is; otherwise one
// illustration is generated, persisted, and returned.
func (s *contentServiceImpl) GenerateItemImage(
	ctx context.Context,
	collectionID uuid.UUID,
	textEN string,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(textEN) == "" {
		return "", domain.NewValidationError("text_en", "cannot be empty", domain.ErrValidation)
	}

	if _, err := s.collectionStore.GetByID(ctx, collectionID); err != nil {
		return "", err
	}

	item, err := s.collectionStore.GetItemByTextEN(ctx, collectionID, textEN)
	if err != nil {
		return "", err
	}

	if item.ImageURL != "" {
		log.Debug("serving cached illustration",
			slog.String("item_id", item.ID.String()))
		return item.ImageURL, nil
	}

	url, err := s.fetcher.FetchOne(ctx, item.TextEN)
	if err != nil {
		return "", NewContentServiceError("generate_image", "image generation failed", err)
	}

	if err := s.collectionStore.UpdateItemImageURL(ctx, item.ID, url); err != nil {
		return "", NewContentServiceError("generate_image", "failed to persist image URL", err)
	}

	return url, nil
}

// zipLimit caps an index-aligned zip at the shorter list and the per-kind
// maximum.
func zipLimit(a, b int) int {
	n := a
	if b < n {
		n = b
	}
	if n > domain.MaxItemsPerKind {
		n = domain.MaxItemsPerKind
	}
	return n
}
