package sheets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/harrison/rustcheat/internal/logger"
	"github.com/harrison/rustcheat/internal/models"
	"github.com/harrison/rustcheat/internal/parser"
)

// ErrSheetNotFound is returned when a position is outside the index.
var ErrSheetNotFound = errors.New("sheet not found")

// Index is a fixed, ordered collection of documents addressed by position.
// Documents are never modified after NewIndex returns.
type Index struct {
	docs []models.Document

	cacheEnabled bool
	mu           sync.Mutex
	cache        map[uint64]*models.ParsedDocument

	log logger.Logger
}

// IndexOption configures an Index
type IndexOption func(*Index)

// WithCache memoizes parse results per document body. Results are identical to
// parsing on every call.
func WithCache() IndexOption {
	return func(idx *Index) {
		idx.cacheEnabled = true
		idx.cache = make(map[uint64]*models.ParsedDocument)
	}
}

// WithLogger reports cache activity to log at trace and debug level.
func WithLogger(log logger.Logger) IndexOption {
	return func(idx *Index) {
		if log != nil {
			idx.log = log
		}
	}
}

// NewIndex creates an Index over docs. The slice is copied; its order is the
// display order.
func NewIndex(docs []models.Document, opts ...IndexOption) *Index {
	idx := &Index{
		docs: append([]models.Document(nil), docs...),
		log:  logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Len returns the number of documents
func (idx *Index) Len() int {
	return len(idx.docs)
}

// Get returns the document at the zero-based position, or false when the
// position is out of range.
func (idx *Index) Get(position int) (models.Document, bool) {
	if position < 0 || position >= len(idx.docs) {
		return models.Document{}, false
	}
	return idx.docs[position], true
}

// Documents returns a copy of all documents in display order
func (idx *Index) Documents() []models.Document {
	return append([]models.Document(nil), idx.docs...)
}

// Parse segments the document at position.
func (idx *Index) Parse(position int) (*models.ParsedDocument, error) {
	doc, ok := idx.Get(position)
	if !ok {
		return nil, fmt.Errorf("position %d: %w", position, ErrSheetNotFound)
	}
	if !idx.cacheEnabled {
		return parser.Parse(doc.Body)
	}
	return idx.parseCached(doc)
}

func (idx *Index) parseCached(doc models.Document) (*models.ParsedDocument, error) {
	key := xxhash.Sum64String(doc.Body)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if parsed, ok := idx.cache[key]; ok {
		idx.log.LogTrace(fmt.Sprintf("cache hit for sheet %q (%016x)", doc.Name, key))
		return parsed.Clone(), nil
	}

	// Failures are not cached
	parsed, err := parser.Parse(doc.Body)
	if err != nil {
		return nil, err
	}
	idx.log.LogDebug(fmt.Sprintf("cached sheet %q (%016x): %d sections", doc.Name, key, parsed.Len()))
	idx.cache[key] = parsed
	return parsed.Clone(), nil
}
