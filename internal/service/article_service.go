//go:generate mockery --name ArticleService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go_french_gapfill/internal/middleware"
	"go_french_gapfill/internal/model"
	"go_french_gapfill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleService assembles exercise documents from the content store.
// Assembly is a pure read-transform: idempotent, no mutation, safe to cache
// for a short TTL since content only changes via reseeding.
type ArticleService interface {
	ListArticles(ctx context.Context) ([]model.ArticleSummary, error)
	GetArticle(ctx context.Context, articleID uuid.UUID) (*model.ArticleDocument, error)
	GetArticleBySlug(ctx context.Context, slug string) (*model.ArticleDocument, error)
}

type articleService struct {
	db    *gorm.DB
	repo  repository.ArticleRepository
	cache *documentCache
}

func NewArticleService(db *gorm.DB, repo repository.ArticleRepository, cacheTTL time.Duration) ArticleService {
	return &articleService{
		db:    db,
		repo:  repo,
		cache: newDocumentCache(cacheTTL),
	}
}

func (s *articleService) ListArticles(ctx context.Context) ([]model.ArticleSummary, error) {
	logger := middleware.GetLogger(ctx)

	articles, err := s.repo.FindPublished(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list published articles", "error", err)
		return nil, model.ErrInternalServer
	}

	summaries := make([]model.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, model.ArticleSummary{
			ID:        a.ArticleID,
			Title:     a.Title,
			Prompt:    a.Prompt,
			Published: a.Published,
		})
	}
	return summaries, nil
}

func (s *articleService) GetArticle(ctx context.Context, articleID uuid.UUID) (*model.ArticleDocument, error) {
	if doc, ok := s.cache.get(articleID); ok {
		return doc, nil
	}

	article, err := s.repo.FindByID(ctx, s.db, articleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to get article", "error", err, "article_id", articleID.String())
		return nil, model.ErrInternalServer
	}

	doc := assembleDocument(article)
	s.cache.put(articleID, doc)
	return doc, nil
}

// GetArticleBySlug resolves slug -> title guess -> case-insensitive exact
// match. Because slugification is lossy, titles with punctuation or
// multi-space runs may never resolve; that is a known fragility of the
// scheme, not a defect to repair here.
func (s *articleService) GetArticleBySlug(ctx context.Context, slug string) (*model.ArticleDocument, error) {
	if slug == "" {
		return nil, model.ErrNotFound
	}

	article, err := s.repo.FindByTitle(ctx, s.db, TitleFromSlug(slug))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to get article by slug", "error", err, "slug", slug)
		return nil, model.ErrInternalServer
	}

	doc := assembleDocument(article)
	s.cache.put(article.ArticleID, doc)
	return doc, nil
}

// assembleDocument denormalizes one eagerly-loaded article into the single
// response document the exercise consumes: segments in order as TEXT/BLANK
// views, expressions flattened to French/English pairs.
func assembleDocument(article *model.Article) *model.ArticleDocument {
	doc := &model.ArticleDocument{
		ID:          article.ArticleID,
		Title:       article.Title,
		Prompt:      article.Prompt,
		Segments:    make([]model.SegmentView, 0, len(article.Segments)),
		Expressions: make([]model.ExpressionView, 0, len(article.Expressions)),
	}

	for _, seg := range article.Segments {
		switch {
		case seg.Type == model.SegmentText:
			text := ""
			if seg.Content != nil {
				text = *seg.Content
			}
			doc.Segments = append(doc.Segments, model.SegmentView{
				Type: model.SegmentText,
				Text: text,
			})
		case seg.Type == model.SegmentBlank && seg.Blank != nil:
			blank := model.BlankView{
				ID:      seg.Blank.BlankID,
				Options: make([]model.OptionView, 0, len(seg.Blank.Options)),
			}
			for _, opt := range seg.Blank.Options {
				view := model.OptionView{Text: opt.Text, Correct: opt.Correct}
				if opt.Error != nil {
					view.Error = *opt.Error
				}
				blank.Options = append(blank.Options, view)
			}
			doc.Segments = append(doc.Segments, model.SegmentView{
				Type:  model.SegmentBlank,
				Blank: &blank,
			})
		default:
			// BLANK segment without its blank row: render as empty text
			// rather than failing the whole document.
			doc.Segments = append(doc.Segments, model.SegmentView{Type: model.SegmentText})
		}
	}

	for _, link := range article.Expressions {
		if link.Expression == nil {
			continue
		}
		doc.Expressions = append(doc.Expressions, model.ExpressionView{
			French:  link.Expression.French,
			English: link.Expression.English,
		})
	}

	return doc
}

// documentCache is a TTL cache of assembled documents keyed by article ID.
// Documents are immutable once built, so entries are shared, not copied.
type documentCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uuid.UUID]cacheEntry
}

type cacheEntry struct {
	doc     *model.ArticleDocument
	expires time.Time
}

func newDocumentCache(ttl time.Duration) *documentCache {
	return &documentCache{
		ttl:     ttl,
		entries: make(map[uuid.UUID]cacheEntry),
	}
}

func (c *documentCache) get(id uuid.UUID) (*model.ArticleDocument, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expires) {
		delete(c.entries, id)
		return nil, false
	}
	return entry.doc, true
}

func (c *documentCache) put(id uuid.UUID, doc *model.ArticleDocument) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = cacheEntry{doc: doc, expires: time.Now().Add(c.ttl)}
}
