//go:generate mockery --name ArticleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_french_gapfill/internal/middleware"
	"go_french_gapfill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository reads exercise content. All lookups are scoped to
// published articles; unpublished content is invisible on every path.
type ArticleRepository interface {
	FindPublished(ctx context.Context, db *gorm.DB) ([]*model.Article, error)
	FindByID(ctx context.Context, db *gorm.DB, articleID uuid.UUID) (*model.Article, error)
	FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.Article, error)
}

type gormArticleRepository struct{}

func NewGormArticleRepository() ArticleRepository {
	return &gormArticleRepository{}
}

// withDocument eager-loads everything the exercise needs in one logical
// read: ordered segments, their blanks with options, and linked expressions.
func withDocument(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Preload("Segments.Blank").
		Preload("Segments.Blank.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Expressions.Expression")
}

func (r *gormArticleRepository) FindPublished(ctx context.Context, db *gorm.DB) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var articles []*model.Article
	result := db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at ASC").
		Find(&articles)
	if result.Error != nil {
		logger.Error("Error finding published articles in DB", "error", result.Error)
		return nil, fmt.Errorf("gormArticleRepository.FindPublished: %w", result.Error)
	}
	return articles, nil
}

func (r *gormArticleRepository) FindByID(ctx context.Context, db *gorm.DB, articleID uuid.UUID) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var article model.Article
	result := withDocument(db.WithContext(ctx)).
		Where("article_id = ? AND published = ?", articleID, true).
		First(&article)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding article by ID in DB",
			"error", result.Error,
			"article_id", articleID.String(),
		)
		return nil, fmt.Errorf("gormArticleRepository.FindByID: %w", result.Error)
	}
	return &article, nil
}

func (r *gormArticleRepository) FindByTitle(ctx context.Context, db *gorm.DB, title string) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var article model.Article
	result := withDocument(db.WithContext(ctx)).
		Where("LOWER(title) = LOWER(?) AND published = ?", title, true).
		First(&article)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding article by title in DB",
			"error", result.Error,
			"title", title,
		)
		return nil, fmt.Errorf("gormArticleRepository.FindByTitle: %w", result.Error)
	}
	return &article, nil
}
