// Package seed owns every write path of the content store: migration, bulk
// reseeding, and the authoring-time content lint. The running API never
// mutates content; reseeding is assumed exclusive with normal traffic.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go_french_gapfill/internal/model"
)

// Migrate creates or updates the content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Expression{},
		&model.Article{},
		&model.ArticleSegment{},
		&model.Blank{},
		&model.Option{},
		&model.ArticleExpression{},
	)
}

// Reset deletes all content, children first. Used only by reseeding.
func Reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.Option{},
			&model.Blank{},
			&model.ArticleSegment{},
			&model.ArticleExpression{},
			&model.Expression{},
			&model.Article{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("seed.Reset: %w", err)
			}
		}
		return nil
	})
}

// Seed inserts the canonical expressions and article in one transaction and
// returns the created article (without associations reloaded).
func Seed(ctx context.Context, db *gorm.DB) (*model.Article, error) {
	var created *model.Article

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expressions := make([]*model.Expression, 0, len(canonicalArticle.Expressions))
		for _, data := range canonicalArticle.Expressions {
			expr := &model.Expression{
				ExpressionID: uuid.New(),
				French:       data.French,
				English:      data.English,
			}
			if err := tx.Create(expr).Error; err != nil {
				return fmt.Errorf("seed expression: %w", err)
			}
			expressions = append(expressions, expr)
		}

		article := &model.Article{
			ArticleID: uuid.New(),
			Title:     canonicalArticle.Title,
			Prompt:    canonicalArticle.Prompt,
			Published: canonicalArticle.Published,
		}
		if err := tx.Create(article).Error; err != nil {
			return fmt.Errorf("seed article: %w", err)
		}

		for _, expr := range expressions {
			link := &model.ArticleExpression{
				ArticleID:    article.ArticleID,
				ExpressionID: expr.ExpressionID,
			}
			if err := tx.Create(link).Error; err != nil {
				return fmt.Errorf("seed article expression link: %w", err)
			}
		}

		blankPosition := 0
		for order, segData := range canonicalArticle.Segments {
			segment := &model.ArticleSegment{
				SegmentID: uuid.New(),
				ArticleID: article.ArticleID,
				Order:     order,
				Type:      segData.Type,
			}
			if segData.Type == model.SegmentText {
				content := segData.Content
				segment.Content = &content
			}
			if err := tx.Create(segment).Error; err != nil {
				return fmt.Errorf("seed segment %d: %w", order, err)
			}

			if segData.Type != model.SegmentBlank {
				continue
			}

			blank := &model.Blank{
				BlankID:   uuid.New(),
				SegmentID: segment.SegmentID,
				Position:  blankPosition,
			}
			blankPosition++
			if err := tx.Create(blank).Error; err != nil {
				return fmt.Errorf("seed blank for segment %d: %w", order, err)
			}

			for i, optData := range segData.Options {
				option := &model.Option{
					OptionID: uuid.New(),
					BlankID:  blank.BlankID,
					Text:     optData.Text,
					Correct:  optData.Correct,
					Position: i,
				}
				if optData.Error != "" {
					errText := optData.Error
					option.Error = &errText
				}
				if err := tx.Create(option).Error; err != nil {
					return fmt.Errorf("seed option %d for segment %d: %w", i, order, err)
				}
			}
		}

		created = article
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CountArticles reports how many articles exist, for the seed-on-empty
// startup path.
func CountArticles(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Article{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("seed.CountArticles: %w", err)
	}
	return count, nil
}
