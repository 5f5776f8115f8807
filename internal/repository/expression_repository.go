//go:generate mockery --name ExpressionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_french_gapfill/internal/middleware"
	"go_french_gapfill/internal/model"

	"gorm.io/gorm"
)

// ExpressionRepository reads the immutable expression reference content.
type ExpressionRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Expression, error)
}

type gormExpressionRepository struct{}

func NewGormExpressionRepository() ExpressionRepository {
	return &gormExpressionRepository{}
}

func (r *gormExpressionRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Expression, error) {
	logger := middleware.GetLogger(ctx)
	var expressions []*model.Expression
	result := db.WithContext(ctx).Order("created_at ASC").Find(&expressions)
	if result.Error != nil {
		logger.Error("Error finding expressions in DB", "error", result.Error)
		return nil, fmt.Errorf("gormExpressionRepository.FindAll: %w", result.Error)
	}
	return expressions, nil
}
