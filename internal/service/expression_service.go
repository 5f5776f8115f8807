//go:generate mockery --name ExpressionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_french_gapfill/internal/middleware"
	"go_french_gapfill/internal/model"
	"go_french_gapfill/internal/repository"

	"gorm.io/gorm"
)

// ExpressionService lists the reference expressions, unscoped by article.
type ExpressionService interface {
	ListExpressions(ctx context.Context) ([]*model.Expression, error)
}

type expressionService struct {
	db   *gorm.DB
	repo repository.ExpressionRepository
}

func NewExpressionService(db *gorm.DB, repo repository.ExpressionRepository) ExpressionService {
	return &expressionService{db: db, repo: repo}
}

func (s *expressionService) ListExpressions(ctx context.Context) ([]*model.Expression, error) {
	expressions, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list expressions", "error", err)
		return nil, model.ErrInternalServer
	}
	return expressions, nil
}
