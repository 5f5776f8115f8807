package service

import (
	"context"
	"errors"
	"testing"

	"go_french_gapfill/internal/model"
	"go_french_gapfill/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_expressionService_ListExpressions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()

	stored := []*model.Expression{
		{ExpressionID: uuid.New(), French: "dans le cadre de", English: "as part of"},
		{ExpressionID: uuid.New(), French: "au sommet de", English: "at the top of"},
	}

	t.Run("returns expressions from the store", func(t *testing.T) {
		mockRepo := new(mocks.ExpressionRepository)
		mockRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(stored, nil).Once()
		svc := NewExpressionService(db, mockRepo)

		expressions, err := svc.ListExpressions(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, expressions)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		mockRepo := new(mocks.ExpressionRepository)
		mockRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(nil, errors.New("db exploded")).Once()
		svc := NewExpressionService(db, mockRepo)

		expressions, err := svc.ListExpressions(ctx)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, expressions)
		mockRepo.AssertExpectations(t)
	})
}
