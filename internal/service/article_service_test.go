package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_french_gapfill/internal/model"
	"go_french_gapfill/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- test helpers ---

func setupTestDBArticle() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func strPtr(s string) *string { return &s }

// storedArticle builds an eagerly-loaded article the way the repository
// returns it: text, blank(2 options), text, plus one linked expression.
func storedArticle() *model.Article {
	articleID := uuid.New()
	blankSegID := uuid.New()
	blankID := uuid.New()
	return &model.Article{
		ArticleID: articleID,
		Title:     "formal greetings",
		Prompt:    "Complétez les phrases.",
		Published: true,
		Segments: []model.ArticleSegment{
			{
				SegmentID: uuid.New(),
				ArticleID: articleID,
				Order:     0,
				Type:      model.SegmentText,
				Content:   strPtr("Bonjour, je "),
			},
			{
				SegmentID: blankSegID,
				ArticleID: articleID,
				Order:     1,
				Type:      model.SegmentBlank,
				Blank: &model.Blank{
					BlankID:   blankID,
					SegmentID: blankSegID,
					Position:  0,
					Options: []model.Option{
						{OptionID: uuid.New(), BlankID: blankID, Text: "suis", Correct: true, Position: 0},
						{OptionID: uuid.New(), BlankID: blankID, Text: "es", Correct: false, Error: strPtr("Deuxième personne."), Position: 1},
					},
				},
			},
			{
				SegmentID: uuid.New(),
				ArticleID: articleID,
				Order:     2,
				Type:      model.SegmentText,
				Content:   strPtr(" ravi de vous rencontrer."),
			},
		},
		Expressions: []model.ArticleExpression{
			{
				ArticleID:    articleID,
				ExpressionID: uuid.New(),
				Expression:   &model.Expression{French: "ravi de", English: "delighted to"},
			},
		},
	}
}

// --- Test ListArticles ---

func Test_articleService_ListArticles(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()

	published := storedArticle()

	tests := []struct {
		name      string
		setupMock func(repo *mocks.ArticleRepository)
		wantErr   error
		wantLen   int
	}{
		{
			name: "returns summaries for published articles",
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindPublished", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Article{published}, nil).Once()
			},
			wantErr: nil,
			wantLen: 1,
		},
		{
			name: "empty store yields empty list, not error",
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindPublished", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Article{}, nil).Once()
			},
			wantErr: nil,
			wantLen: 0,
		},
		{
			name: "repository failure maps to internal error",
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindPublished", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(nil, errors.New("db exploded")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(mocks.ArticleRepository)
			tc.setupMock(mockRepo)
			svc := NewArticleService(db, mockRepo, 0)

			summaries, err := svc.ListArticles(ctx)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				require.Len(t, summaries, tc.wantLen)
				if tc.wantLen > 0 {
					assert.Equal(t, published.ArticleID, summaries[0].ID)
					assert.Equal(t, published.Title, summaries[0].Title)
					assert.Equal(t, published.Prompt, summaries[0].Prompt)
					assert.True(t, summaries[0].Published)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetArticle ---

func Test_articleService_GetArticle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()

	article := storedArticle()

	tests := []struct {
		name      string
		articleID uuid.UUID
		setupMock func(repo *mocks.ArticleRepository)
		wantErr   error
	}{
		{
			name:      "assembles the stored article into a document",
			articleID: article.ArticleID,
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), article.ArticleID).
					Return(article, nil).Once()
			},
		},
		{
			name:      "not found passes through",
			articleID: uuid.New(),
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID")).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:      "repository failure maps to internal error",
			articleID: uuid.New(),
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID")).
					Return(nil, errors.New("db exploded")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(mocks.ArticleRepository)
			tc.setupMock(mockRepo)
			svc := NewArticleService(db, mockRepo, 0)

			doc, err := svc.GetArticle(ctx, tc.articleID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, doc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, article.ArticleID, doc.ID)
				assert.Equal(t, article.Title, doc.Title)
				assert.Equal(t, article.Prompt, doc.Prompt)

				require.Len(t, doc.Segments, 3)
				assert.Equal(t, model.SegmentText, doc.Segments[0].Type)
				assert.Equal(t, "Bonjour, je ", doc.Segments[0].Text)

				require.Equal(t, model.SegmentBlank, doc.Segments[1].Type)
				blank := doc.Segments[1].Blank
				require.NotNil(t, blank)
				assert.Equal(t, article.Segments[1].Blank.BlankID, blank.ID)
				require.Len(t, blank.Options, 2)
				assert.Equal(t, model.OptionView{Text: "suis", Correct: true}, blank.Options[0])
				assert.Equal(t, model.OptionView{Text: "es", Error: "Deuxième personne."}, blank.Options[1])

				require.Len(t, doc.Expressions, 1)
				assert.Equal(t, model.ExpressionView{French: "ravi de", English: "delighted to"}, doc.Expressions[0])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_articleService_GetArticle_AssemblyEdgeCases(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()

	article := storedArticle()
	// Detach the blank row and the expression to exercise the degraded paths.
	article.Segments[1].Blank = nil
	article.Expressions[0].Expression = nil

	mockRepo := new(mocks.ArticleRepository)
	mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), article.ArticleID).
		Return(article, nil).Once()
	svc := NewArticleService(db, mockRepo, 0)

	doc, err := svc.GetArticle(ctx, article.ArticleID)
	require.NoError(t, err)

	// A BLANK segment missing its blank row degrades to empty text.
	require.Len(t, doc.Segments, 3)
	assert.Equal(t, model.SegmentText, doc.Segments[1].Type)
	assert.Equal(t, "", doc.Segments[1].Text)
	assert.Nil(t, doc.Segments[1].Blank)

	// A dangling expression link is skipped.
	assert.Empty(t, doc.Expressions)
	mockRepo.AssertExpectations(t)
}

func Test_articleService_GetArticle_Cache(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()

	t.Run("second read within TTL skips the repository", func(t *testing.T) {
		article := storedArticle()
		mockRepo := new(mocks.ArticleRepository)
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), article.ArticleID).
			Return(article, nil).Once()
		svc := NewArticleService(db, mockRepo, time.Minute)

		first, err := svc.GetArticle(ctx, article.ArticleID)
		require.NoError(t, err)
		second, err := svc.GetArticle(ctx, article.ArticleID)
		require.NoError(t, err)

		assert.Same(t, first, second)
		mockRepo.AssertExpectations(t)
	})

	t.Run("expired entry is fetched again", func(t *testing.T) {
		article := storedArticle()
		mockRepo := new(mocks.ArticleRepository)
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), article.ArticleID).
			Return(article, nil).Twice()
		svc := NewArticleService(db, mockRepo, time.Millisecond)

		_, err := svc.GetArticle(ctx, article.ArticleID)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		_, err = svc.GetArticle(ctx, article.ArticleID)
		require.NoError(t, err)

		mockRepo.AssertExpectations(t)
	})

	t.Run("zero TTL disables caching", func(t *testing.T) {
		article := storedArticle()
		mockRepo := new(mocks.ArticleRepository)
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), article.ArticleID).
			Return(article, nil).Twice()
		svc := NewArticleService(db, mockRepo, 0)

		_, err := svc.GetArticle(ctx, article.ArticleID)
		require.NoError(t, err)
		_, err = svc.GetArticle(ctx, article.ArticleID)
		require.NoError(t, err)

		mockRepo.AssertExpectations(t)
	})
}

// --- Test GetArticleBySlug ---

func Test_articleService_GetArticleBySlug(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()

	article := storedArticle() // title "formal greetings"

	tests := []struct {
		name      string
		slug      string
		setupMock func(repo *mocks.ArticleRepository)
		wantErr   error
	}{
		{
			name: "slug resolves via the title guess",
			slug: "formal-greetings",
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindByTitle", ctx, mock.AnythingOfType("*gorm.DB"), "formal greetings").
					Return(article, nil).Once()
			},
		},
		{
			name:      "empty slug is not found without a query",
			slug:      "",
			setupMock: func(repo *mocks.ArticleRepository) {},
			wantErr:   model.ErrNotFound,
		},
		{
			name: "unknown slug passes not found through",
			slug: "no-such-article",
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindByTitle", ctx, mock.AnythingOfType("*gorm.DB"), "no such article").
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "repository failure maps to internal error",
			slug: "formal-greetings",
			setupMock: func(repo *mocks.ArticleRepository) {
				repo.On("FindByTitle", ctx, mock.AnythingOfType("*gorm.DB"), "formal greetings").
					Return(nil, errors.New("db exploded")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(mocks.ArticleRepository)
			tc.setupMock(mockRepo)
			svc := NewArticleService(db, mockRepo, 0)

			doc, err := svc.GetArticleBySlug(ctx, tc.slug)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, doc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, article.ArticleID, doc.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_articleService_GetArticleBySlug_PrimesCache(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBArticle()

	article := storedArticle()
	mockRepo := new(mocks.ArticleRepository)
	mockRepo.On("FindByTitle", ctx, mock.AnythingOfType("*gorm.DB"), "formal greetings").
		Return(article, nil).Once()
	svc := NewArticleService(db, mockRepo, time.Minute)

	bySlug, err := svc.GetArticleBySlug(ctx, "formal-greetings")
	require.NoError(t, err)

	// The slug lookup cached the document under its ID, so the ID lookup
	// never has to touch the repository.
	byID, err := svc.GetArticle(ctx, article.ArticleID)
	require.NoError(t, err)
	assert.Same(t, bySlug, byID)

	mockRepo.AssertExpectations(t)
}
