package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go_french_gapfill/internal/model"
)

// Each test gets its own named in-memory database so fixtures never leak
// between tests sharing the default shared-cache DSN.
func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")

	err = db.AutoMigrate(
		&model.Expression{},
		&model.Article{},
		&model.ArticleSegment{},
		&model.Blank{},
		&model.Option{},
		&model.ArticleExpression{},
	)
	require.NoError(t, err, "failed to migrate database for testing")
	return db
}

type fixtureArticle struct {
	article *model.Article
	blankID uuid.UUID
}

// insertGapArticle writes "Je [suis|es] là." with one linked expression.
// Segments are inserted out of reading order so ordered preloads are
// actually exercised.
func insertGapArticle(t *testing.T, db *gorm.DB, title string, published bool, createdAt time.Time) fixtureArticle {
	t.Helper()

	article := &model.Article{
		ArticleID: uuid.New(),
		Title:     title,
		Prompt:    "Complétez la phrase.",
		Published: published,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(article).Error)

	text := func(s string) *string { return &s }
	blankSegID := uuid.New()
	segments := []*model.ArticleSegment{
		{SegmentID: uuid.New(), ArticleID: article.ArticleID, Order: 2, Type: model.SegmentText, Content: text(" là.")},
		{SegmentID: uuid.New(), ArticleID: article.ArticleID, Order: 0, Type: model.SegmentText, Content: text("Je ")},
		{SegmentID: blankSegID, ArticleID: article.ArticleID, Order: 1, Type: model.SegmentBlank},
	}
	for _, seg := range segments {
		require.NoError(t, db.Create(seg).Error)
	}

	blank := &model.Blank{BlankID: uuid.New(), SegmentID: blankSegID, Position: 0}
	require.NoError(t, db.Create(blank).Error)

	note := "Deuxième personne."
	options := []*model.Option{
		{OptionID: uuid.New(), BlankID: blank.BlankID, Text: "es", Correct: false, Error: &note, Position: 1},
		{OptionID: uuid.New(), BlankID: blank.BlankID, Text: "suis", Correct: true, Position: 0},
	}
	for _, opt := range options {
		require.NoError(t, db.Create(opt).Error)
	}

	expr := &model.Expression{ExpressionID: uuid.New(), French: "être là", English: "to be there"}
	require.NoError(t, db.Create(expr).Error)
	require.NoError(t, db.Create(&model.ArticleExpression{
		ArticleID:    article.ArticleID,
		ExpressionID: expr.ExpressionID,
	}).Error)

	return fixtureArticle{article: article, blankID: blank.BlankID}
}

func Test_gormArticleRepository_FindPublished(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormArticleRepository()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	second := insertGapArticle(t, db, "deuxième article", true, base.Add(time.Hour))
	first := insertGapArticle(t, db, "premier article", true, base)
	insertGapArticle(t, db, "brouillon caché", false, base.Add(2*time.Hour))

	articles, err := repo.FindPublished(ctx, db)
	require.NoError(t, err)

	// Unpublished content is invisible; the rest comes oldest first.
	require.Len(t, articles, 2)
	assert.Equal(t, first.article.ArticleID, articles[0].ArticleID)
	assert.Equal(t, second.article.ArticleID, articles[1].ArticleID)
}

func Test_gormArticleRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormArticleRepository()

	now := time.Now().UTC()
	fixture := insertGapArticle(t, db, "un matin", true, now)
	draft := insertGapArticle(t, db, "brouillon", false, now)

	t.Run("loads the full document graph in reading order", func(t *testing.T) {
		article, err := repo.FindByID(ctx, db, fixture.article.ArticleID)
		require.NoError(t, err)

		assert.Equal(t, "un matin", article.Title)
		require.Len(t, article.Segments, 3)
		for i, seg := range article.Segments {
			assert.Equal(t, i, seg.Order)
		}
		assert.Equal(t, model.SegmentText, article.Segments[0].Type)
		assert.Equal(t, "Je ", *article.Segments[0].Content)

		blankSeg := article.Segments[1]
		require.Equal(t, model.SegmentBlank, blankSeg.Type)
		require.NotNil(t, blankSeg.Blank)
		assert.Equal(t, fixture.blankID, blankSeg.Blank.BlankID)

		// Options come back in authored position order, not insert order.
		require.Len(t, blankSeg.Blank.Options, 2)
		assert.Equal(t, "suis", blankSeg.Blank.Options[0].Text)
		assert.True(t, blankSeg.Blank.Options[0].Correct)
		assert.Equal(t, "es", blankSeg.Blank.Options[1].Text)
		require.NotNil(t, blankSeg.Blank.Options[1].Error)

		require.Len(t, article.Expressions, 1)
		require.NotNil(t, article.Expressions[0].Expression)
		assert.Equal(t, "être là", article.Expressions[0].Expression.French)
	})

	t.Run("unknown ID is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unpublished article is not found even by ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, draft.article.ArticleID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormArticleRepository_FindByTitle(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormArticleRepository()

	now := time.Now().UTC()
	fixture := insertGapArticle(t, db, "Mariage en Montagne", true, now)
	insertGapArticle(t, db, "Titre Privé", false, now)

	tests := []struct {
		name    string
		title   string
		wantID  uuid.UUID
		wantErr error
	}{
		{"exact title", "Mariage en Montagne", fixture.article.ArticleID, nil},
		{"match is case-insensitive", "mariage en montagne", fixture.article.ArticleID, nil},
		{"unknown title is not found", "aucun article", uuid.Nil, model.ErrNotFound},
		{"unpublished title is not found", "Titre Privé", uuid.Nil, model.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			article, err := repo.FindByTitle(ctx, db, tc.title)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, article.ArticleID)
			assert.Len(t, article.Segments, 3)
		})
	}
}
