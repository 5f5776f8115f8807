// internal/handlers/article_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_french_gapfill/internal/exercise"
	"go_french_gapfill/internal/model"
	"go_french_gapfill/internal/service"
	"go_french_gapfill/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ArticleHandler struct {
	service service.ArticleService
	logger  *slog.Logger
}

func NewArticleHandler(s service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		service: s,
		logger:  logger,
	}
}

// ListArticles returns the published article summaries.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListArticles"))

	summaries, err := h.service.ListArticles(r.Context())
	if err != nil {
		logger.Error("Error listing articles in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summaries)
}

// GetArticle returns one assembled article document by ID, with options in
// their persisted order.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticle"))

	articleID, ok := h.parseArticleID(w, r, logger)
	if !ok {
		return
	}

	doc, err := h.service.GetArticle(r.Context(), articleID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, doc)
}

// GetArticleBySlug returns the same document as GetArticle, resolved via
// the lossy slug-to-title mapping.
func (h *ArticleHandler) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	doc, err := h.service.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, doc)
}

// GetExercise returns the article document with each blank's options
// freshly shuffled. The shuffle runs once per request, so every page load
// presents a new order.
func (h *ArticleHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExercise"))

	articleID, ok := h.parseArticleID(w, r, logger)
	if !ok {
		return
	}

	doc, err := h.service.GetArticle(r.Context(), articleID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, exercise.ShuffleDocument(doc))
}

// GetExerciseBySlug is the slug-resolved variant of GetExercise.
func (h *ArticleHandler) GetExerciseBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	doc, err := h.service.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, exercise.ShuffleDocument(doc))
}

func (h *ArticleHandler) parseArticleID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	articleIDStr := chi.URLParam(r, "article_id")
	articleID, err := uuid.Parse(articleIDStr)
	if err != nil {
		logger.Warn("Invalid article ID format in URL",
			slog.String("article_id_str", articleIDStr),
			slog.String("error", err.Error()),
		)
		appErr := model.NewAppError("INVALID_URL_PARAM", "article_id is not a valid UUID.", "article_id", model.ErrInvalidInput)
		webutil.HandleError(w, appErr)
		return uuid.Nil, false
	}
	return articleID, true
}
