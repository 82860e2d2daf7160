package catalog

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"amana-bookstore/internal/domains/catalog/model"
	"amana-bookstore/internal/domains/catalog/service"
	"amana-bookstore/internal/shared/response"
	"amana-bookstore/pkg/cache"
	"amana-bookstore/pkg/logger"
)

const (
	booksCacheKey = "catalog:books"
	booksCacheTTL = 60 * time.Second
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service service.ServiceInterface
	cache   cache.Cache
}

func NewHandler(svc service.ServiceInterface, c cache.Cache) *Handler {
	return &Handler{
		service: svc,
		cache:   c,
	}
}

// ListBooks handles GET /books.
// The list is static, so responses pass through a short cache window; a
// cache failure degrades to the in-memory data, never to an error.
func (h *Handler) ListBooks(c *gin.Context) {
	if h.cache != nil {
		var cached []model.Book
		found, err := h.cache.Get(c.Request.Context(), booksCacheKey, &cached)
		if err != nil {
			logger.Warn("books cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		if found {
			response.Success(c, http.StatusOK, cached)
			return
		}
	}

	books := h.service.ListAll()

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), booksCacheKey, books, booksCacheTTL); err != nil {
			logger.Warn("books cache write failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	response.Success(c, http.StatusOK, books)
}

// GetBookDetail handles GET /books/:id, returning the book and its reviews.
func (h *Handler) GetBookDetail(c *gin.Context) {
	id := c.Param("id")

	book, ok := h.service.ByID(id)
	if !ok {
		response.NotFound(c, "Book not found")
		return
	}

	response.Success(c, http.StatusOK, model.BookDetail{
		Book:    book,
		Reviews: h.service.ReviewsFor(id),
	})
}
