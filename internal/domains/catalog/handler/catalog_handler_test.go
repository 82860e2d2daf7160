package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amana-bookstore/internal/domains/catalog/data"
	"amana-bookstore/internal/domains/catalog/model"
	"amana-bookstore/internal/domains/catalog/service"
	infraCache "amana-bookstore/internal/infrastructure/cache"
	"amana-bookstore/internal/shared/response"
)

func newTestRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	h := NewHandler(
		service.NewCatalogService(data.Books, data.Reviews),
		infraCache.NewRedisCache(mr.Addr(), "", 0),
	)

	r := gin.New()
	r.GET("/api/books", h.ListBooks)
	r.GET("/api/books/:id", h.GetBookDetail)
	return r, mr
}

func decodeEnvelope(t *testing.T, body []byte, dest interface{}) response.Response {
	t.Helper()
	var env response.Response
	require.NoError(t, json.Unmarshal(body, &env))
	if dest != nil && env.Data != nil {
		raw, err := json.Marshal(env.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, dest))
	}
	return env
}

func TestListBooksReturnsFullCatalog(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var books []model.Book
	env := decodeEnvelope(t, w.Body.Bytes(), &books)
	assert.True(t, env.Success)
	assert.Len(t, books, len(data.Books))
}

func TestListBooksPopulatesCache(t *testing.T) {
	r, mr := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, mr.Exists("catalog:books"))

	// second request is served from the cache
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	require.Equal(t, http.StatusOK, w2.Code)

	var books []model.Book
	decodeEnvelope(t, w2.Body.Bytes(), &books)
	assert.Len(t, books, len(data.Books))
}

func TestListBooksSurvivesCacheOutage(t *testing.T) {
	r, mr := newTestRouter(t)
	mr.Close()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))

	require.Equal(t, http.StatusOK, w.Code, "cache failure must degrade, not error")

	var books []model.Book
	decodeEnvelope(t, w.Body.Bytes(), &books)
	assert.Len(t, books, len(data.Books))
}

func TestGetBookDetail(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var detail model.BookDetail
	env := decodeEnvelope(t, w.Body.Bytes(), &detail)
	assert.True(t, env.Success)
	assert.Equal(t, "1", detail.Book.ID)
}

func TestGetBookDetailNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/404", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w.Body.Bytes(), nil)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
