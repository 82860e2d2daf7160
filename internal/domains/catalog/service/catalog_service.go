package service

import (
	"amana-bookstore/internal/domains/catalog/model"
)

// CatalogService serves the fixed catalog. Built once at startup; the
// slices it is given are never mutated afterwards.
type CatalogService struct {
	books   []model.Book
	byID    map[string]model.Book
	reviews map[string][]model.Review
}

func NewCatalogService(books []model.Book, reviews []model.Review) ServiceInterface {
	byID := make(map[string]model.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	byBook := make(map[string][]model.Review)
	for _, r := range reviews {
		byBook[r.BookID] = append(byBook[r.BookID], r)
	}

	return &CatalogService{
		books:   books,
		byID:    byID,
		reviews: byBook,
	}
}

// ListAll returns every book in catalog order.
func (s *CatalogService) ListAll() []model.Book {
	return s.books
}

// ByID looks a book up by its catalog id.
func (s *CatalogService) ByID(id string) (model.Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// ReviewsFor returns the reviews for one book, most recent last.
func (s *CatalogService) ReviewsFor(bookID string) []model.Review {
	return s.reviews[bookID]
}
