package service

import "amana-bookstore/internal/domains/catalog/model"

// ServiceInterface is the read-only catalog contract. The data is static so
// there is no failure mode and no context plumbing.
type ServiceInterface interface {
	ListAll() []model.Book
	ByID(id string) (model.Book, bool)
	ReviewsFor(bookID string) []model.Review
}
