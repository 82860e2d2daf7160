package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is one record of the static catalog. The catalog is loaded once at
// process start and never mutated; cart rows reference books by ID and are
// joined with these display attributes at read time.
type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Genres      []string        `json:"genre"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"reviewCount"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured"`
	Published   time.Time       `json:"datePublished"`
}

// Review is a customer review attached to a catalog book.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	Rating    float64   `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
	Verified  bool      `json:"verified"`
}

// BookDetail is the detail-page payload: the book plus its reviews.
type BookDetail struct {
	Book    Book     `json:"book"`
	Reviews []Review `json:"reviews"`
}
