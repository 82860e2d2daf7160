// Package client is the storefront's HTTP accessor for the bookstore API.
// It speaks the response envelope and maps wire error codes back onto the
// cart domain's sentinel errors so callers can branch with errors.Is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	cartmodel "amana-bookstore/internal/domains/cart/model"
	catalogmodel "amana-bookstore/internal/domains/catalog/model"
	"amana-bookstore/internal/storefront/sync"
)

var _ sync.Store = (*Client)(nil)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client talks to one API server on behalf of one user identity.
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

func New(baseURL, userID string) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) UserID() string {
	return c.userID
}

// do executes one exchange and decodes the envelope. Transport failures are
// indistinguishable from a down store to the storefront, so both surface as
// ErrStoreUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", cartmodel.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decode response: %v", cartmodel.ErrStoreUnavailable, err)
	}

	if !env.Success {
		return decodeError(resp.StatusCode, env.Error)
	}

	if dest != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}

	return nil
}

func decodeError(status int, e *envelopeError) error {
	if e == nil {
		return fmt.Errorf("request failed with status %d", status)
	}

	switch e.Code {
	case cartmodel.CodeItemNotFound, "NOT_FOUND":
		return fmt.Errorf("%w: %s", cartmodel.ErrItemNotFound, e.Message)
	case cartmodel.CodeInvalidQuantity:
		return fmt.Errorf("%w: %s", cartmodel.ErrInvalidQuantity, e.Message)
	case cartmodel.CodeStoreUnavailable:
		return fmt.Errorf("%w: %s", cartmodel.ErrStoreUnavailable, e.Message)
	default:
		return fmt.Errorf("%s: %s", e.Code, e.Message)
	}
}

// ListBooks fetches the full catalog.
func (c *Client) ListBooks(ctx context.Context) ([]catalogmodel.Book, error) {
	var books []catalogmodel.Book
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBookDetail fetches one book with its reviews.
func (c *Client) GetBookDetail(ctx context.Context, id string) (catalogmodel.BookDetail, error) {
	var detail catalogmodel.BookDetail
	if err := c.do(ctx, http.MethodGet, "/api/books/"+url.PathEscape(id), nil, &detail); err != nil {
		return catalogmodel.BookDetail{}, err
	}
	return detail, nil
}

// FetchItems reads the user's raw cart rows.
func (c *Client) FetchItems(ctx context.Context) ([]cartmodel.CartItem, error) {
	var items []cartmodel.CartItem
	path := "/api/cart?userId=" + url.QueryEscape(c.userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem inserts a new cart row.
func (c *Client) CreateItem(ctx context.Context, bookID string, quantity int) (cartmodel.CartItem, error) {
	req := cartmodel.CreateCartItemRequest{
		UserID:   c.userID,
		BookID:   bookID,
		Quantity: quantity,
	}

	var item cartmodel.CartItem
	if err := c.do(ctx, http.MethodPost, "/api/cart", req, &item); err != nil {
		return cartmodel.CartItem{}, err
	}
	return item, nil
}

// UpdateItem sets the quantity of one cart row.
func (c *Client) UpdateItem(ctx context.Context, id uuid.UUID, quantity int) error {
	req := cartmodel.UpdateCartItemRequest{
		ID:       id,
		Quantity: quantity,
	}
	return c.do(ctx, http.MethodPut, "/api/cart", req, nil)
}

// DeleteItem removes one cart row.
func (c *Client) DeleteItem(ctx context.Context, id uuid.UUID) error {
	path := "/api/cart?itemId=" + url.QueryEscape(id.String())
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ClearAll removes every row of the user's cart server-side.
func (c *Client) ClearAll(ctx context.Context) error {
	path := "/api/cart/all?userId=" + url.QueryEscape(c.userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
