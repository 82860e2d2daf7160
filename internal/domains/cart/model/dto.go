package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCartItemRequest is the POST /cart body:
// { userId, bookId, quantity }.
type CreateCartItemRequest struct {
	UserID   string `json:"userId"`
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

func (req CreateCartItemRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.BookID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

// UpdateCartItemRequest is the PUT /cart body: { id, quantity }.
type UpdateCartItemRequest struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

func (req UpdateCartItemRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.By(func(interface{}) error {
			if req.ID == uuid.Nil {
				return validation.NewError("validation_required", "cannot be blank")
			}
			return nil
		})),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}
