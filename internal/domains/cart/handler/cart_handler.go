package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"amana-bookstore/internal/domains/cart/model"
	"amana-bookstore/internal/domains/cart/service"
	"amana-bookstore/internal/shared"
	"amana-bookstore/internal/shared/response"
	"amana-bookstore/pkg/logger"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// userID resolves the cart owner from the query string, defaulting to the
// shared guest identity.
func userID(c *gin.Context) string {
	if id := c.Query("userId"); id != "" {
		return id
	}
	return shared.GuestUserID
}

// ListItems handles GET /api/cart.
// Returns raw rows; clients merge duplicates themselves.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	if items == nil {
		items = []model.CartItem{}
	}
	response.Success(c, http.StatusOK, items)
}

// GetSummary handles GET /api/cart/summary: the merged, catalog-joined view.
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// CreateItem handles POST /api/cart.
func (h *Handler) CreateItem(c *gin.Context) {
	var req model.CreateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.UserID == "" {
		req.UserID = shared.GuestUserID
	}

	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/cart.
func (h *Handler) UpdateItem(c *gin.Context) {
	var req model.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.UpdateQuantity(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": req.ID, "quantity": req.Quantity})
}

// DeleteItem handles DELETE /api/cart?itemId=<uuid>.
func (h *Handler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Query("itemId"))
	if err != nil {
		response.BadRequest(c, "itemId must be a valid UUID")
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": itemID})
}

// ClearCart handles DELETE /api/cart/all.
func (h *Handler) ClearCart(c *gin.Context) {
	removed, err := h.service.Clear(c.Request.Context(), userID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": removed})
}

// writeError maps domain errors onto the response envelope.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidQuantity):
		response.ErrorResponse(c, http.StatusBadRequest, model.CodeInvalidQuantity, model.ErrInvalidQuantity.Error())
	case errors.Is(err, model.ErrItemNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.CodeItemNotFound, model.ErrItemNotFound.Error())
	case errors.Is(err, model.ErrStoreUnavailable):
		logger.Error("cart store unavailable", err)
		response.ServiceUnavailable(c, "cart store is temporarily unavailable")
	default:
		logger.Error("cart operation failed", err)
		response.InternalServerError(c, "internal server error")
	}
}
