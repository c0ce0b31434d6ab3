package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/services"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	items, subtotal, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "CART_LOAD_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"items": items, "subtotal": subtotal})
}

// AddDesign accepts a serialized design line from the configurator. The price
// inside is advisory; the service recomputes it before persisting.
func (h *CartHandler) AddDesign(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	var line engine.CartLine
	if err := c.ShouldBindJSON(&line); err != nil || line.ProductID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid cart line"))
		return
	}
	item, err := h.cartService.AddDesign(c.Request.Context(), userID, line)
	if err != nil {
		if errors.Is(err, services.ErrProductNotCustomizable) {
			RespondError(c, http.StatusBadRequest, "NOT_CUSTOMIZABLE", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "CART_ADD_FAILED", err)
		return
	}
	RespondOK(c, item)
}

func (h *CartHandler) AddProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Quantity  int       `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("product_id required"))
		return
	}
	item, err := h.cartService.AddProduct(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "CART_ADD_FAILED", err)
		return
	}
	RespondOK(c, item)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid cart item id"))
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	if err := h.cartService.UpdateQuantity(c.Request.Context(), userID, itemID, req.Quantity); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			RespondError(c, http.StatusNotFound, "CART_ITEM_NOT_FOUND", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "CART_UPDATE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid cart item id"))
		return
	}
	if err := h.cartService.Remove(c.Request.Context(), userID, itemID); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			RespondError(c, http.StatusNotFound, "CART_ITEM_NOT_FOUND", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "CART_REMOVE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"removed": true})
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		RespondError(c, http.StatusInternalServerError, "CART_CLEAR_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"cleared": true})
}
