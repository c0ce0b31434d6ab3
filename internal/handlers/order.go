package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	var input services.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	order, err := h.orderService.Checkout(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			RespondError(c, http.StatusBadRequest, "EMPTY_CART", err)
		case errors.Is(err, services.ErrVoucherNotFound),
			errors.Is(err, services.ErrVoucherExpired),
			errors.Is(err, services.ErrVoucherExhausted),
			errors.Is(err, services.ErrVoucherMinOrder),
			errors.Is(err, services.ErrVoucherInactive):
			RespondError(c, http.StatusBadRequest, "VOUCHER_REJECTED", err)
		default:
			RespondError(c, http.StatusInternalServerError, "CHECKOUT_FAILED", err)
		}
		return
	}
	RespondOK(c, order)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	orders, err := h.orderService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "ORDER_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"orders": orders})
}

func (h *OrderHandler) GetMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid order id"))
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), userID, orderID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", err)
		return
	}
	RespondOK(c, order)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	orders, err := h.orderService.GetAll(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "ORDER_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"orders": orders})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid order id"))
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrderStatus):
			RespondError(c, http.StatusBadRequest, "INVALID_STATUS", err)
		case errors.Is(err, services.ErrOrderNotFound):
			RespondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", err)
		default:
			RespondError(c, http.StatusInternalServerError, "ORDER_UPDATE_FAILED", err)
		}
		return
	}
	RespondOK(c, order)
}
