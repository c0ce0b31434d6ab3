package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/services"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type VoucherHandler struct {
	voucherService services.VoucherService
}

func NewVoucherHandler(voucherService services.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// Validate lets the storefront preview the discount before checkout. Checkout
// revalidates inside its own transaction regardless.
func (h *VoucherHandler) Validate(c *gin.Context) {
	var req struct {
		Code     string  `json:"code"`
		Subtotal float64 `json:"subtotal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("voucher code required"))
		return
	}
	voucher, discount, err := h.voucherService.Validate(c.Request.Context(), nil, req.Code, req.Subtotal)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VOUCHER_REJECTED", err)
		return
	}
	RespondOK(c, gin.H{
		"code":     voucher.Code,
		"kind":     voucher.Kind,
		"discount": discount,
	})
}

func (h *VoucherHandler) List(c *gin.Context) {
	vouchers, err := h.voucherService.GetAll(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "VOUCHER_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"vouchers": vouchers})
}

func (h *VoucherHandler) Create(c *gin.Context) {
	var voucher types.Voucher
	if err := c.ShouldBindJSON(&voucher); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	created, err := h.voucherService.Create(c.Request.Context(), &voucher)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VOUCHER_CREATE_FAILED", err)
		return
	}
	RespondOK(c, created)
}

func (h *VoucherHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid voucher id"))
		return
	}
	var voucher types.Voucher
	if err := c.ShouldBindJSON(&voucher); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	voucher.ID = id
	if err := h.voucherService.Update(c.Request.Context(), &voucher); err != nil {
		RespondError(c, http.StatusBadRequest, "VOUCHER_UPDATE_FAILED", err)
		return
	}
	RespondOK(c, voucher)
}

func (h *VoucherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid voucher id"))
		return
	}
	if err := h.voucherService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "VOUCHER_DELETE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
