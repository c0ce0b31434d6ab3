package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/requestdata"
	"github.com/yungbote/charmworks-backend/internal/services"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) ListForProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid product id"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	reviews, err := h.reviewService.GetForProduct(c.Request.Context(), productID, limit, offset)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "REVIEW_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Rating    int       `json:"rating"`
		Body      string    `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("product_id and rating required"))
		return
	}
	review, err := h.reviewService.Create(c.Request.Context(), userID, req.ProductID, req.Rating, req.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "REVIEW_CREATE_FAILED", err)
		return
	}
	RespondOK(c, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid review id"))
		return
	}
	rd := requestdata.GetRequestData(c.Request.Context())
	isAdmin := rd != nil && rd.Role == types.RoleAdmin
	if err := h.reviewService.Delete(c.Request.Context(), userID, reviewID, isAdmin); err != nil {
		RespondError(c, http.StatusNotFound, "REVIEW_NOT_FOUND", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
