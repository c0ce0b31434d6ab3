package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/services"
	"github.com/yungbote/charmworks-backend/internal/types"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	news, err := h.newsService.GetPublished(c.Request.Context(), limit, offset)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "NEWS_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"news": news})
}

func (h *NewsHandler) Detail(c *gin.Context) {
	news, err := h.newsService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "NEWS_NOT_FOUND", fmt.Errorf("news not found"))
		return
	}
	RespondOK(c, news)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var news types.News
	if err := c.ShouldBindJSON(&news); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	created, err := h.newsService.Create(c.Request.Context(), &news)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "NEWS_CREATE_FAILED", err)
		return
	}
	RespondOK(c, created)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid news id"))
		return
	}
	var news types.News
	if err := c.ShouldBindJSON(&news); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	news.ID = id
	if err := h.newsService.Update(c.Request.Context(), &news); err != nil {
		RespondError(c, http.StatusBadRequest, "NEWS_UPDATE_FAILED", err)
		return
	}
	RespondOK(c, news)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid news id"))
		return
	}
	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "NEWS_DELETE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
