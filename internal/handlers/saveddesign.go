package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/services"
)

type SavedDesignHandler struct {
	savedDesignService services.SavedDesignService
}

func NewSavedDesignHandler(savedDesignService services.SavedDesignService) *SavedDesignHandler {
	return &SavedDesignHandler{savedDesignService: savedDesignService}
}

func (h *SavedDesignHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	var req struct {
		SessionID uuid.UUID `json:"session_id"`
		Name      string    `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("session_id required"))
		return
	}
	design, err := h.savedDesignService.SaveFromSession(c.Request.Context(), userID, req.SessionID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			RespondError(c, http.StatusNotFound, "SESSION_NOT_FOUND", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "DESIGN_SAVE_FAILED", err)
		return
	}
	RespondOK(c, design)
}

func (h *SavedDesignHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	designs, err := h.savedDesignService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "DESIGN_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"designs": designs})
}

// Open reopens a saved design in a fresh session. The response reports any
// references that no longer resolve so the UI can surface what changed.
func (h *SavedDesignHandler) Open(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	designID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid design id"))
		return
	}
	view, err := h.savedDesignService.Open(c.Request.Context(), userID, designID)
	if err != nil {
		if errors.Is(err, services.ErrSavedDesignNotFound) {
			RespondError(c, http.StatusNotFound, "DESIGN_NOT_FOUND", err)
			return
		}
		respondEngineError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *SavedDesignHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	designID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid design id"))
		return
	}
	if err := h.savedDesignService.Delete(c.Request.Context(), userID, designID); err != nil {
		RespondError(c, http.StatusNotFound, "DESIGN_NOT_FOUND", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
