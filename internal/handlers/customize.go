package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/engine"
	"github.com/yungbote/charmworks-backend/internal/requestdata"
	"github.com/yungbote/charmworks-backend/internal/services"
)

type CustomizeHandler struct {
	customizeService services.CustomizeService
}

func NewCustomizeHandler(customizeService services.CustomizeService) *CustomizeHandler {
	return &CustomizeHandler{customizeService: customizeService}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return rd.UserID, true
}

func (h *CustomizeHandler) sessionID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

var errBadBody = errors.New("invalid request body")

func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errBadBody):
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", err)
	case errors.Is(err, services.ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "SESSION_NOT_FOUND", err)
	case errors.Is(err, engine.ErrTemplateNotFound):
		RespondError(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", err)
	case errors.Is(err, engine.ErrAccessoryCapacity):
		RespondError(c, http.StatusConflict, "ACCESSORY_CAPACITY", err)
	case errors.Is(err, engine.ErrUnknownAccessory):
		RespondError(c, http.StatusNotFound, "UNKNOWN_ACCESSORY", err)
	case errors.Is(err, engine.ErrAccessoryNotInDesign):
		RespondError(c, http.StatusNotFound, "ACCESSORY_NOT_IN_DESIGN", err)
	case errors.Is(err, engine.ErrInvalidColorSlot):
		RespondError(c, http.StatusBadRequest, "INVALID_COLOR_SLOT", err)
	case errors.Is(err, engine.ErrInvalidEngravePosition):
		RespondError(c, http.StatusBadRequest, "INVALID_ENGRAVE_POSITION", err)
	case errors.Is(err, engine.ErrRegistryUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "REGISTRY_UNAVAILABLE", err)
	case errors.Is(err, services.ErrProductNotCustomizable):
		RespondError(c, http.StatusBadRequest, "NOT_CUSTOMIZABLE", err)
	default:
		RespondError(c, http.StatusInternalServerError, "CUSTOMIZE_FAILED", err)
	}
}

func (h *CustomizeHandler) Open(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	var req struct {
		ProductID uuid.UUID `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("product_id required"))
		return
	}
	view, err := h.customizeService.Open(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *CustomizeHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	sessionID, err := h.sessionID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid session id"))
		return
	}
	view, err := h.customizeService.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *CustomizeHandler) SelectTemplate(c *gin.Context) {
	h.mutate(c, func(userID, sessionID uuid.UUID) (*services.SessionView, error) {
		var req struct {
			TemplateKey string `json:"template_key"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errBadBody
		}
		return h.customizeService.SelectTemplate(c.Request.Context(), userID, sessionID, req.TemplateKey)
	})
}

func (h *CustomizeHandler) SetColor(c *gin.Context) {
	h.mutate(c, func(userID, sessionID uuid.UUID) (*services.SessionView, error) {
		var req struct {
			Slot  string `json:"slot"`
			Color string `json:"color"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errBadBody
		}
		return h.customizeService.SetColor(c.Request.Context(), userID, sessionID, engine.ColorSlot(req.Slot), req.Color)
	})
}

func (h *CustomizeHandler) AddAccessory(c *gin.Context) {
	h.mutate(c, func(userID, sessionID uuid.UUID) (*services.SessionView, error) {
		var req struct {
			AccessoryKey string `json:"accessory_key"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errBadBody
		}
		return h.customizeService.AddAccessory(c.Request.Context(), userID, sessionID, req.AccessoryKey)
	})
}

func (h *CustomizeHandler) RemoveAccessory(c *gin.Context) {
	h.mutate(c, func(userID, sessionID uuid.UUID) (*services.SessionView, error) {
		return h.customizeService.RemoveAccessory(c.Request.Context(), userID, sessionID, c.Param("accessoryKey"))
	})
}

func (h *CustomizeHandler) SetEngraving(c *gin.Context) {
	h.mutate(c, func(userID, sessionID uuid.UUID) (*services.SessionView, error) {
		var req struct {
			Text     string `json:"text"`
			Font     string `json:"font"`
			Position string `json:"position"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errBadBody
		}
		return h.customizeService.SetEngraving(c.Request.Context(), userID, sessionID, req.Text, req.Font, engine.EngravePosition(req.Position))
	})
}

func (h *CustomizeHandler) ClearEngraving(c *gin.Context) {
	h.mutate(c, func(userID, sessionID uuid.UUID) (*services.SessionView, error) {
		return h.customizeService.ClearEngraving(c.Request.Context(), userID, sessionID)
	})
}

func (h *CustomizeHandler) Reset(c *gin.Context) {
	h.mutate(c, func(userID, sessionID uuid.UUID) (*services.SessionView, error) {
		return h.customizeService.Reset(c.Request.Context(), userID, sessionID)
	})
}

func (h *CustomizeHandler) mutate(c *gin.Context, fn func(userID, sessionID uuid.UUID) (*services.SessionView, error)) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	sessionID, err := h.sessionID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid session id"))
		return
	}
	view, err := fn(userID, sessionID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *CustomizeHandler) Quote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	sessionID, err := h.sessionID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid session id"))
		return
	}
	breakdown, err := h.customizeService.Quote(c.Request.Context(), userID, sessionID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, breakdown)
}

// Render returns the 2D layer stack and 3D scene for the current document.
func (h *CustomizeHandler) Render(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	sessionID, err := h.sessionID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid session id"))
		return
	}
	view, err := h.customizeService.Render(c.Request.Context(), userID, sessionID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *CustomizeHandler) Close(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("not authenticated"))
		return
	}
	sessionID, err := h.sessionID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", fmt.Errorf("invalid session id"))
		return
	}
	if err := h.customizeService.Close(c.Request.Context(), userID, sessionID); err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, gin.H{"closed": true})
}
