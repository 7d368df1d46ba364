package handlers

import (
	"github.com/gin-gonic/gin"

	"promptatlas/internal/dataset"
	"promptatlas/internal/http/response"
	"promptatlas/internal/platform/logger"
)

type LoraHandler struct {
	log   *logger.Logger
	store *dataset.Store
}

func NewLoraHandler(log *logger.Logger, store *dataset.Store) *LoraHandler {
	return &LoraHandler{
		log:   log.With("handler", "LoraHandler"),
		store: store,
	}
}

// GET /api/loras
func (h *LoraHandler) GetInsights(c *gin.Context) {
	if !h.store.Available() {
		response.RespondOK(c, gin.H{"available": false, "hint": emptyStateHint})
		return
	}
	response.RespondOK(c, gin.H{
		"available":          true,
		"lora_analysis":      h.store.LoraAnalysis(),
		"technical_settings": h.store.TechnicalSettings(),
	})
}
