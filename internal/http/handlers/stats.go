package handlers

import (
	"github.com/gin-gonic/gin"

	"promptatlas/internal/dataset"
	"promptatlas/internal/http/response"
	"promptatlas/internal/platform/logger"
)

// emptyStateHint is returned by every data endpoint while the server runs
// without a dataset.
const emptyStateHint = "no dataset loaded; run `promptatlas analyze` and restart the server"

type StatsHandler struct {
	log   *logger.Logger
	store *dataset.Store
}

func NewStatsHandler(log *logger.Logger, store *dataset.Store) *StatsHandler {
	return &StatsHandler{
		log:   log.With("handler", "StatsHandler"),
		store: store,
	}
}

// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	if !h.store.Available() {
		response.RespondOK(c, gin.H{"available": false, "hint": emptyStateHint})
		return
	}
	meta := h.store.Metadata()
	response.RespondOK(c, gin.H{
		"available":    true,
		"metadata":     meta,
		"base_models":  h.store.BaseModels(),
		"unique_loras": len(h.store.LoraAnalysis().Counts),
	})
}
