package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptatlas/internal/http/response"
	"promptatlas/internal/platform/logger"
	"promptatlas/internal/promptgen"
)

type PromptHandler struct {
	log *logger.Logger
	gen *promptgen.Generator
}

func NewPromptHandler(log *logger.Logger, gen *promptgen.Generator) *PromptHandler {
	return &PromptHandler{
		log: log.With("handler", "PromptHandler"),
		gen: gen,
	}
}

// POST /api/prompts/generate
func (h *PromptHandler) Generate(c *gin.Context) {
	var req promptgen.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	pairs := h.gen.Generate(req)
	response.RespondOK(c, gin.H{
		"count":      len(pairs),
		"variations": pairs,
	})
}
