package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"promptatlas/internal/dataset"
	"promptatlas/internal/http/response"
	"promptatlas/internal/platform/apierr"
	"promptatlas/internal/platform/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type BrowseHandler struct {
	log   *logger.Logger
	store *dataset.Store
}

func NewBrowseHandler(log *logger.Logger, store *dataset.Store) *BrowseHandler {
	return &BrowseHandler{
		log:   log.With("handler", "BrowseHandler"),
		store: store,
	}
}

type browseRequest struct {
	dataset.Query
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// GET /api/categories
func (h *BrowseHandler) ListCategories(c *gin.Context) {
	if !h.store.Available() {
		response.RespondOK(c, gin.H{"available": false, "hint": emptyStateHint})
		return
	}
	response.RespondOK(c, gin.H{
		"available":  true,
		"categories": h.store.CategoryValues(),
	})
}

// POST /api/browse
func (h *BrowseHandler) Browse(c *gin.Context) {
	if !h.store.Available() {
		response.RespondOK(c, gin.H{"available": false, "hint": emptyStateHint})
		return
	}

	var req browseRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	if req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	set := h.store.Filter(req.Query)
	tech := dataset.Summarize(set)

	page := set
	if req.Offset >= len(page) {
		page = nil
	} else {
		page = page[req.Offset:]
	}
	if len(page) > req.Limit {
		page = page[:req.Limit]
	}

	response.RespondOK(c, gin.H{
		"available": true,
		"total":     len(set),
		"offset":    req.Offset,
		"records":   page,
		"technical": tech,
	})
}

// GET /api/images/:id
func (h *BrowseHandler) GetRecord(c *gin.Context) {
	if !h.store.Available() {
		response.RespondOK(c, gin.H{"available": false, "hint": emptyStateHint})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_record_id", err)
		return
	}

	rec, err := h.store.Get(id)
	if err != nil {
		var ae *apierr.Error
		if errors.As(err, &ae) {
			response.RespondError(c, ae.Status, ae.Code, ae.Err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "record_lookup_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"available": true, "record": rec})
}

// POST /api/random
func (h *BrowseHandler) Random(c *gin.Context) {
	if !h.store.Available() {
		response.RespondOK(c, gin.H{"available": false, "hint": emptyStateHint})
		return
	}

	var q dataset.Query
	if err := bindOptionalJSON(c, &q); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	rec, ok := h.store.Sample(q)
	if !ok {
		response.RespondOK(c, gin.H{"available": true, "found": false})
		return
	}
	response.RespondOK(c, gin.H{
		"available": true,
		"found":     true,
		"record":    rec,
	})
}

// bindOptionalJSON decodes a JSON body, treating an empty body as the zero
// value so filterless requests need no payload.
func bindOptionalJSON(c *gin.Context, out any) error {
	err := c.ShouldBindJSON(out)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
