package handler

import (
	"errors"
	"net/http"

	"github.com/Aashish23092/payslip-engine/catalog"
	"github.com/Aashish23092/payslip-engine/dto"
	"github.com/gin-gonic/gin"
)

// PatternHandler exposes catalog.AddPattern so per-organization patterns can
// be registered without redeploying.
type PatternHandler struct {
	cat *catalog.Catalog
}

func NewPatternHandler(cat *catalog.Catalog) *PatternHandler {
	return &PatternHandler{cat: cat}
}

// AddPattern handles POST /api/v1/patterns
func (h *PatternHandler) AddPattern(c *gin.Context) {
	var req dto.AddPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := h.cat.AddPattern(req.Name, req.Regex); err != nil {
		var patternErr *catalog.PatternError
		if errors.As(err, &patternErr) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "invalid_pattern",
				Message: patternErr.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "registration_failed",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "registered", "name": req.Name})
}
