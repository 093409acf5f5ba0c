package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/Aashish23092/payslip-engine/dto"
	"github.com/Aashish23092/payslip-engine/service"
	"github.com/gin-gonic/gin"
)

type PayslipHandler struct {
	payslipService *service.PayslipService
}

func NewPayslipHandler(payslipService *service.PayslipService) *PayslipHandler {
	return &PayslipHandler{payslipService: payslipService}
}

// Extract handles POST /api/v1/payslips/extract
// Accepts a multipart payslip PDF plus an optional password.
func (h *PayslipHandler) Extract(c *gin.Context) {
	var req dto.ExtractRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	f, err := req.File.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_file",
			Message: "failed to open uploaded file: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer f.Close()

	pdfData, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_file",
			Message: "failed to read uploaded file: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	resp, err := h.payslipService.ExtractFromPDF(c.Request.Context(), pdfData, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrNoExtractableText) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, dto.ErrorResponse{
			Error:   "extraction_failed",
			Message: err.Error(),
			Code:    status,
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExtractText handles POST /api/v1/payslips/extract-text
// Accepts pre-extracted payslip text.
func (h *PayslipHandler) ExtractText(c *gin.Context) {
	var req dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	resp, err := h.payslipService.ExtractFromText(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "extraction_failed",
			Message: err.Error(),
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
