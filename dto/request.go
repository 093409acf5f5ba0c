package dto

import (
	"errors"
	"mime/multipart"
)

// ExtractRequest carries an uploaded payslip PDF, optionally password protected.
type ExtractRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Password string                `form:"password"`
}

// ExtractTextRequest carries payslip text extracted by the caller.
type ExtractTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddPatternRequest registers an additional extraction pattern at runtime.
type AddPatternRequest struct {
	Name  string `json:"name" binding:"required"`
	Regex string `json:"regex" binding:"required"`
}

func (r *ExtractRequest) Validate() error {
	if r.File == nil {
		return errors.New("file is required")
	}
	return nil
}
