package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Aashish23092/payslip-engine/dto"
	"github.com/Aashish23092/payslip-engine/extractor"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNoExtractableText is returned for PDFs with no embedded text layer.
// Scanned payslips need OCR upstream; this service does not perform it.
var ErrNoExtractableText = errors.New("no extractable text in document")

type PayslipService struct {
	engine *extractor.Engine
	pdf    PDFProcessor
	log    zerolog.Logger
}

func NewPayslipService(engine *extractor.Engine, pdf PDFProcessor, log zerolog.Logger) *PayslipService {
	return &PayslipService{engine: engine, pdf: pdf, log: log}
}

// ExtractFromPDF decodes the PDF to text and runs the extraction pipeline.
func (s *PayslipService) ExtractFromPDF(ctx context.Context, pdfData []byte, password string) (*dto.ExtractResponse, error) {
	text, err := s.pdf.ExtractText(pdfData, password)
	if err != nil {
		return nil, fmt.Errorf("pdf text extraction failed: %w", err)
	}
	if len(strings.TrimSpace(text)) < 20 {
		return nil, ErrNoExtractableText
	}
	return s.extract(ctx, text), nil
}

// ExtractFromText runs the extraction pipeline over caller-supplied text.
func (s *PayslipService) ExtractFromText(ctx context.Context, text string) (*dto.ExtractResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoExtractableText
	}
	return s.extract(ctx, text), nil
}

func (s *PayslipService) extract(ctx context.Context, text string) *dto.ExtractResponse {
	quality := evaluateTextQuality(text)
	record := s.engine.Parse(text)

	runID := uuid.NewString()
	s.log.Info().
		Str("run_id", runID).
		Str("month", record.Month).
		Int("year", record.Year).
		Float64("quality", quality.FinalScore).
		Msg("payslip extracted")

	return &dto.ExtractResponse{
		RunID:       runID,
		Record:      record,
		Quality:     quality,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// evaluateTextQuality scores the text on length and payslip-keyword
// presence, 0-100. A sparse or keyword-free document signals a record the
// caller should treat as low confidence.
func evaluateTextQuality(text string) dto.TextQuality {
	var q dto.TextQuality
	if text == "" {
		q.Issues = append(q.Issues, "empty_document")
		return q
	}

	// Length score (max 40 points)
	textLen := len(strings.TrimSpace(text))
	switch {
	case textLen > 500:
		q.LengthScore = 40.0
	case textLen > 100:
		q.LengthScore = 20.0
	case textLen > 20:
		q.LengthScore = 10.0
	}

	// Keyword presence score (max 60 points)
	keywords := []string{
		"pay", "salary", "earnings", "deductions", "dsop", "tax",
		"fund", "account", "pan", "statement",
	}

	textLower := strings.ToLower(text)
	keywordCount := 0
	for _, keyword := range keywords {
		if strings.Contains(textLower, keyword) {
			keywordCount++
		}
	}
	q.KeywordScore = float64(keywordCount) * 6.0

	q.FinalScore = q.LengthScore + q.KeywordScore
	if q.FinalScore > 100.0 {
		q.FinalScore = 100.0
	}
	if keywordCount == 0 {
		q.Issues = append(q.Issues, "no_payslip_keywords")
	}
	if q.FinalScore < 60 {
		q.Issues = append(q.Issues, "low_quality_document")
	}
	return q
}
