package service

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor is the external collaborator that turns a payslip PDF into
// the raw text string the engine consumes.
type PDFProcessor interface {
	ExtractText(pdfData []byte, password string) (string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText concatenates the text of every page. Password-protected
// payslips (the common case for PCDA slips) are decrypted first.
func (p *pdfProcessor) ExtractText(pdfData []byte, password string) (string, error) {
	if password != "" {
		decrypted, err := decrypt(pdfData, password)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt pdf: %w", err)
		}
		pdfData = decrypted
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					textBuilder.WriteString(" ")
				}
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

// decrypt round-trips through temp files because pdfcpu's decrypt API is
// file based.
func decrypt(pdfData []byte, password string) ([]byte, error) {
	inFile, err := os.CreateTemp("", "payslip-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(inFile.Name())

	if _, err := inFile.Write(pdfData); err != nil {
		inFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	inFile.Close()

	outFile, err := os.CreateTemp("", "payslip-dec-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	outFile.Close()
	defer os.Remove(outFile.Name())

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password

	if err := api.DecryptFile(inFile.Name(), outFile.Name(), conf); err != nil {
		return nil, err
	}

	return os.ReadFile(outFile.Name())
}
