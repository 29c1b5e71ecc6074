package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractTextWithMetaData(r io.ReaderAt, size int64) (*PDFContent, error)
	ExtractFile(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractTextWithMetaData concatenates the text of every page in order.
// Pages without a text layer contribute nothing.
func (p *pdfParserService) ExtractTextWithMetaData(r io.ReaderAt, size int64) (content *PDFContent, err error) {
	// The PDF reader panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtraction, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %w", ErrExtraction, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		textBuilder.WriteString(pageText(reader.Page(pageIndex)))
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
	}, nil
}

func (p *pdfParserService) ExtractFile(filePath string) (*PDFContent, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %w", ErrExtraction, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat PDF: %w", ErrExtraction, err)
	}

	return p.ExtractTextWithMetaData(f, stat.Size())
}

func pageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if page.V.IsNull() {
		return ""
	}

	plain, err := page.GetPlainText(nil)
	if err != nil {
		// Keep going with the remaining pages.
		return ""
	}
	// Pages without a text layer still yield line breaks.
	if strings.TrimSpace(plain) == "" {
		return ""
	}
	return plain
}

// ReadAll buffers r so it can be handed to the parser as an io.ReaderAt.
func ReadAll(r io.Reader) (*bytes.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read document: %w", ErrExtraction, err)
	}
	return bytes.NewReader(data), nil
}
