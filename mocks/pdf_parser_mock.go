package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/smart-ats/internal/services"
)

type MockPDFParser struct {
	mock.Mock
}

func (m *MockPDFParser) ExtractTextWithMetaData(r io.ReaderAt, size int64) (*services.PDFContent, error) {
	args := m.Called(r, size)

	content, _ := args.Get(0).(*services.PDFContent)
	return content, args.Error(1)
}

func (m *MockPDFParser) ExtractFile(filePath string) (*services.PDFContent, error) {
	args := m.Called(filePath)

	content, _ := args.Get(0).(*services.PDFContent)
	return content, args.Error(1)
}
