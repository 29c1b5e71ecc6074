package services

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF returns a document with one page per entry; empty entries become
// pages without any text.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Courier", "", 12)
	for _, text := range pages {
		doc.AddPage()
		if text != "" {
			doc.Cell(0, 10, text)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestExtractTextConcatenatesPages(t *testing.T) {
	data := buildPDF(t, "GoDeveloper", "", "Kubernetes")

	content, err := NewPDFParserService().ExtractTextWithMetaData(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, 3, content.PageCount)
	assert.Contains(t, content.Text, "GoDeveloper")
	assert.Contains(t, content.Text, "Kubernetes")
	assert.Less(t, bytes.Index([]byte(content.Text), []byte("GoDeveloper")), bytes.Index([]byte(content.Text), []byte("Kubernetes")))
	assert.NotContains(t, content.Text, "--- Page")
}

func TestExtractTextImageOnlyDocument(t *testing.T) {
	data := buildPDF(t, "", "")

	content, err := NewPDFParserService().ExtractTextWithMetaData(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, 2, content.PageCount)
	assert.Empty(t, content.Text)
}

func TestExtractTextCorruptInput(t *testing.T) {
	data := []byte("definitely not a pdf document")

	_, err := NewPDFParserService().ExtractTextWithMetaData(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)
	assert.Equal(t, KindExtraction, KindOf(err))
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(t, "Resume"), 0644))

	content, err := NewPDFParserService().ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, content.PageCount)
	assert.Contains(t, content.Text, "Resume")

	_, err = NewPDFParserService().ExtractFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrExtraction)
}
