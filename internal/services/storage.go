package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type StorageService interface {
	EnsureReportDir() error
	WriteTransient(prefix, ext string, write func(io.Writer) error) ([]byte, error)
	ReadUpload(file *multipart.FileHeader) (*bytes.Reader, error)
}

type storageService struct {
	reportPath string
}

func NewStorageService(reportPath string) StorageService {
	return &storageService{
		reportPath: reportPath,
	}
}

func (s *storageService) EnsureReportDir() error {
	if err := os.MkdirAll(s.reportPath, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	return nil
}

// WriteTransient writes a uniquely named file, reads it back and removes it.
func (s *storageService) WriteTransient(prefix, ext string, write func(io.Writer) error) ([]byte, error) {
	filePath := filepath.Join(s.reportPath, fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext))

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	defer os.Remove(filePath)

	if err := write(dst); err != nil {
		dst.Close()
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("failed to close report file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	return data, nil
}

// ReadUpload loads an uploaded PDF into memory.
func (s *storageService) ReadUpload(file *multipart.FileHeader) (*bytes.Reader, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("%w: invalid file extension %q, only PDF resumes are accepted", ErrValidation, ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open uploaded file: %w", ErrExtraction, err)
	}
	defer src.Close()

	return ReadAll(src)
}
