package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/smart-ats/internal/models"
)

type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) EvaluateDocument(ctx context.Context, resume io.ReaderAt, size int64, jobDescription string) (*models.EvaluationResult, error) {
	args := m.Called(ctx, resume, size, jobDescription)

	result, _ := args.Get(0).(*models.EvaluationResult)
	return result, args.Error(1)
}

func (m *MockEvaluator) EvaluateFile(ctx context.Context, resumePath string, jobDescription string) (*models.EvaluationResult, error) {
	args := m.Called(ctx, resumePath, jobDescription)

	result, _ := args.Get(0).(*models.EvaluationResult)
	return result, args.Error(1)
}

func (m *MockEvaluator) Evaluate(ctx context.Context, req models.EvaluationRequest) (*models.EvaluationResult, error) {
	args := m.Called(ctx, req)

	result, _ := args.Get(0).(*models.EvaluationResult)
	return result, args.Error(1)
}
