package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// AnalyzerService scores user-supplied passwords. Analyzed passwords are
// never recorded in history; only generated values are.
type AnalyzerService struct{}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Analyze scores the given password.
func (s *AnalyzerService) Analyze(password string) model.StrengthReport {
	return strength.Analyze(password)
}
