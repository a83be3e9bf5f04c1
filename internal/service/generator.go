package service

import (
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/history"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// GeneratorService handles password and passphrase generation. Every
// generated value is scored and recorded in the session history.
type GeneratorService struct {
	history       *history.Store
	defaultLength int
	defaultWords  int
}

// NewGeneratorService creates a GeneratorService recording into hist.
func NewGeneratorService(hist *history.Store, defaultLength, defaultWords int) *GeneratorService {
	if defaultLength < 1 {
		defaultLength = 16
	}
	if defaultWords < 1 {
		defaultWords = 4
	}
	return &GeneratorService{
		history:       hist,
		defaultLength: defaultLength,
		defaultWords:  defaultWords,
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Digits:           boolOrDefault(req.Digits, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, false),
	}

	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, fmt.Errorf("generate password: %w", err)
	}

	s.history.Add(password, model.KindPassword)

	return model.GenerateResponse{
		Value:    password,
		Length:   len(password),
		Strength: strength.Analyze(password),
	}, nil
}

// GeneratePassphrase produces a word-based passphrase.
func (s *GeneratorService) GeneratePassphrase(req model.PassphraseRequest) (model.GenerateResponse, error) {
	opts := crypto.PassphraseOptions{
		Words:     req.Words,
		Separator: req.Separator,
	}

	if opts.Words == 0 {
		opts.Words = s.defaultWords
	}
	if opts.Separator == "" {
		opts.Separator = "-"
	}

	passphrase, err := crypto.GeneratePassphrase(opts)
	if err != nil {
		return model.GenerateResponse{}, fmt.Errorf("generate passphrase: %w", err)
	}

	s.history.Add(passphrase, model.KindPassphrase)

	return model.GenerateResponse{
		Value:    passphrase,
		Length:   len(passphrase),
		Strength: strength.Analyze(passphrase),
	}, nil
}

// History exposes the session history the service records into.
func (s *GeneratorService) History() *history.Store {
	return s.history
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
