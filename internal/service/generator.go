package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	DefaultLength = 12
	MaxLength     = 128
	MaxCount      = 50
)

var (
	ErrLengthTooLong   = fmt.Errorf("%w: length must be at most %d", crypto.ErrConfiguration, MaxLength)
	ErrCountOutOfRange = fmt.Errorf("%w: count must be between 1 and %d", crypto.ErrConfiguration, MaxCount)
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src crypto.Source
}

// NewGeneratorService creates a new GeneratorService. A nil src uses crypto/rand;
// src must be safe for concurrent use when the service backs the HTTP API.
func NewGeneratorService(src crypto.Source) *GeneratorService {
	if src == nil {
		src = crypto.CryptoSource{}
	}
	return &GeneratorService{src: src}
}

// Options resolves request defaults into generator options.
func Options(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		MinOfEach: 1,
	}
	if opts.Length == 0 {
		opts.Length = DefaultLength
	}
	if req.MinOfEach != nil {
		opts.MinOfEach = *req.MinOfEach
	}
	return opts
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := Options(req)
	if opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	passwords := make([]model.GeneratedPassword, 0, count)
	for i := 0; i < count; i++ {
		password, err := crypto.Generate(s.src, opts)
		if err != nil {
			return model.GenerateResponse{}, err
		}

		generated := model.GeneratedPassword{Password: password}
		if req.Hash {
			generated.Hash, err = crypto.HashPassword(password)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing generated password: %w", err)
			}
		}
		passwords = append(passwords, generated)
	}

	return model.GenerateResponse{
		Passwords: passwords,
		Length:    opts.Length,
	}, nil
}

// IsConfigurationError reports whether err was caused by invalid request options.
func IsConfigurationError(err error) bool {
	return errors.Is(err, crypto.ErrConfiguration)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
