package service

import (
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request and scores it.
// A request that deselects every character type is rejected here, before the
// generator's fallback pool can kick in.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:           intOrDefault(req.Length, crypto.DefaultLength),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Numbers:          boolOrDefault(req.Digits, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, false),
	}

	if !opts.HasCharacterTypes() {
		return model.GenerateResponse{}, crypto.ErrNoCharacterTypes
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strength.Assess(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
