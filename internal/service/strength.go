package service

import (
	"errors"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// StrengthService scores user-supplied passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check scores the password in req. The scorer accepts empty input, but an
// empty password is treated as a missing field at this boundary.
func (s *StrengthService) Check(req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}

	return model.StrengthResponse{
		Strength: strength.Assess(req.Password),
		Estimate: strength.Estimate(req.Password),
	}, nil
}
