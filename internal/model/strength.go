package model

import "github.com/vaultpass/passgen-go/internal/strength"

// StrengthRequest carries a user-supplied password to be scored.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse pairs the heuristic assessment with a zxcvbn estimate.
type StrengthResponse struct {
	Strength strength.Assessment   `json:"strength"`
	Estimate strength.Guessability `json:"estimate"`
}
