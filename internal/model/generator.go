package model

import "github.com/vaultpass/passgen-go/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and an
// explicit false or 0.
type GenerateRequest struct {
	Length           *int  `json:"length"`
	Lowercase        *bool `json:"lowercase"`
	Uppercase        *bool `json:"uppercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous *bool `json:"excludeAmbiguous"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string              `json:"password"`
	Length   int                 `json:"length"`
	Strength strength.Assessment `json:"strength"`
}
