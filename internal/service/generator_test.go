package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	require.NoError(t, err)

	assert.Equal(t, 16, resp.Length)
	assert.Len(t, resp.Password, 16)
	assert.GreaterOrEqual(t, resp.Strength.Score, 0)
	assert.LessOrEqual(t, resp.Strength.Score, 100)
	assert.NotEmpty(t, resp.Strength.Label)
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    intPtr(32),
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 32, resp.Length)
	assert.Regexp(t, `^[A-Za-z]+$`, resp.Password)
}

func TestGenerate_ExcludeAmbiguous(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:           intPtr(128),
		ExcludeAmbiguous: boolPtr(true),
	})
	require.NoError(t, err)

	for _, c := range "loIO01" {
		assert.NotContains(t, resp.Password, string(c))
	}
}

func TestGenerate_LengthClamped(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantLen int
	}{
		{name: "explicit zero", length: 0, wantLen: 4},
		{name: "too short", length: 3, wantLen: 4},
		{name: "negative", length: -5, wantLen: 4},
		{name: "too long", length: 200, wantLen: 128},
	}

	svc := NewGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(tt.length)})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, resp.Length)
			assert.Len(t, resp.Password, tt.wantLen)
		})
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    intPtr(16),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	assert.ErrorIs(t, err, crypto.ErrNoCharacterTypes)
}
