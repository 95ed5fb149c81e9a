package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantLen int
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantLen: DefaultLength,
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{
				Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantLen: 32,
		},
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 16, Uppercase: true},
			wantLen: 16,
		},
		{
			name:    "minimum length",
			opts:    GeneratorOptions{Length: MinLength, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			wantLen: MinLength,
		},
		{
			name:    "maximum length",
			opts:    GeneratorOptions{Length: MaxLength, Uppercase: true, Lowercase: true},
			wantLen: MaxLength,
		},
		{
			name:    "length below minimum is clamped",
			opts:    GeneratorOptions{Length: 1, Lowercase: true},
			wantLen: MinLength,
		},
		{
			name:    "negative length is clamped",
			opts:    GeneratorOptions{Length: -20, Numbers: true},
			wantLen: MinLength,
		},
		{
			name:    "length above maximum is clamped",
			opts:    GeneratorOptions{Length: 500, Symbols: true},
			wantLen: MaxLength,
		},
		{
			name:    "no character types falls back",
			opts:    GeneratorOptions{Length: 20},
			wantLen: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)
			require.NoError(t, err)
			assert.Len(t, result, tt.wantLen)
		})
	}
}

func TestGenerateContainsRequiredTypes(t *testing.T) {
	opts := GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}

	// Run multiple times to reduce flakiness from randomness.
	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		require.NoError(t, err)

		for _, charset := range []string{uppercaseChars, lowercaseChars, numberChars, symbolChars} {
			assert.True(t, strings.ContainsAny(password, charset), "password %q missing a character from %q", password, charset)
		}
	}
}

func TestGenerateMinimumLengthOnePerClass(t *testing.T) {
	opts := GeneratorOptions{Length: 4, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		require.NoError(t, err)
		require.Len(t, password, 4)

		for _, charset := range []string{lowercaseChars, uppercaseChars, numberChars, symbolChars} {
			count := 0
			for _, ch := range password {
				if strings.ContainsRune(charset, ch) {
					count++
				}
			}
			assert.Equal(t, 1, count, "password %q characters from %q", password, charset)
		}
	}
}

func TestGenerateShufflesRequiredCharacters(t *testing.T) {
	opts := GeneratorOptions{Length: 4, Lowercase: true, Symbols: true}

	// The guaranteed lowercase pick is placed first before shuffling, so an
	// unshuffled result would always start with a lowercase letter.
	firstLower, firstSymbol := 0, 0
	for i := 0; i < 200; i++ {
		password, err := Generate(opts)
		require.NoError(t, err)

		switch {
		case strings.IndexByte(lowercaseChars, password[0]) >= 0:
			firstLower++
		case strings.IndexByte(symbolChars, password[0]) >= 0:
			firstSymbol++
		}
	}

	assert.Positive(t, firstLower)
	assert.Positive(t, firstSymbol, "position 0 was never a symbol")
}

func TestGenerateSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 32, Uppercase: true},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    GeneratorOptions{Length: 32, Lowercase: true},
			charset: lowercaseChars,
		},
		{
			name:    "numbers only",
			opts:    GeneratorOptions{Length: 32, Numbers: true},
			charset: numberChars,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 32, Symbols: true},
			charset: symbolChars,
		},
		{
			name:    "fallback uses letters and digits",
			opts:    GeneratorOptions{Length: 64},
			charset: lowercaseChars + uppercaseChars + numberChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			require.NoError(t, err)
			for _, ch := range password {
				assert.Contains(t, tt.charset, string(ch))
			}
		})
	}
}

func TestGenerateExcludeAmbiguous(t *testing.T) {
	tests := []struct {
		name string
		opts GeneratorOptions
	}{
		{
			name: "all classes",
			opts: GeneratorOptions{Length: MaxLength, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true, ExcludeAmbiguous: true},
		},
		{
			name: "digits only",
			opts: GeneratorOptions{Length: MaxLength, Numbers: true, ExcludeAmbiguous: true},
		},
		{
			name: "fallback pool",
			opts: GeneratorOptions{Length: MaxLength, ExcludeAmbiguous: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				password, err := Generate(tt.opts)
				require.NoError(t, err)
				require.False(t, strings.ContainsAny(password, ambiguousChars), "password %q contains an ambiguous character", password)
			}
		})
	}
}

func TestFilterKeepsEnoughCharacters(t *testing.T) {
	opts := GeneratorOptions{ExcludeAmbiguous: true}

	for _, charset := range []string{lowercaseChars, uppercaseChars, numberChars, symbolChars} {
		assert.GreaterOrEqual(t, len(opts.filter(charset)), 8, "filter(%q)", charset)
	}
	assert.Equal(t, "23456789", opts.filter(numberChars))
	assert.Equal(t, numberChars, GeneratorOptions{}.filter(numberChars))
}

func TestClampLength(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, MinLength},
		{0, MinLength},
		{4, 4},
		{12, 12},
		{128, 128},
		{129, MaxLength},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLength(tt.in), "ClampLength(%d)", tt.in)
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		require.NoError(t, err)
		assert.False(t, seen[password], "duplicate password generated: %q", password)
		seen[password] = true
	}
}
