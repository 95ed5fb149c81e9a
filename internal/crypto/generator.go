package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// ambiguousChars are dropped from every class when ExcludeAmbiguous is set.
	ambiguousChars = "loIO01"

	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16
)

// ErrNoCharacterTypes is returned by callers that validate options before
// generating. Generate itself never returns it.
var ErrNoCharacterTypes = errors.New("at least one character type must be selected")

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// HasCharacterTypes reports whether at least one character class is selected.
func (o GeneratorOptions) HasCharacterTypes() bool {
	return o.Lowercase || o.Uppercase || o.Numbers || o.Symbols
}

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	return min(max(n, MinLength), MaxLength)
}

// Generate creates a cryptographically secure random password based on the given options.
//
// The length is clamped rather than rejected, and every selected class appears
// at least once. With no class selected it falls back to letters and digits.
// An error is only returned if the system random source fails.
func Generate(opts GeneratorOptions) (string, error) {
	length := ClampLength(opts.Length)
	requiredSets := opts.requiredSets()

	pool := strings.Join(requiredSets, "")
	if pool == "" {
		pool = opts.filter(lowercaseChars) + opts.filter(uppercaseChars) + opts.filter(numberChars)
	}

	result := make([]byte, length)

	// Guarantee at least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Securely shuffle using Fisher-Yates with crypto/rand.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// requiredSets returns the filtered charset of each selected class, in a fixed order.
func (o GeneratorOptions) requiredSets() []string {
	sets := make([]string, 0, 4)
	if o.Lowercase {
		sets = append(sets, o.filter(lowercaseChars))
	}
	if o.Uppercase {
		sets = append(sets, o.filter(uppercaseChars))
	}
	if o.Numbers {
		sets = append(sets, o.filter(numberChars))
	}
	if o.Symbols {
		sets = append(sets, o.filter(symbolChars))
	}
	return sets
}

// filter returns charset without ambiguous characters when requested.
// The base sets are never modified.
func (o GeneratorOptions) filter(charset string) string {
	if !o.ExcludeAmbiguous {
		return charset
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ambiguousChars, r) {
			return -1
		}
		return r
	}, charset)
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("reading random index: %w", err)
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("reading shuffle index: %w", err)
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
