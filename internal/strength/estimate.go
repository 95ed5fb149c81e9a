package strength

import (
	"github.com/nbutton23/zxcvbn-go"
)

// maxEstimatedRunes caps the input handed to zxcvbn, whose matching cost
// grows quickly with password length.
const maxEstimatedRunes = 50

// Guessability is a dictionary- and pattern-aware estimate produced by zxcvbn.
// It is reported alongside an Assessment and never feeds into its score.
type Guessability struct {
	// Score ranges from 0 (too guessable) to 4 (very unguessable).
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// Estimate runs zxcvbn over at most the first 50 runes of password.
func Estimate(password string) Guessability {
	if password == "" {
		return Guessability{CrackTime: "instant"}
	}

	checked := []rune(password)
	if len(checked) > maxEstimatedRunes {
		checked = checked[:maxEstimatedRunes]
	}

	result := zxcvbn.PasswordStrength(string(checked), nil)
	return Guessability{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}
