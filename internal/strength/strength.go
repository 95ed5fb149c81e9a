// Package strength scores passwords with a small additive heuristic.
//
// Character classes are ASCII-only: a-z, A-Z, 0-9, and symbols, which are
// any other non-whitespace ASCII rune including control characters. Non-ASCII
// runes still count toward length and uniqueness.
package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label is the qualitative strength tier derived from a score.
type Label string

const (
	VeryWeak   Label = "Very Weak"
	Weak       Label = "Weak"
	Medium     Label = "Medium"
	Strong     Label = "Strong"
	VeryStrong Label = "Very Strong"
)

// Color returns the display color associated with the label.
func (l Label) Color() string {
	switch l {
	case VeryStrong:
		return "#22c55e"
	case Strong:
		return "#84cc16"
	case Medium:
		return "#eab308"
	case Weak:
		return "#f97316"
	default:
		return "#ef4444"
	}
}

const (
	FeedbackLengthRecommended = "Consider using 12+ characters for better security"
	FeedbackTooShort          = "Password is too short (min 8 recommended)"
	FeedbackVariety           = "Use a mix of upper/lower, digits, and symbols"
	FeedbackRepeated          = "Avoid too many repeated characters"
	FeedbackCommonPatterns    = "Avoid common patterns and sequences"
)

const maxScore = 100

var commonPatterns = []string{"123", "abc", "qwe", "password", "111", "000"}

// Assessment is the result of scoring a single password.
type Assessment struct {
	Score    int      `json:"score"`
	Label    Label    `json:"strength"`
	Color    string   `json:"color"`
	Feedback []string `json:"feedback"`
}

// Assess scores password on a 0-100 scale. It accepts any string, including
// the empty string, and keeps no state between calls.
func Assess(password string) Assessment {
	score := 0
	feedback := []string{}

	length := utf8.RuneCountInString(password)
	switch {
	case length >= 12:
		score += 25
	case length >= 8:
		score += 15
		feedback = append(feedback, FeedbackLengthRecommended)
	default:
		feedback = append(feedback, FeedbackTooShort)
	}

	v := variety(password)
	score += v * 15
	if v < 3 {
		feedback = append(feedback, FeedbackVariety)
	}

	if length > 0 && float64(distinct(password))/float64(length) > 0.7 {
		score += 10
	} else {
		feedback = append(feedback, FeedbackRepeated)
	}

	if !hasCommonPattern(password) {
		score += 15
	} else {
		feedback = append(feedback, FeedbackCommonPatterns)
	}

	score = min(score, maxScore)
	label := labelFor(score)

	return Assessment{
		Score:    score,
		Label:    label,
		Color:    label.Color(),
		Feedback: feedback,
	}
}

func labelFor(score int) Label {
	switch {
	case score >= 85:
		return VeryStrong
	case score >= 70:
		return Strong
	case score >= 50:
		return Medium
	case score >= 30:
		return Weak
	default:
		return VeryWeak
	}
}

// variety counts how many of the four character classes appear in s.
func variety(s string) int {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r < utf8.RuneSelf && !unicode.IsSpace(r):
			symbol = true
		}
	}

	n := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			n++
		}
	}
	return n
}

func distinct(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func hasCommonPattern(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
