// Package strength scores passwords with a documented weighted heuristic
// and maps the score onto a qualitative rating.
package strength

import (
	"strings"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/passforge/passforge-go/internal/model"
)

// Score weights. Length contributes up to 30 points with fixed bands, so
// returns diminish once a password passes 16 characters. Each character
// class adds its own weight, high uniqueness adds 10, and a hit on the
// common-pattern blocklist costs 20.
const (
	lengthStrongBonus = 30 // >= 16 chars
	lengthGoodBonus   = 20 // >= 12 chars
	lengthFairBonus   = 10 // >= 8 chars

	lowercaseBonus = 10
	uppercaseBonus = 15
	digitBonus     = 15
	symbolBonus    = 20

	uniquenessBonus = 10
	patternPenalty  = 20
)

// commonPatterns is a small blocklist of substrings that show up in
// breached-password lists; matching is case-insensitive.
var commonPatterns = []string{"123", "abc", "qwerty", "password", "111", "000"}

// Analyze scores a password and returns the full report. It is a pure
// function: the same input always produces the same report.
func Analyze(password string) model.StrengthReport {
	if password == "" {
		return model.StrengthReport{
			Rating:      model.RatingWeak,
			Suggestions: []string{"Use at least 8 characters"},
			CrackTime:   "instant",
		}
	}

	score := 0
	var suggestions []string

	switch n := len(password); {
	case n >= 16:
		score += lengthStrongBonus
	case n >= 12:
		score += lengthGoodBonus
		suggestions = append(suggestions, "Consider using 16+ characters for better security")
	case n >= 8:
		score += lengthFairBonus
		suggestions = append(suggestions, "Password is short, recommend 12+ characters")
	default:
		suggestions = append(suggestions, "Password is too short, use at least 8 characters")
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if hasLower {
		score += lowercaseBonus
	} else {
		suggestions = append(suggestions, "Add lowercase letters")
	}
	if hasUpper {
		score += uppercaseBonus
	} else {
		suggestions = append(suggestions, "Add uppercase letters")
	}
	if hasDigit {
		score += digitBonus
	} else {
		suggestions = append(suggestions, "Add numbers")
	}
	if hasSymbol {
		score += symbolBonus
	} else {
		suggestions = append(suggestions, "Add special characters")
	}

	ratio := uniqueRatio(password)
	if ratio > 0.7 {
		score += uniquenessBonus
	} else if ratio < 0.5 {
		suggestions = append(suggestions, "Password has too many repeated characters")
	}

	lowered := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lowered, pattern) {
			score -= patternPenalty
			suggestions = append(suggestions, "Avoid common patterns like '123' or 'abc'")
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	estimate := zxcvbn.PasswordStrength(password, nil)

	return model.StrengthReport{
		Score:       score,
		Rating:      model.RatingFromScore(score),
		Suggestions: suggestions,
		EntropyBits: estimate.Entropy,
		CrackTime:   estimate.CrackTimeDisplay,
	}
}

// uniqueRatio returns distinct runes divided by total runes.
func uniqueRatio(s string) float64 {
	seen := make(map[rune]struct{}, len(s))
	total := 0
	for _, r := range s {
		seen[r] = struct{}{}
		total++
	}
	return float64(len(seen)) / float64(total)
}
