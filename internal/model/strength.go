package model

// Rating is a qualitative password strength band.
type Rating string

const (
	RatingWeak   Rating = "WEAK"
	RatingFair   Rating = "FAIR"
	RatingGood   Rating = "GOOD"
	RatingStrong Rating = "STRONG"
)

// RatingFromScore maps a 0-100 score to a rating band.
// The mapping is monotone: a higher score never yields a lower rating.
func RatingFromScore(score int) Rating {
	switch {
	case score >= 80:
		return RatingStrong
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	default:
		return RatingWeak
	}
}

// StrengthReport is the result of analyzing a password.
type StrengthReport struct {
	Score       int      `json:"score"`
	Rating      Rating   `json:"rating"`
	Suggestions []string `json:"suggestions,omitempty"`

	// Entropy estimate from zxcvbn; informational only, never feeds Score.
	EntropyBits float64 `json:"entropy_bits"`
	CrackTime   string  `json:"crack_time"`
}
