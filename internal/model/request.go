package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
// Lowercase letters are always part of the pool and have no flag.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous *bool `json:"exclude_ambiguous"`
}

// PassphraseRequest represents a word-based passphrase generation request.
type PassphraseRequest struct {
	Words     int    `json:"words"`
	Separator string `json:"separator"`
}

// GenerateResponse carries a generated value and its strength report.
type GenerateResponse struct {
	Value    string         `json:"value"`
	Length   int            `json:"length"`
	Strength StrengthReport `json:"strength"`
}
