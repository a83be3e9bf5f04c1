package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Characters easily confused visually (l vs 1, O vs 0).
	ambiguousChars = "il1Lo0O"

	MaxLength = 128
)

var (
	ErrInvalidLength = errors.New("password length must be at least 1")
	ErrLengthTooLong = errors.New("password length must be at most 128")
	ErrEmptyPool     = errors.New("character pool is empty")
)

// GeneratorOptions configures the password generator.
// Lowercase letters are always included in the pool.
type GeneratorOptions struct {
	Length           int
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters with all classes enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Pool returns the character pool the given options select from.
func Pool(opts GeneratorOptions) string {
	pool := lowercaseChars
	if opts.Uppercase {
		pool += uppercaseChars
	}
	if opts.Digits {
		pool += digitChars
	}
	if opts.Symbols {
		pool += symbolChars
	}

	if opts.ExcludeAmbiguous {
		pool = strings.Map(func(r rune) rune {
			if strings.ContainsRune(ambiguousChars, r) {
				return -1
			}
			return r
		}, pool)
	}
	return pool
}

// Generate creates a random password based on the given options.
// Every position is drawn independently and uniformly from the pool using
// crypto/rand, so class coverage is probabilistic rather than guaranteed.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	pool := Pool(opts)
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
