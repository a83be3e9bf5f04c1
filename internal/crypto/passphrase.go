package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidWordCount = errors.New("word count must be at least 1")

// wordList is the fixed vocabulary for passphrase generation.
var wordList = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
	"golf", "hotel", "india", "juliet", "kilo", "lima",
	"tiger", "ocean", "mountain", "river", "forest", "desert",
	"thunder", "lightning", "sunrise", "sunset", "moon", "star",
	"piano", "guitar", "violin", "drum", "flute", "trumpet",
	"ruby", "emerald", "sapphire", "diamond", "pearl", "amber",
}

// PassphraseOptions configures passphrase generation.
type PassphraseOptions struct {
	Words     int
	Separator string
}

// DefaultPassphraseOptions returns the defaults: 4 words joined with "-".
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{Words: 4, Separator: "-"}
}

// GeneratePassphrase selects words independently and uniformly at random
// from the word list and joins them with the separator. Words are drawn
// with replacement, so repeats are possible.
func GeneratePassphrase(opts PassphraseOptions) (string, error) {
	if opts.Words < 1 {
		return "", ErrInvalidWordCount
	}

	words := make([]string, opts.Words)
	for i := range words {
		w, err := randWord(wordList)
		if err != nil {
			return "", err
		}
		words[i] = w
	}

	return strings.Join(words, opts.Separator), nil
}

// randWord picks a random word from list using crypto/rand.
func randWord(list []string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", err
	}
	return list[n.Int64()], nil
}

// WordListSize reports how many words the built-in list contains.
func WordListSize() int {
	return len(wordList)
}

