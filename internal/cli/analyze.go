package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/crypto"
)

func (a *App) analyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Score the strength of a password",
		Long: "Score the strength of a password. The password is read from " +
			"standard input; when attached to a terminal the input is not echoed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.promptSecret("Enter password to analyze")
			if err != nil {
				return err
			}
			if password == "" {
				return errors.New("no password entered")
			}

			a.renderReport(a.analyzer.Analyze(password))
			return nil
		},
	}
}

// friendlyError rewrites generator configuration errors into messages
// suitable for direct display, and passes everything else through.
func friendlyError(err error) error {
	switch {
	case errors.Is(err, crypto.ErrInvalidLength):
		return errors.New("length must be a positive number")
	case errors.Is(err, crypto.ErrLengthTooLong):
		return fmt.Errorf("length must be at most %d", crypto.MaxLength)
	case errors.Is(err, crypto.ErrEmptyPool):
		return errors.New("at least one character class must be enabled")
	case errors.Is(err, crypto.ErrInvalidWordCount):
		return errors.New("word count must be a positive number")
	}
	return err
}
