package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/passforge/passforge-go/internal/model"
)

const menuText = `
  [1] Generate password
  [2] Generate passphrase
  [3] Analyze password strength
  [4] View history
  [5] Help
  [6] Exit
`

const helpText = `
Password generator
  Random passwords drawn from lowercase letters plus optional uppercase,
  digits and symbols. Ambiguous characters (il1Lo0O) can be excluded.

Passphrase generator
  Memorable word-based passwords with a configurable word count and
  separator.

Strength analyzer
  Scores any password 0-100, rates it WEAK/FAIR/GOOD/STRONG and lists
  what would make it stronger.

Tips
  • Use at least 12-16 characters
  • Mix uppercase, lowercase, numbers and symbols
  • Avoid personal information and reused passwords
`

// runMenu drives the interactive session until the user exits or
// stdin is closed. Invalid input never aborts the loop.
func (a *App) runMenu() error {
	a.renderBanner()

	for {
		fmt.Fprint(a.out, menuText+"\n")

		choice, err := a.promptLine("Enter your choice (1-6)", "")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.menuGenerate()
		case "2":
			err = a.menuPassphrase()
		case "3":
			err = a.menuAnalyze()
		case "4":
			a.renderHistory(a.generator.History().Entries())
		case "5":
			fmt.Fprint(a.out, helpText+"\n")
		case "6":
			fmt.Fprintln(a.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice, pick 1-6.")
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) menuGenerate() error {
	length, err := a.promptInt("Password length", a.cfg.DefaultLength)
	if err != nil {
		if userInputError(err) {
			fmt.Fprintln(a.out, "Please enter a valid positive number.")
			return nil
		}
		return err
	}

	upper, err := a.promptYesNo("Include uppercase?", true)
	if err != nil {
		return err
	}
	digits, err := a.promptYesNo("Include digits?", true)
	if err != nil {
		return err
	}
	symbols, err := a.promptYesNo("Include symbols?", true)
	if err != nil {
		return err
	}
	ambiguous, err := a.promptYesNo("Exclude ambiguous chars (il1Lo0O)?", false)
	if err != nil {
		return err
	}

	resp, err := a.generator.Generate(model.GenerateRequest{
		Length:           length,
		Uppercase:        boolPtr(upper),
		Digits:           boolPtr(digits),
		Symbols:          boolPtr(symbols),
		ExcludeAmbiguous: boolPtr(ambiguous),
	})
	if err != nil {
		fmt.Fprintln(a.out, friendlyError(err).Error())
		return nil
	}

	a.log.Debug("password generated", zap.Int("length", resp.Length))
	a.renderResult(resp)
	return nil
}

func (a *App) menuPassphrase() error {
	words, err := a.promptInt("Number of words", a.cfg.DefaultWords)
	if err != nil {
		if userInputError(err) {
			fmt.Fprintln(a.out, "Please enter a valid positive number.")
			return nil
		}
		return err
	}

	separator, err := a.promptLine("Separator", "-")
	if err != nil {
		return err
	}

	resp, err := a.generator.GeneratePassphrase(model.PassphraseRequest{
		Words:     words,
		Separator: separator,
	})
	if err != nil {
		fmt.Fprintln(a.out, friendlyError(err).Error())
		return nil
	}

	a.log.Debug("passphrase generated", zap.Int("words", words))
	a.renderResult(resp)
	return nil
}

func (a *App) menuAnalyze() error {
	password, err := a.promptSecret("Enter password to analyze")
	if err != nil {
		return err
	}
	if password == "" {
		fmt.Fprintln(a.out, "No password entered.")
		return nil
	}

	a.renderReport(a.analyzer.Analyze(password))
	return nil
}

// userInputError distinguishes a bad answer from an I/O failure.
func userInputError(err error) bool {
	return err != nil && !errors.Is(err, io.EOF)
}
