package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/passforge/passforge-go/internal/model"
)

func (a *App) generateCommand() *cobra.Command {
	var (
		length           int
		noUpper          bool
		noDigits         bool
		noSymbols        bool
		excludeAmbiguous bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.GenerateRequest{
				Length:           length,
				Uppercase:        boolPtr(!noUpper),
				Digits:           boolPtr(!noDigits),
				Symbols:          boolPtr(!noSymbols),
				ExcludeAmbiguous: boolPtr(excludeAmbiguous),
			}

			resp, err := a.generator.Generate(req)
			if err != nil {
				return friendlyError(err)
			}

			a.log.Debug("password generated", zap.Int("length", resp.Length))
			a.renderResult(resp)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", a.cfg.DefaultLength, "password length")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().BoolVar(&excludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous characters (il1Lo0O)")

	return cmd
}

func (a *App) passphraseCommand() *cobra.Command {
	var (
		words     int
		separator string
	)

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a word-based passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.generator.GeneratePassphrase(model.PassphraseRequest{
				Words:     words,
				Separator: separator,
			})
			if err != nil {
				return friendlyError(err)
			}

			a.log.Debug("passphrase generated", zap.Int("words", words))
			a.renderResult(resp)
			return nil
		},
	}

	cmd.Flags().IntVarP(&words, "words", "w", a.cfg.DefaultWords, "number of words")
	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "word separator")

	return cmd
}

func boolPtr(b bool) *bool { return &b }
