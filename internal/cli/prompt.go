package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// promptLine asks for a line of input, showing the default value.
// An empty answer returns the default.
func (a *App) promptLine(label, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(a.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(a.out, "%s: ", label)
	}

	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

// promptInt asks for a positive integer, falling back to the default on
// an empty answer. A non-numeric or non-positive answer is an error the
// caller is expected to surface and retry.
func (a *App) promptInt(label string, fallback int) (int, error) {
	line, err := a.promptLine(label, strconv.Itoa(fallback))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return n, nil
}

// promptYesNo asks a yes/no question. Anything other than an explicit
// opposite answer keeps the default.
func (a *App) promptYesNo(label string, fallback bool) (bool, error) {
	hint := "Y/n"
	if !fallback {
		hint = "y/N"
	}
	fmt.Fprintf(a.out, "%s (%s): ", label, hint)

	line, err := a.in.ReadString('\n')
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return fallback, nil
	}
}

// promptSecret reads a password without echoing when stdin is a
// terminal, and falls back to a plain line read otherwise so the
// command still works in pipes.
func (a *App) promptSecret(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintf(a.out, "%s: ", label)
		line, err := a.in.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Fprintf(a.out, "%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
