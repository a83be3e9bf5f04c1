package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/history"
	"github.com/passforge/passforge-go/internal/service"
)

// newTestApp wires an App against scripted stdin and a capture buffer.
func newTestApp(input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := config.Config{DefaultLength: 16, DefaultWords: 4, HistoryLimit: 10}
	return &App{
		cfg:       cfg,
		log:       zap.NewNop(),
		generator: service.NewGeneratorService(history.NewStore(cfg.HistoryLimit), cfg.DefaultLength, cfg.DefaultWords),
		analyzer:  service.NewAnalyzerService(),
		in:        bufio.NewReader(strings.NewReader(input)),
		out:       out,
	}, out
}

func TestPromptLine(t *testing.T) {
	app, _ := newTestApp("hello\n")
	got, err := app.promptLine("Value", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	app, _ = newTestApp("\n")
	got, err = app.promptLine("Value", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestPromptInt(t *testing.T) {
	app, _ := newTestApp("12\n")
	n, err := app.promptInt("Length", 16)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	app, _ = newTestApp("\n")
	n, err = app.promptInt("Length", 16)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	app, _ = newTestApp("banana\n")
	_, err = app.promptInt("Length", 16)
	assert.Error(t, err)

	app, _ = newTestApp("-4\n")
	_, err = app.promptInt("Length", 16)
	assert.Error(t, err)
}

func TestPromptYesNo(t *testing.T) {
	tests := []struct {
		input    string
		fallback bool
		want     bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"whatever\n", true, true},
	}

	for _, tt := range tests {
		app, _ := newTestApp(tt.input)
		got, err := app.promptYesNo("Include?", tt.fallback)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q fallback %v", tt.input, tt.fallback)
	}
}

func TestFriendlyError(t *testing.T) {
	assert.EqualError(t, friendlyError(crypto.ErrInvalidLength), "length must be a positive number")
	assert.EqualError(t, friendlyError(crypto.ErrLengthTooLong), "length must be at most 128")
	assert.EqualError(t, friendlyError(crypto.ErrEmptyPool), "at least one character class must be enabled")
	assert.EqualError(t, friendlyError(crypto.ErrInvalidWordCount), "word count must be a positive number")

	other := assert.AnError
	assert.Equal(t, other, friendlyError(other))
}

func TestRunMenuExit(t *testing.T) {
	app, out := newTestApp("6\n")
	require.NoError(t, app.runMenu())
	assert.Contains(t, out.String(), "Bye.")
}

func TestRunMenuInvalidChoice(t *testing.T) {
	app, out := newTestApp("9\n6\n")
	require.NoError(t, app.runMenu())
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestRunMenuEmptyHistory(t *testing.T) {
	app, out := newTestApp("4\n6\n")
	require.NoError(t, app.runMenu())
	assert.Contains(t, out.String(), "No passwords generated yet.")
}

func TestRunMenuGeneratePassword(t *testing.T) {
	// length 20, defaults for the class questions, exclude ambiguous.
	app, out := newTestApp("1\n20\n\n\n\ny\n6\n")
	require.NoError(t, app.runMenu())

	entries := app.generator.History().Entries()
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Value, 20)
	assert.NotContains(t, out.String(), "Invalid choice")

	for _, r := range entries[0].Value {
		assert.NotContains(t, "il1Lo0O", string(r))
	}
}

func TestRunMenuGeneratePassphrase(t *testing.T) {
	app, _ := newTestApp("2\n3\n.\n6\n")
	require.NoError(t, app.runMenu())

	entries := app.generator.History().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, strings.Count(entries[0].Value, "."))
}

func TestRunMenuBadLengthReprompts(t *testing.T) {
	app, out := newTestApp("1\nbanana\n6\n")
	require.NoError(t, app.runMenu())
	assert.Contains(t, out.String(), "Please enter a valid positive number.")
	assert.Empty(t, app.generator.History().Entries())
}

func TestRunMenuEOFExitsCleanly(t *testing.T) {
	app, _ := newTestApp("")
	require.NoError(t, app.runMenu())
}

func TestStrengthBar(t *testing.T) {
	assert.Equal(t, 20, strings.Count(strengthBar(0), "░"))
	full := strengthBar(100)
	assert.Equal(t, 20, strings.Count(full, "█"))
	assert.NotContains(t, full, "░")
}
