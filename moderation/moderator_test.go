package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const maskChar = '*'

func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"golpe", "fraude", "scam"}
	mod, err := NewModerator(dictionary, maskChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word with preserved spacing",
			input:    "isso parece golpe demais",
			expected: "isso parece ***** demais",
			words:    []string{"golpe"},
		},
		{
			name:     "Multiple occurrences",
			input:    "golpe golpe",
			expected: "***** *****",
			words:    []string{"golpe", "golpe"},
		},
		{
			name:     "Uppercase and internal punctuation",
			input:    "cuidado com G.O.L.P.E aqui",
			expected: "cuidado com ********* aqui",
			words:    []string{"golpe"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "isso é scam!",
			expected: "isso é ****!",
			words:    []string{"scam"},
		},
		{
			name:     "Nothing to censor",
			input:    "Saio às 14:30 em ponto",
			expected: "Saio às 14:30 em ponto",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s", tt.name)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_IgnoresNoiseOnlyPatterns(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	dictionary := []string{"...", "", "golpe"}
	mod, err := NewModerator(dictionary, maskChar, log)
	req.NoError(err)

	content, words := mod.Censor("sem golpe aqui ...")
	req.Equal("sem ***** aqui ...", content)
	req.Equal([]string{"golpe"}, words)
}

func TestLoadWordlist(t *testing.T) {
	req := require.New(t)
	list, err := LoadWordlist()
	req.NoError(err)
	req.Contains(list.Languages, "pt")
	req.Contains(list.Languages, "en")
	req.Contains(list.Words, "golpe")
	req.Contains(list.Words, "scam")
}

func TestLanguage(t *testing.T) {
	req := require.New(t)
	req.Equal("", Language(""))
	req.NotEmpty(Language("this is clearly an english sentence about rides"))
}
