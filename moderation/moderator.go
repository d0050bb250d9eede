// Package moderation masks censored words in message bodies before they
// reach the log. Matching is accent/punctuation tolerant; original spacing
// is preserved in the masked output.
package moderation

import (
	"log/slog"
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher *goahocorasick.Machine
	mask    rune
	log     *slog.Logger
}

// textMapping links the normalized search text back to original rune positions
// so masking can cover exactly the characters that matched.
type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton from a normalized copy of
// the word list. Empty or noise-only entries are dropped before the build.
func NewModerator(censoredWords []string, mask rune, log *slog.Logger) (Moderator, error) {
	var patterns [][]rune
	for _, word := range censoredWords {
		normalized := normalizeRunes([]rune(word))
		if len(normalized) == 0 {
			continue
		}
		patterns = append(patterns, normalized)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, mask: mask, log: log}, nil
}

// Censor replaces every censored span with the mask rune and returns the
// matched words. The input comes back untouched when nothing matches.
func (m *Moderator) Censor(original string) (string, []string) {
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		words = append(words, string(span.Word))

		origStart := mapping.origIdx[start]
		origEnd := mapping.origIdx[end-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.mask
		}
	}

	if len(words) > 0 {
		m.log.Debug("Censored message content",
			"words", len(words), "lang", Language(original))
	}
	return string(origRunes), words
}

// Language returns the ISO 639-1 code whatlanggo detects for a body,
// or an empty string when detection has nothing to work with.
func Language(content string) string {
	if content == "" {
		return ""
	}
	info := whatlanggo.Detect(content)
	return info.Lang.Iso6391()
}

func normalize(input string) textMapping {
	origRunes := []rune(input)
	mapping := textMapping{
		normalized: make([]rune, 0, len(origRunes)),
		origIdx:    make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		if isNoise(r) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(r))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
