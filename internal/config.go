package internal

import (
	"fmt"
)

// Config covers the knobs shared by the main CLI and the read-only viewer.
type Config struct {
	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string `env:"LOG_LEVEL,default=info"`
	DebugPort       int    `env:"DEBUG_PORT,default=8090"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
}

// CharacterRune validates that the replacement setting is a single character.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
