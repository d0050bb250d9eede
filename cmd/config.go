package main

import "time"

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	DebugPort         int           `env:"DEBUG_PORT,default=8090"`
	Colours           bool          `env:"COLOURS,default=true"`
	Region            string        `env:"REGION,default=brasilia"`
}
