package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingConfigFile is returned when a configuration file cannot be read.
	ErrReadingConfigFile = errors.New("failed to read config file")

	// ErrParsingConfigFile is returned when a configuration file cannot be decoded.
	ErrParsingConfigFile = errors.New("failed to parse config file")
)
