package config

import "errors"

var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrParseToml              = errors.New("failed to parse TOML config")
	ErrInvalidPort            = errors.New("invalid port")
	ErrInvalidHost            = errors.New("invalid host")
	ErrInvalidLogLevel        = errors.New("invalid log level")
	ErrInvalidLogFormat       = errors.New("invalid log format")
	ErrInvalidTimeout         = errors.New("invalid timeout")
	ErrInvalidHeader          = errors.New("invalid response header")
	ErrInvalidSkipPath        = errors.New("invalid log skip path")
)
