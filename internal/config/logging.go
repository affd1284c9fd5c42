package config

// LogFormat represents the logging output format
type LogFormat string

// LogLevel represents the logging verbosity level
type LogLevel string

// Constants for LogFormat
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Constants for LogLevel
const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// String returns the string representation of LogFormat
func (f LogFormat) String() string {
	return string(f)
}

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the LogFormat is valid
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatText, LogFormatJSON:
		return true
	default:
		return false
	}
}

// IsValid checks if the LogLevel is valid. "warning" is accepted as an alias of "warn".
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, "warning", LogLevelError:
		return true
	default:
		return false
	}
}
