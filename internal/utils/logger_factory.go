package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelTraceStringConstant          = "trace"
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logLevelOffStringConstant            = "off"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelTrace LogLevel = LogLevel(logLevelTraceStringConstant)
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
	LogLevelOff   LogLevel = LogLevel(logLevelOffStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// zap has no trace level, so trace shares debug verbosity.
var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelTrace: zapcore.DebugLevel,
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
	LogLevelOff:   zapcore.FatalLevel + 1,
}

// SupportedLogLevels lists accepted log levels from most to least verbose.
func SupportedLogLevels() []LogLevel {
	return []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelOff}
}

// ParseLogLevel normalizes a user supplied level name, ignoring case and surrounding whitespace.
func ParseLogLevel(rawLogLevel string) (LogLevel, error) {
	normalizedLogLevel := LogLevel(strings.ToLower(strings.TrimSpace(rawLogLevel)))
	if _, levelExists := logLevelMapping[normalizedLogLevel]; !levelExists {
		return "", fmt.Errorf(unsupportedLogLevelTemplateConstant, rawLogLevel)
	}
	return normalizedLogLevel, nil
}

// ParseLogFormat normalizes a user supplied format name.
func ParseLogFormat(rawLogFormat string) (LogFormat, error) {
	normalizedLogFormat := LogFormat(strings.ToLower(strings.TrimSpace(rawLogFormat)))
	switch normalizedLogFormat {
	case LogFormatStructured, LogFormatConsole:
		return normalizedLogFormat, nil
	default:
		return "", fmt.Errorf(unsupportedLogFormatTemplateConstant, rawLogFormat)
	}
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct {
	writer io.Writer
}

// NewLoggerFactory constructs a logger factory writing to standard error.
func NewLoggerFactory() *LoggerFactory {
	return NewLoggerFactoryWithWriter(os.Stderr)
}

// NewLoggerFactoryWithWriter constructs a logger factory writing to the provided writer.
func NewLoggerFactoryWithWriter(writer io.Writer) *LoggerFactory {
	if writer == nil {
		writer = os.Stderr
	}
	return &LoggerFactory{writer: writer}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	parsedLogLevel, levelError := ParseLogLevel(string(requestedLogLevel))
	if levelError != nil {
		return nil, levelError
	}

	parsedLogFormat, formatError := ParseLogFormat(string(requestedLogFormat))
	if formatError != nil {
		return nil, formatError
	}

	var encoder zapcore.Encoder
	switch parsedLogFormat {
	case LogFormatStructured:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		encoderConfiguration := zap.NewProductionEncoderConfig()
		encoderConfiguration.TimeKey = ""
		encoderConfiguration.CallerKey = ""
		encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	}

	sink := zapcore.AddSync(NewFlushingWriter(factory.writer))
	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(logLevelMapping[parsedLogLevel]))

	return zap.New(core, zap.ErrorOutput(sink)), nil
}
