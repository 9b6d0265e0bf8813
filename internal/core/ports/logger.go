package ports

// Logger defines the interface for diagnostic logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
}

// LogConfigurer adjusts a Logger once the build configuration is known.
type LogConfigurer interface {
	// Configure sets the minimum level and an optional log file.
	Configure(level, file string) error
}
