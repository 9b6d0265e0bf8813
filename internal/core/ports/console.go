package ports

// Console writes user-facing build output.
//
//go:generate go run go.uber.org/mock/mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// Topic announces a build phase.
	Topic(msg string)
	// Puts writes an indented line under the current topic.
	Puts(msg string)
	// Warn writes a highlighted warning block.
	Warn(msg string)
	// Error writes a highlighted error block followed by raw output.
	Error(msg, output string)
}
