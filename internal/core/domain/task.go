package domain

// Command is a host process invocation.
// Dir is always explicit; commands never inherit a changed working directory.
type Command struct {
	Name        string
	Args        []string
	Dir         string
	Environment map[string]string
}

// CommandResult holds the captured output of a finished command.
type CommandResult struct {
	Output   string
	ExitCode int
}
