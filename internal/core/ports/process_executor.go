package ports

// ProcessExecutor replaces the running process with another program.
type ProcessExecutor interface {
	// ReplaceProcess runs argv[0] with argv and the current environment.
	// It does not return on success.
	ReplaceProcess(argv []string) error
}
