package oscommand

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
	"github.com/AntonioJCosta/cmdalias/internal/logger"
)

// ProcessExecutor implements the ProcessExecutor interface by replacing the
// current process image, the way execvp(3) does.
type ProcessExecutor struct {
	lookPath func(file string) (string, error)
	exec     func(argv0 string, argv []string, envv []string) error
	environ  func() []string
}

// NewProcessExecutor creates a new ProcessExecutor.
func NewProcessExecutor() ports.ProcessExecutor {
	return &ProcessExecutor{
		lookPath: exec.LookPath,
		exec:     unix.Exec,
		environ:  os.Environ,
	}
}

// ReplaceProcess searches PATH for argv[0] and executes it with argv and the
// current environment. It only returns on failure, with an *expansion.ExecError.
func (e *ProcessExecutor) ReplaceProcess(argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return &expansion.ExecError{Err: expansion.ErrNoCommand}
	}

	program := argv[0]
	path, err := e.lookPath(program)
	if err != nil {
		return &expansion.ExecError{Program: program, Err: err}
	}

	logger.Debug("replacing process", "path", path, "argv", argv)
	if err := e.exec(path, argv, e.environ()); err != nil {
		return &expansion.ExecError{Program: program, Err: err}
	}
	return nil
}
