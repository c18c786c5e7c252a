/*
Package expansion defines the result of resolving a command invocation and
the errors that can stop it from running.
*/
package expansion

import (
	"errors"
	"fmt"
)

// Kind tells the caller what to do with an Outcome.
type Kind int

const (
	// Direct means the tokens are executed as typed.
	Direct Kind = iota
	// Expanded means Argv holds the rewritten command line.
	Expanded
	// NotFound means the base command is not configured.
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Expanded:
		return "expanded"
	case NotFound:
		return "not-found"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the result of resolving an invocation.
type Outcome struct {
	Kind Kind
	// Command is the base command as typed by the user.
	Command string
	// Argv is the argument vector to execute. Empty for NotFound.
	Argv []string
}

// ErrNoCommand indicates that no command was supplied to run.
var ErrNoCommand = errors.New("no command given")

// ConfigLoadError reports an unreadable, malformed or invalid configuration.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("loading configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error { return e.Err }

// NotFoundError reports a base command absent from the catalog.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command '%s' not found in configuration", e.Name)
}

// ExecError reports a program that could not be located or launched.
type ExecError struct {
	Program string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing '%s': %v", e.Program, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }
