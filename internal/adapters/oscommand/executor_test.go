package oscommand

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
)

func TestNewProcessExecutor(t *testing.T) {
	executor := NewProcessExecutor()
	if executor == nil {
		t.Fatal("NewProcessExecutor() returned nil")
	}
	if _, ok := executor.(*ProcessExecutor); !ok {
		t.Errorf("NewProcessExecutor() did not return a *ProcessExecutor, got %T", executor)
	}
}

func TestProcessExecutor_ReplaceProcess(t *testing.T) {
	execFailure := errors.New("exec format error")

	tests := []struct {
		name        string
		argv        []string
		lookPathErr error
		execErr     error
		wantErr     error
		wantProgram string
		wantExec    bool
	}{
		{
			name:     "program found and executed",
			argv:     []string{"git", "checkout", "-b", "feature"},
			wantExec: true,
		},
		{
			name:        "program not on PATH",
			argv:        []string{"nosuchprogram", "x"},
			lookPathErr: exec.ErrNotFound,
			wantErr:     exec.ErrNotFound,
			wantProgram: "nosuchprogram",
		},
		{
			name:        "exec fails",
			argv:        []string{"git", "status"},
			execErr:     execFailure,
			wantErr:     execFailure,
			wantProgram: "git",
			wantExec:    true,
		},
		{
			name:    "empty argv",
			argv:    nil,
			wantErr: expansion.ErrNoCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var gotArgv, gotEnv []string
			executed := false

			e := &ProcessExecutor{
				lookPath: func(file string) (string, error) {
					if tt.lookPathErr != nil {
						return "", tt.lookPathErr
					}
					return "/usr/bin/" + file, nil
				},
				exec: func(argv0 string, argv []string, envv []string) error {
					executed = true
					gotPath, gotArgv, gotEnv = argv0, argv, envv
					return tt.execErr
				},
				environ: func() []string { return []string{"HOME=/home/ada"} },
			}

			err := e.ReplaceProcess(tt.argv)

			if executed != tt.wantExec {
				t.Errorf("ReplaceProcess() executed = %v, want %v", executed, tt.wantExec)
			}
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ReplaceProcess() unexpected error = %v", err)
				}
				if gotPath != "/usr/bin/"+tt.argv[0] {
					t.Errorf("ReplaceProcess() path = %q, want %q", gotPath, "/usr/bin/"+tt.argv[0])
				}
				if !reflect.DeepEqual(gotArgv, tt.argv) {
					t.Errorf("ReplaceProcess() argv = %v, want %v", gotArgv, tt.argv)
				}
				if !reflect.DeepEqual(gotEnv, []string{"HOME=/home/ada"}) {
					t.Errorf("ReplaceProcess() env = %v, want inherited environment", gotEnv)
				}
				return
			}

			var execErr *expansion.ExecError
			if !errors.As(err, &execErr) {
				t.Fatalf("ReplaceProcess() error = %v (%T), want *expansion.ExecError", err, err)
			}
			if execErr.Program != tt.wantProgram {
				t.Errorf("ExecError.Program = %q, want %q", execErr.Program, tt.wantProgram)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReplaceProcess() error = %v, want it to wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestProcessExecutor_ReplaceProcess_RealLookup(t *testing.T) {
	err := NewProcessExecutor().ReplaceProcess([]string{"cmdalias-test-program-that-does-not-exist"})

	var execErr *expansion.ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("ReplaceProcess() error = %v (%T), want *expansion.ExecError", err, err)
	}
}
