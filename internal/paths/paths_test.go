package paths

import (
	"os/user"
	"path/filepath"
	"testing"
)

func TestFriendlyUnder(t *testing.T) {
	tests := []struct {
		name    string
		home    string
		absPath string
		want    string
	}{
		{"home itself", "/home/ada", "/home/ada", "~"},
		{"file under home", "/home/ada", "/home/ada/.cmdalias", "~/.cmdalias"},
		{"nested under home", "/home/ada", "/home/ada/conf/cmdalias.d/git.yaml", "~/conf/cmdalias.d/git.yaml"},
		{"outside home", "/home/ada", "/etc/cmdalias", "/etc/cmdalias"},
		{"sibling sharing prefix", "/home/ada", "/home/adam/.cmdalias", "/home/adam/.cmdalias"},
		{"unknown home", "", "/home/ada/.cmdalias", "/home/ada/.cmdalias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := friendlyUnder(tt.home, tt.absPath); got != tt.want {
				t.Errorf("friendlyUnder(%q, %q) = %q, want %q", tt.home, tt.absPath, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Run("environment override", func(t *testing.T) {
		t.Setenv(EnvConfig, "/tmp/aliases.yaml")
		got, err := DefaultConfig()
		if err != nil {
			t.Fatalf("DefaultConfig() unexpected error = %v", err)
		}
		if got != "/tmp/aliases.yaml" {
			t.Errorf("DefaultConfig() = %q, want %q", got, "/tmp/aliases.yaml")
		}
	})

	t.Run("home directory", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		usr, err := user.Current()
		if err != nil {
			t.Skipf("cannot determine current user: %v", err)
		}
		got, err := DefaultConfig()
		if err != nil {
			t.Fatalf("DefaultConfig() unexpected error = %v", err)
		}
		want := filepath.Join(usr.HomeDir, ".cmdalias")
		if got != want {
			t.Errorf("DefaultConfig() = %q, want %q", got, want)
		}
	})
}
