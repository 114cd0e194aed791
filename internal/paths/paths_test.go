package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaultDataDir_UsesHome(t *testing.T) {
	t.Setenv(DataDirEnv, "")
	t.Setenv("HOME", "/home/someone")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir: %v", err)
	}

	want := filepath.Join("/home/someone", ".local", "share", "taskdeck")
	if dir != want {
		t.Errorf("expected %q, got %q", want, dir)
	}
}

func TestDefaultDataDir_EnvOverride(t *testing.T) {
	t.Setenv(DataDirEnv, "/tmp/custom-data")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir: %v", err)
	}

	if dir != "/tmp/custom-data" {
		t.Errorf("expected override dir, got %q", dir)
	}
}
