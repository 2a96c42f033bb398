package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestUserHomeReturnsValidPath verifies UserHome returns a non-empty,
// existing directory.
func TestUserHomeReturnsValidPath(t *testing.T) {
	home := UserHome()
	if home == "" {
		t.Fatal("UserHome returned empty string")
	}
	info, err := os.Stat(home)
	if err != nil {
		t.Fatalf("UserHome returned non-existent path: %s, error: %v", home, err)
	}
	if !info.IsDir() {
		t.Fatalf("UserHome returned non-directory: %s", home)
	}
}

func TestAppDataDirNotEmpty(t *testing.T) {
	if AppDataDir() == "" {
		t.Fatal("AppDataDir returned empty string")
	}
}

func TestAppDataDirHonorsXDGDataHome(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_DATA_HOME only applies outside windows/darwin")
	}
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	if got := AppDataDir(); got != dir {
		t.Errorf("AppDataDir() = %q, want %q", got, dir)
	}
}

func TestCheckFileExistsWithValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !CheckFileExists(path) {
		t.Errorf("CheckFileExists(%s) = false, want true", path)
	}
}

func TestCheckFileExistsWithMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")
	if CheckFileExists(path) {
		t.Errorf("CheckFileExists(%s) = true, want false", path)
	}
}

func TestCheckFileExistsWithDirectory(t *testing.T) {
	dir := t.TempDir()
	if !CheckFileExists(dir) {
		t.Errorf("CheckFileExists(%s) = false, want true for directories", dir)
	}
}
