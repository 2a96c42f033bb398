package props

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveStorageDirEmptyHint(t *testing.T) {
	if got := resolveStorageDir(""); got != "cfg" {
		t.Errorf("resolveStorageDir(\"\") = %q, want cfg", got)
	}
}

func TestResolveStorageDirWithHint(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("storage root override relies on XDG_DATA_HOME")
	}
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	want := filepath.Join(dataHome, "myapp", "cfg")
	if got := resolveStorageDir("myapp"); got != want {
		t.Errorf("resolveStorageDir(\"myapp\") = %q, want %q", got, want)
	}
}

func TestFileNameDerivation(t *testing.T) {
	if got := defaultFileName("Widget"); got != "Widget_def.properties" {
		t.Errorf("defaultFileName = %q, want Widget_def.properties", got)
	}
	if got := mainFileName("Widget"); got != "Widget_main.properties" {
		t.Errorf("mainFileName = %q, want Widget_main.properties", got)
	}
}
