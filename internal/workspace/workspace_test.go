package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoot_EnvOverride(t *testing.T) {
	t.Setenv("DECKSMITH_HOME", "/custom/workspace")

	if got := Root(); got != "/custom/workspace" {
		t.Errorf("Root() = %q, want /custom/workspace", got)
	}
}

func TestRoot_MarkerWalk(t *testing.T) {
	t.Setenv("DECKSMITH_HOME", "")
	os.Unsetenv("DECKSMITH_HOME")

	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, ConfigFileName), []byte("author: Test\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(base, "user_projects", "demo")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	t.Chdir(nested)

	got := Root()
	// Resolve symlinks for platforms where TempDir is a symlink (darwin).
	wantResolved, _ := filepath.EvalSymlinks(base)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("Root() = %q, want %q", got, base)
	}
}

func TestOpen_MissingConfigUsesDefaults(t *testing.T) {
	ws, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if ws.Config.DefaultTheme != DefaultTheme {
		t.Errorf("DefaultTheme = %q, want %q", ws.Config.DefaultTheme, DefaultTheme)
	}
	if ws.Config.Viewer.Port != DefaultViewerPort {
		t.Errorf("Viewer.Port = %d, want %d", ws.Config.Viewer.Port, DefaultViewerPort)
	}
}

func TestOpen_ReadsConfig(t *testing.T) {
	base := t.TempDir()
	content := "author: Jane Doe\ndefault_theme: midnight\nviewer:\n  port: 9000\n"
	if err := os.WriteFile(filepath.Join(base, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ws, err := Open(base)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if ws.Config.Author != "Jane Doe" {
		t.Errorf("Author = %q", ws.Config.Author)
	}
	if ws.Config.DefaultTheme != "midnight" {
		t.Errorf("DefaultTheme = %q", ws.Config.DefaultTheme)
	}
	if ws.Config.Viewer.Port != 9000 {
		t.Errorf("Viewer.Port = %d", ws.Config.Viewer.Port)
	}
	// Unset fields still get defaults.
	if ws.Config.PDF.Command != DefaultPDFCommand {
		t.Errorf("PDF.Command = %q", ws.Config.PDF.Command)
	}
}

func TestOpen_EmptyBaseFails(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	in := Config{Author: "Team", DefaultTheme: "barney"}

	if err := WriteConfig(path, in); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out.Author != "Team" || out.DefaultTheme != "barney" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestLayoutPaths(t *testing.T) {
	ws := &Workspace{Base: "/ws"}

	if got := ws.ProjectsDir(); got != filepath.Join("/ws", "user_projects") {
		t.Errorf("ProjectsDir = %q", got)
	}
	if got := ws.ProjectDir("demo"); got != filepath.Join("/ws", "user_projects", "demo") {
		t.Errorf("ProjectDir = %q", got)
	}
	if got := ws.SystemResourcesDir(); got != filepath.Join("/ws", "resources") {
		t.Errorf("SystemResourcesDir = %q", got)
	}
}
