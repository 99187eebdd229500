package deps_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"audiomod/internal/deps"
	"audiomod/internal/services"
)

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write executable: %v", err)
	}
}

func TestResolveConverterExplicitPath(t *testing.T) {
	root := t.TempDir()
	tool := filepath.Join(root, "tools", "vgmstream-cli")
	writeExecutable(t, tool)

	resolved, err := deps.ResolveConverter("tools/vgmstream-cli", root)
	if err != nil {
		t.Fatalf("ResolveConverter returned error: %v", err)
	}
	if resolved != tool {
		t.Fatalf("unexpected path: got %q want %q", resolved, tool)
	}
}

func TestResolveConverterExplicitPathMissing(t *testing.T) {
	_, err := deps.ResolveConverter("tools/absent", t.TempDir())
	if !errors.Is(err, services.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestResolveConverterFromSearchPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH semantics differ on windows")
	}
	binDir := t.TempDir()
	tool := filepath.Join(binDir, "fakeconv")
	writeExecutable(t, tool)
	t.Setenv("PATH", binDir)

	resolved, err := deps.ResolveConverter("fakeconv", t.TempDir())
	if err != nil {
		t.Fatalf("ResolveConverter returned error: %v", err)
	}
	if resolved != tool {
		t.Fatalf("unexpected path: got %q want %q", resolved, tool)
	}
}

func TestResolveConverterColocated(t *testing.T) {
	root := t.TempDir()
	tool := filepath.Join(root, "vgmstream-cli")
	writeExecutable(t, tool)
	t.Setenv("PATH", t.TempDir())

	resolved, err := deps.ResolveConverter("vgmstream-cli", root)
	if err != nil {
		t.Fatalf("ResolveConverter returned error: %v", err)
	}
	if resolved != tool {
		t.Fatalf("unexpected path: got %q want %q", resolved, tool)
	}
}

func TestResolveConverterNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := deps.ResolveConverter("no-such-tool", t.TempDir())
	if !errors.Is(err, services.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestCheckBinaries(t *testing.T) {
	root := t.TempDir()
	tool := filepath.Join(root, "vgmstream-cli")
	writeExecutable(t, tool)
	t.Setenv("PATH", t.TempDir())

	statuses := deps.CheckBinaries(root, []deps.Requirement{
		{Name: "vgmstream", Command: "vgmstream-cli", Description: "audio stream converter"},
		{Name: "missing", Command: "no-such-tool"},
		{Name: "unset", Command: ""},
	})
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available || statuses[0].Detail != tool {
		t.Fatalf("unexpected status for vgmstream: %+v", statuses[0])
	}
	if statuses[1].Available {
		t.Fatalf("missing tool reported available: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for unset command: %+v", statuses[2])
	}
}
