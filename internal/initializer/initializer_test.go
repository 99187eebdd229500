package initializer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"audiomod/internal/config"
	"audiomod/internal/initializer"
	"audiomod/internal/project"
	"audiomod/internal/services"
)

func TestInitializeStandaloneModule(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "audio")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	init := initializer.New(root, nil)
	result, err := init.Initialize(context.Background())
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if result.Mode != project.ModeIndependent {
		t.Fatalf("expected independent mode, got %q", result.Mode)
	}
	if !result.DescriptorCreated || !result.ConfigCreated {
		t.Fatalf("expected descriptor and config to be created: %+v", result)
	}

	cfg, err := config.Load(result.ConfigPath)
	if err != nil {
		t.Fatalf("Load config: %v", err)
	}
	if cfg.Module.Mode != "independent" {
		t.Fatalf("unexpected recorded mode: %q", cfg.Module.Mode)
	}
	if cfg.Module.ProjectPath != result.DescriptorPath {
		t.Fatalf("recorded descriptor path %q, want %q", cfg.Module.ProjectPath, result.DescriptorPath)
	}
}

func TestInitializeInsideLargerProject(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "audio")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	descriptor := filepath.Join(parent, project.Filename)
	if err := os.WriteFile(descriptor, []byte("[Project]\nname = \"game\"\n"), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}

	init := initializer.New(root, nil)
	result, err := init.Initialize(context.Background())
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if result.Mode != project.ModeModule {
		t.Fatalf("expected module mode, got %q", result.Mode)
	}
	if result.DescriptorCreated {
		t.Fatal("descriptor should not be created when one exists")
	}
	want, _ := filepath.Abs(descriptor)
	if result.DescriptorPath != want {
		t.Fatalf("descriptor path %q, want %q", result.DescriptorPath, want)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "audio")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	init := initializer.New(root, nil)
	if _, err := init.Initialize(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	before, err := os.ReadFile(config.Path(root))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	second, err := init.Initialize(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.ConfigCreated {
		t.Fatal("second run must not recreate the config")
	}

	after, err := os.ReadFile(config.Path(root))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("second run modified the config")
	}
}

func TestInitializeAmbiguousDescriptor(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "audio")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, dir := range []string{parent, root} {
		if err := os.WriteFile(filepath.Join(dir, project.Filename), []byte(""), 0o644); err != nil {
			t.Fatalf("write descriptor: %v", err)
		}
	}

	init := initializer.New(root, nil)
	_, err := init.Initialize(context.Background())
	if !errors.Is(err, services.ErrDescriptorAmbiguous) {
		t.Fatalf("expected ErrDescriptorAmbiguous, got %v", err)
	}
}
