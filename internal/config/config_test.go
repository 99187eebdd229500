package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiomod/internal/config"
	"audiomod/internal/services"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), config.Filename))
	if !errors.Is(err, services.ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	if err := os.WriteFile(path, []byte("[Config\nbroken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := config.Load(path)
	if !errors.Is(err, services.ErrConfigMalformed) {
		t.Fatalf("expected ErrConfigMalformed, got %v", err)
	}
}

func TestCreateDefaultAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := config.Path(root)

	created, err := config.CreateDefault(path, "independent", filepath.Join(root, "project.toml"))
	if err != nil {
		t.Fatalf("CreateDefault failed: %v", err)
	}
	if !created {
		t.Fatal("expected a new file to be created")
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Module.Mode != "independent" {
		t.Fatalf("unexpected mode: %q", cfg.Module.Mode)
	}
	if cfg.Tools.Converter != "vgmstream-cli" {
		t.Fatalf("unexpected converter: %q", cfg.Tools.Converter)
	}
	if cfg.Extensions.SourceExt != ".snu" || cfg.Extensions.TargetExt != ".wav" {
		t.Fatalf("unexpected extensions: %q %q", cfg.Extensions.SourceExt, cfg.Extensions.TargetExt)
	}
	if _, ok := cfg.LanguageBlacklist["IT"]; !ok {
		t.Fatal("expected IT in default blacklist")
	}
	if _, ok := cfg.GlobalDirs["amb_fore"]; !ok {
		t.Fatal("expected amb_fore in default global dirs")
	}
}

func TestCreateDefaultNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	path := config.Path(root)
	sentinel := []byte("[Config]\nmodule_name = \"Audio\"\nmode = \"module\"\nproject_path = \"x\"\n")
	if err := os.WriteFile(path, sentinel, 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	created, err := config.CreateDefault(path, "independent", "")
	if err != nil {
		t.Fatalf("CreateDefault failed: %v", err)
	}
	if created {
		t.Fatal("existing config must be left untouched")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != string(sentinel) {
		t.Fatal("config contents changed")
	}
}

func TestValidateReportsMissingKey(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.Converter = ""
	err := cfg.Validate()
	if !errors.Is(err, services.ErrConfigKeyMissing) {
		t.Fatalf("expected ErrConfigKeyMissing, got %v", err)
	}
	if !strings.Contains(err.Error(), "Tools.converter") {
		t.Fatalf("expected section-qualified key name, got %q", err.Error())
	}
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.Module.Mode = "shared"
	if err := cfg.Validate(); !errors.Is(err, services.ErrConfigMalformed) {
		t.Fatalf("expected ErrConfigMalformed, got %v", err)
	}
}

func TestLoadNormalizesExtensions(t *testing.T) {
	root := t.TempDir()
	path := config.Path(root)
	cfg := config.Default()
	cfg.Extensions.SourceExt = "snu"
	cfg.Extensions.TargetExt = "wav"
	if err := config.Save(&cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Extensions.SourceExt != ".snu" || loaded.Extensions.TargetExt != ".wav" {
		t.Fatalf("extensions not normalized: %q %q", loaded.Extensions.SourceExt, loaded.Extensions.TargetExt)
	}
}

func TestPathResolution(t *testing.T) {
	cfg := config.Default()
	cfg.Directories.SourceDir = "Source/Streams"
	root := string(filepath.Separator) + filepath.Join("mods", "audio")
	want := filepath.Join(root, "Source", "Streams")
	if got := cfg.SourcePath(root); got != want {
		t.Fatalf("SourcePath = %q, want %q", got, want)
	}

	abs := string(filepath.Separator) + filepath.Join("data", "streams")
	cfg.Directories.TargetDir = abs
	if got := cfg.TargetPath(root); got != abs {
		t.Fatalf("TargetPath = %q, want %q", got, abs)
	}
}
