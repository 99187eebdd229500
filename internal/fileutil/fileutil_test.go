package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"audiomod/internal/fileutil"
	"audiomod/internal/testsupport"
)

func TestMoveDirRelocatesContents(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "amb_fore")
	testsupport.WriteFile(t, filepath.Join(src, "nested", "wind.snu"), 16)

	dst := filepath.Join(root, "Global", "amb_fore")
	if err := fileutil.MoveDir(src, dst); err != nil {
		t.Fatalf("MoveDir failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "nested", "wind.snu")); err != nil {
		t.Fatalf("expected moved file: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("expected source gone, got %v", err)
	}
}

func TestMoveDirRefusesExistingDestination(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "voice")
	testsupport.WriteFile(t, filepath.Join(src, "a.snu"), 1)
	dst := filepath.Join(root, "EN", "voice")
	testsupport.WriteFile(t, filepath.Join(dst, "b.snu"), 1)

	err := fileutil.MoveDir(src, dst)
	if !os.IsExist(err) {
		t.Fatalf("expected os.ErrExist, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(src, "a.snu")); statErr != nil {
		t.Fatalf("source must be untouched on conflict: %v", statErr)
	}
}

func TestCopyFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "in.snu")
	testsupport.WriteFile(t, src, 64)

	dst := filepath.Join(root, "out.snu")
	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat copy: %v", err)
	}
	if info.Size() != 64 {
		t.Fatalf("unexpected size: %d", info.Size())
	}
}
