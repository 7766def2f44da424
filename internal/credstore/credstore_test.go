// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package credstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SaveLoad(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if _, ok := store.Load(); ok {
		t.Fatal("Load on empty store reported a token")
	}

	if err := store.Save("tok-alpha"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	token, ok := store.Load()
	if !ok || token != "tok-alpha" {
		t.Errorf("Load = (%q, %v), want (%q, true)", token, ok, "tok-alpha")
	}

	// Overwrite replaces the prior value.
	if err := store.Save("tok-beta"); err != nil {
		t.Fatalf("Save overwrite failed: %v", err)
	}
	token, _ = store.Load()
	if token != "tok-beta" {
		t.Errorf("Load after overwrite = %q, want %q", token, "tok-beta")
	}
}

func TestFileStore_Permissions(t *testing.T) {
	store := NewFileStore(t.TempDir())
	if err := store.Save("secret"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("credential file perm = %v, want 0600", info.Mode().Perm())
	}
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())

	// Clearing an empty store is a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on empty store failed: %v", err)
	}

	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Error("token still present after Clear")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	NewFileStore(dir).Save("persisted")

	// A fresh store over the same directory sees the value, like a new
	// process would after restart.
	token, ok := NewFileStore(dir).Load()
	if !ok || token != "persisted" {
		t.Errorf("Load after reopen = (%q, %v), want (%q, true)", token, ok, "persisted")
	}
}

func TestFileStore_IgnoresWhitespace(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, TokenFileName), []byte("  tok\n"), 0600); err != nil {
		t.Fatal(err)
	}

	token, ok := NewFileStore(dir).Load()
	if !ok || token != "tok" {
		t.Errorf("Load = (%q, %v), want (%q, true)", token, ok, "tok")
	}

	// An empty file counts as absent.
	if err := os.WriteFile(filepath.Join(dir, TokenFileName), []byte("\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, ok := NewFileStore(dir).Load(); ok {
		t.Error("whitespace-only file reported as a token")
	}
}
