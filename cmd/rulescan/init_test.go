package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCmd_CreatesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rulescan.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Config file should exist: %v", err)
	}
	for _, want := range []string{"rules:", "output:", "analysis:", "performance:"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Full template should contain %q", want)
		}
	}
}

func TestInitCmd_Minimal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rulescan.yaml")

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", path, "--minimal"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Config file should exist: %v", err)
	}
	if strings.Contains(string(content), "performance:") {
		t.Error("Minimal template should omit the performance section")
	}
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rulescan.yaml")
	if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	cmd := initCmd()
	cmd.SetArgs([]string{"--config", path})
	if err := cmd.Execute(); err == nil {
		t.Error("init should refuse to overwrite without --force")
	}

	cmd = initCmd()
	cmd.SetArgs([]string{"--config", path, "--force"})
	if err := cmd.Execute(); err != nil {
		t.Errorf("init --force should overwrite: %v", err)
	}
}

func TestInitCmd_MissingDirectory(t *testing.T) {
	cmd := initCmd()
	cmd.SetArgs([]string{"--config", "/nonexistent-dir-xyz/rulescan.yaml"})
	if err := cmd.Execute(); err == nil {
		t.Error("init should reject a missing parent directory")
	}
}
