package service

import (
	"path/filepath"
	"testing"
)

func TestFileCollector_CollectsSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")
	writeFile(t, dir, "b.ts", "")
	writeFile(t, dir, "readme.md", "")
	writeFile(t, dir, "nested/c.jsx", "")

	c := NewFileCollector()
	files, err := c.CollectSourceFiles([]string{dir}, true, nil, nil, false)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 source files, got %d: %v", len(files), files)
	}
}

func TestFileCollector_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")
	writeFile(t, dir, "nested/b.js", "")

	c := NewFileCollector()
	files, err := c.CollectSourceFiles([]string{dir}, false, nil, nil, false)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Non-recursive collection should stop at the top level, got %v", files)
	}
}

func TestFileCollector_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.js", "")
	writeFile(t, dir, "app.min.js", "")
	writeFile(t, dir, "node_modules/dep/index.js", "")

	c := NewFileCollector()
	files, err := c.CollectSourceFiles([]string{dir}, true, nil, []string{"node_modules", "*.min.js"}, false)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "app.js" {
		t.Errorf("Excluded paths should be skipped, got %v", files)
	}
}

func TestFileCollector_RespectsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "generated/\nignored.js\n")
	writeFile(t, dir, "kept.js", "")
	writeFile(t, dir, "ignored.js", "")
	writeFile(t, dir, "generated/out.js", "")

	c := NewFileCollector()
	files, err := c.CollectSourceFiles([]string{dir}, true, nil, nil, true)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "kept.js" {
		t.Errorf("Gitignored paths should be skipped, got %v", files)
	}

	// With respectGitignore off, all js files come back
	files, err = c.CollectSourceFiles([]string{dir}, true, nil, nil, false)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 files without gitignore, got %v", files)
	}
}

func TestFileCollector_SingleFilePath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "only.js", "")

	c := NewFileCollector()
	files, err := c.CollectSourceFiles([]string{path}, true, nil, nil, true)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("Explicit file path should be returned as-is, got %v", files)
	}
}

func TestFileCollector_IsValidSourceFile(t *testing.T) {
	c := NewFileCollector()
	valid := []string{"a.js", "b.ts", "c.jsx", "d.tsx", "e.mjs", "f.cjs", "g.mts", "h.cts"}
	for _, name := range valid {
		if !c.IsValidSourceFile(name) {
			t.Errorf("%s should be a valid source file", name)
		}
	}
	for _, name := range []string{"a.go", "b.md", "c.json", "noext"} {
		if c.IsValidSourceFile(name) {
			t.Errorf("%s should not be a valid source file", name)
		}
	}
}
