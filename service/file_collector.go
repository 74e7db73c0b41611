package service

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// FileCollectorImpl implements the SourceFileReader interface
type FileCollectorImpl struct{}

// NewFileCollector creates a new source file collector
func NewFileCollector() *FileCollectorImpl {
	return &FileCollectorImpl{}
}

// CollectSourceFiles collects JavaScript/TypeScript files from paths
func (c *FileCollectorImpl) CollectSourceFiles(paths []string, recursive bool, includePatterns, excludePatterns []string, respectGitignore bool) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if c.IsValidSourceFile(path) && !c.isExcluded(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		var ignorer *gitignore.GitIgnore
		if respectGitignore {
			ignorer = loadGitignore(path)
		}

		if recursive {
			err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				rel, relErr := filepath.Rel(path, filePath)
				if relErr != nil {
					rel = filePath
				}

				// Skip excluded directories early
				if info.IsDir() {
					dirName := filepath.Base(filePath)
					if dirName == ".git" {
						return filepath.SkipDir
					}
					for _, pattern := range excludePatterns {
						if pattern == dirName {
							return filepath.SkipDir
						}
						if matched, _ := filepath.Match(pattern, dirName); matched {
							return filepath.SkipDir
						}
					}
					if ignorer != nil && rel != "." && ignorer.MatchesPath(rel) {
						return filepath.SkipDir
					}
					return nil
				}

				if !c.IsValidSourceFile(filePath) || c.isExcluded(filePath, excludePatterns) {
					return nil
				}
				if ignorer != nil && ignorer.MatchesPath(rel) {
					return nil
				}

				files = append(files, filePath)
				return nil
			})
		} else {
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return nil, readErr
			}

			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				filePath := filepath.Join(path, entry.Name())
				if !c.IsValidSourceFile(filePath) || c.isExcluded(filePath, excludePatterns) {
					continue
				}
				if ignorer != nil && ignorer.MatchesPath(entry.Name()) {
					continue
				}
				files = append(files, filePath)
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// ReadFile reads file content
func (c *FileCollectorImpl) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// IsValidSourceFile checks if a file is JavaScript/TypeScript based on extension
func (c *FileCollectorImpl) IsValidSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".js" || ext == ".ts" || ext == ".jsx" || ext == ".tsx" ||
		ext == ".mjs" || ext == ".cjs" || ext == ".mts" || ext == ".cts"
}

// FileExists checks if a file exists and is not a directory
func (c *FileCollectorImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// isExcluded checks if a path matches any exclude pattern
func (c *FileCollectorImpl) isExcluded(path string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// loadGitignore parses the .gitignore under root, if any
func loadGitignore(root string) *gitignore.GitIgnore {
	ignorer, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return ignorer
}
