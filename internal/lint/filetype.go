package lint

import (
	"path/filepath"
	"strings"
)

// FileType classifies a source file for the prefilter's file-type gate
// and parser grammar selection.
type FileType string

const (
	FileTypeJS  FileType = "js"
	FileTypeJSX FileType = "jsx"
	FileTypeTS  FileType = "ts"
	FileTypeTSX FileType = "tsx"
)

// ClassifyPath derives the file type from the file extension. Unknown
// extensions classify as plain JavaScript.
func ClassifyPath(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsx":
		return FileTypeJSX
	case ".ts", ".mts", ".cts":
		return FileTypeTS
	case ".tsx":
		return FileTypeTSX
	default:
		return FileTypeJS
	}
}
