package lint

import (
	"sort"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// registeredCallback pairs a callback with its owning rule for ordered
// dispatch and failure attribution
type registeredCallback struct {
	rule *Rule
	fn   Callback
}

// FileContext owns all mutable state of one file's analysis: the raw
// text, the live callback table, and the accumulated diagnostics. It is
// created when a file's analysis starts, is never shared across files
// or goroutines, and is discarded once its diagnostics are extracted.
type FileContext struct {
	path     string
	fileType FileType
	source   []byte

	callbacks   map[parser.NodeKind][]registeredCallback
	diagnostics []domain.Diagnostic

	// lineStarts holds the byte offset of each line start, built once
	// on first anchor translation
	lineStarts []int
}

// NewFileContext creates the per-file analysis state
func NewFileContext(path string, fileType FileType, source []byte) *FileContext {
	return &FileContext{
		path:      path,
		fileType:  fileType,
		source:    source,
		callbacks: make(map[parser.NodeKind][]registeredCallback),
	}
}

// Path returns the analyzed file path
func (fc *FileContext) Path() string {
	return fc.path
}

// FileType returns the classified file type
func (fc *FileContext) FileType() FileType {
	return fc.fileType
}

// Source returns the raw file text
func (fc *FileContext) Source() []byte {
	return fc.source
}

// Diagnostics returns the accumulated diagnostics in report order
func (fc *FileContext) Diagnostics() []domain.Diagnostic {
	return fc.diagnostics
}

// append adds a diagnostic to the ordered list
func (fc *FileContext) append(d domain.Diagnostic) {
	fc.diagnostics = append(fc.diagnostics, d)
}

// subscribe commits a callback for a node kind. Multiple rules
// subscribing to the same kind is expected; invocation follows commit
// order.
func (fc *FileContext) subscribe(kind parser.NodeKind, rule *Rule, fn Callback) {
	fc.callbacks[kind] = append(fc.callbacks[kind], registeredCallback{rule: rule, fn: fn})
}

// position translates a byte offset to 1-based line and 0-based column
func (fc *FileContext) position(offset int) (line, column int) {
	if fc.lineStarts == nil {
		fc.lineStarts = []int{0}
		for i, b := range fc.source {
			if b == '\n' {
				fc.lineStarts = append(fc.lineStarts, i+1)
			}
		}
	}
	idx := sort.Search(len(fc.lineStarts), func(i int) bool {
		return fc.lineStarts[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - fc.lineStarts[idx]
}
