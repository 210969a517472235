// Package extract turns uploaded file bytes into ordered per-page plain
// text. PDF pages keep their position: a page that cannot be parsed
// becomes an empty string at its index, so page numbers stay truthful.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

// ExtractionError marks a payload that could not be turned into text:
// unparsable bytes, zero pages, or pages with no extractable text at all.
type ExtractionError struct {
	Name   string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s", e.Name, e.Reason)
}

var (
	loggerOnce sync.Once
	logger     *logger_i.Logger
)

func getLogger() *logger_i.Logger {
	loggerOnce.Do(func() {
		logger = logger_i.NewLogger("extract")
	})
	return logger
}

// DocTypeFor maps a file name to its document type by extension.
func DocTypeFor(name string) docModel.DocType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return docModel.PDF
	case ".docx":
		return docModel.DOCX
	case ".txt":
		return docModel.TXT
	case ".rtf":
		return docModel.RTF
	default:
		return docModel.ERR
	}
}

// Pages extracts the ordered page texts from one uploaded file. Index 0
// holds page 1. DOCX/TXT/RTF payloads have no page structure and come
// back as a single page.
func Pages(name string, data []byte) ([]string, error) {
	switch DocTypeFor(name) {
	case docModel.PDF:
		return pdfPages(name, data)
	case docModel.DOCX, docModel.TXT, docModel.RTF:
		return textPages(name, data)
	default:
		return nil, &ExtractionError{Name: name, Reason: "unsupported file type"}
	}
}

// SizeLabel renders a byte count the way the document list displays it.
func SizeLabel(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGT"[exp])
}

func hasText(pages []string) bool {
	for _, page := range pages {
		if strings.TrimSpace(page) != "" {
			return true
		}
	}
	return false
}
