package extract

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"

	"github.com/akolanti/DocQA/internal/config"
)

func pdfPages(name string, data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		getLogger().Error("failed to open pdf", "name", name, "error", err)
		return nil, &ExtractionError{Name: name, Reason: "not a parsable pdf"}
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, &ExtractionError{Name: name, Reason: "document has no pages"}
	}

	pages := make([]string, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// Keep going; the page stays empty at its slot.
			getLogger().Warn("failed to extract page", "name", name, "page", i, "error", err)
			continue
		}
		pages[i-1] = content
	}

	if !hasText(pages) {
		return nil, &ExtractionError{Name: name, Reason: "no extractable text"}
	}
	return pages, nil
}

// File formats without page structure (.docx, .txt, .rtf) land on one page.
func textPages(name string, data []byte) ([]string, error) {
	text, err := cat.FromBytes(data)
	if err != nil {
		getLogger().Error("failed to extract document text", "name", name, "error", err)
		return nil, &ExtractionError{Name: name, Reason: "could not read document content"}
	}

	pages := []string{text}
	if !hasText(pages) {
		return nil, &ExtractionError{Name: name, Reason: "no extractable text"}
	}
	return pages, nil
}

// protectExtract guards GetPlainText with a watchdog. Some malformed PDFs
// make the parser spin or panic; the page is abandoned either way.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{"", fmt.Errorf("parser panic: %v", r)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		return "", errors.New("timeout")
	}
}
