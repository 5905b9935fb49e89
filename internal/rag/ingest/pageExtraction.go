package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

type docType string

const (
	docPDF     docType = "pdf"
	docTextual docType = "textual"
	docUnknown docType = "unknown"
)

func docTypeOf(path string) docType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return docPDF
	case ".docx", ".odt", ".rtf", ".txt", ".md":
		return docTextual
	default:
		return docUnknown
	}
}

func extractText(path string) ([]rawPage, error) {
	switch docTypeOf(path) {
	case docPDF:
		return extractPDF(path)
	case docTextual:
		return extractTextual(path)
	default:
		return nil, fmt.Errorf("unsupported document type: %s", filepath.Ext(path))
	}
}

func extractPDF(path string) ([]rawPage, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []rawPage
	numPages := f.NumPage()
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// skip the broken page, keep the rest of the document
			logger.Error("failed parsing pdf page", "page", i, "error", err)
			continue
		}

		pages = append(pages, rawPage{Number: i, Content: content})
	}
	return pages, nil
}

// extractTextual reads a .docx, .odt, .rtf or plaintext file. The whole
// document lands on one logical page since these formats carry no page
// boundaries worth trusting.
func extractTextual(path string) ([]rawPage, error) {
	text, err := cat.File(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document: %w", err)
	}
	return []rawPage{{Number: 1, Content: text}}, nil
}

// protectExtract guards against the pdf library hanging on malformed
// content streams.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		return "", errors.New("timeout")
	}
}
