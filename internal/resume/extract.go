package resume

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// fromFile reads resume text from a file, extracting plain text from PDF and
// DOCX documents based on the file extension.
func fromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading resume file %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md", "":
		return string(data), nil
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported resume file type %q: expected .txt, .md, .pdf or .docx", ext)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(content)
	}

	return text.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
