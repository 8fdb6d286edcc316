package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoText indicates that a document yielded no extractable text.
var ErrNoText = errors.New("no text could be extracted from document")

// ExtractText extracts the text of an uploaded document, dispatching on the
// file extension. Unknown extensions are treated as plain text.
func ExtractText(path string) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = ExtractPDFText(path)
	case ".html", ".htm":
		f, openErr := os.Open(path)
		if openErr != nil {
			return "", fmt.Errorf("failed to open document %s: %w", path, openErr)
		}
		defer func() { _ = f.Close() }()
		text, err = ExtractHTMLText(f)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document %s: %w", path, err)
		}
		text = CleanText(string(data))
	}

	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}
