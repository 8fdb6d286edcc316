package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLText(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head>
	<body><h1>Frage 1</h1><script>alert("x")</script><p>Berechnen Sie den Strom.</p></body></html>`

	text, err := ExtractHTMLText(strings.NewReader(html))
	require.NoError(t, err)

	assert.Contains(t, text, "Frage 1")
	assert.Contains(t, text, "Berechnen Sie den Strom.")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam.txt")
	require.NoError(t, os.WriteFile(path, []byte("Frage 1: Was ist U = R * I?\r\n\r\n\r\nFrage 2\n"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Frage 1: Was ist U = R * I?\n\nFrage 2", text)
}

func TestExtractText_HTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exam.html")
	require.NoError(t, os.WriteFile(path, []byte("<body><p>Frage 1</p></body>"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Frage 1")
}

func TestExtractText_EmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n  "), 0o644))

	_, err := ExtractText(path)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
