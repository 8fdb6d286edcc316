package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClassify(t *testing.T) {
	classifyCatalog = ""
	classifySpec = "None"

	err := runClassify(classifyCmd, []string{"Personalführung", "Quantencomputing"})
	assert.NoError(t, err)
}

func TestRunClassify_MissingCatalogFile(t *testing.T) {
	classifyCatalog = "/nonexistent/catalog.json"
	defer func() { classifyCatalog = "" }()

	err := runClassify(classifyCmd, []string{"Personalführung"})
	assert.Error(t, err)
}

func TestRunServe_MissingEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	err := runServe(serveCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database_url")
}

func TestRunAnalyze_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	err := runAnalyze(analyzeCmd, []string{"exam.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
