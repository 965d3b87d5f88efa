package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reviewlens"
)

func TestRunSampleJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-sample"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	var result reviewlens.AnalysisResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, 20, result.Overall.Total)
	assert.Len(t, result.Reviews, 20)
}

func TestRunSampleText(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-sample", "-format", "text", "-workers", "4"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Overall sentiment:")
	assert.Contains(t, out, "Reviews:")
	assert.Contains(t, out, "Complaints")
	assert.Contains(t, out, "Praises")
	assert.Contains(t, out, "Insights")
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	input := "Great quality, love it!\n\nTerrible, broken and useless.\n"

	err := run(context.Background(), nil, strings.NewReader(input), &stdout, &stderr)
	require.NoError(t, err)

	var result reviewlens.AnalysisResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	require.Len(t, result.Reviews, 2)
	assert.Equal(t, 2, result.Reviews[1].ID)
	assert.Equal(t, reviewlens.Percentages{Positive: 50, Negative: 50}, result.Overall.Percentages)
}

func TestRunFileWithLexicon(t *testing.T) {
	dir := t.TempDir()
	reviews := filepath.Join(dir, "reviews.txt")
	lexicon := filepath.Join(dir, "lexicon.json")
	require.NoError(t, os.WriteFile(reviews, []byte("The gizmo is splendiferous."), 0o600))
	require.NoError(t, os.WriteFile(lexicon, []byte(`{"positive": ["splendiferous"]}`), 0o600))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-in", reviews, "-lexicon", lexicon}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	var result reviewlens.AnalysisResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, reviewlens.Positive, result.Reviews[0].Sentiment.Label)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args  []string
		stdin string
		desc  string
	}{
		{nil, "  \n\n  ", "No reviews"},
		{[]string{"-format", "xml"}, "good", "Bad format"},
		{[]string{"-workers", "0"}, "good", "Bad workers"},
		{[]string{"-in", "/does/not/exist.txt"}, "", "Missing file"},
		{[]string{"-lexicon", "/does/not/exist.json"}, "good", "Missing lexicon"},
		{[]string{"-bogus"}, "", "Unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)
			assert.Error(t, err)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunNoReviews(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), nil, strings.NewReader(""), &stdout, &stderr)
	assert.ErrorIs(t, err, errNoReviews)
}
