package reviewlens

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits a review into sentence fragments. Fragments are returned
// untrimmed and never consist of whitespace only.
type Segmenter interface {
	Segment(text string) []string
}

var terminators = regexp.MustCompile(`[.!?]+`)

// punctuationSegmenter splits on every run of '.', '!' or '?'. It has no
// notion of abbreviations, so "e.g." ends a sentence.
type punctuationSegmenter struct{}

// NewPunctuationSegmenter returns the default segmenter.
func NewPunctuationSegmenter() Segmenter {
	return punctuationSegmenter{}
}

func (punctuationSegmenter) Segment(text string) []string {
	var out []string
	for _, part := range terminators.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return out
}

// punktSegmenter wraps the Punkt sentence tokenizer trained on English.
type punktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter returns an abbreviation-aware segmenter. Terminal
// punctuation is stripped from each sentence so phrases line up with those
// of the default segmenter.
func NewPunktSegmenter() (Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load punkt model: %w", err)
	}
	return &punktSegmenter{tokenizer: tokenizer}, nil
}

func (p *punktSegmenter) Segment(text string) []string {
	var out []string
	for _, sent := range p.tokenizer.Tokenize(text) {
		s := strings.TrimRight(strings.TrimSpace(sent.Text), ".!?")
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
