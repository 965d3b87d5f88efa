package reviewlens

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// RuneTester reports whether a rune belongs inside a word.
type RuneTester func(rune) bool

// Tokenizer splits text into lowercase word tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// wordTokenizer folds case and splits on every rune that is not a word rune.
type wordTokenizer struct {
	normalize  bool
	isWordRune RuneTester
}

type TokenizerOptFunc func(*wordTokenizer)

// UsingNormalization enables (the default) or disables NFC normalization
// before splitting. Without it a decomposed accent splits a word in two.
func UsingNormalization(x bool) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.normalize = x
	}
}

// UsingWordRunes gives the function that decides which runes are kept.
func UsingWordRunes(x RuneTester) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.isWordRune = x
	}
}

// Constructor for default wordTokenizer
func NewWordTokenizer(opts ...TokenizerOptFunc) *wordTokenizer {
	tok := new(wordTokenizer)

	tok.normalize = true
	tok.isWordRune = IsWordRune

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	return tok
}

// Tokenize lowercases text and returns its words in order. Punctuation and
// symbols act as separators, so "10/10" yields two tokens.
func (t *wordTokenizer) Tokenize(text string) []string {
	if t.normalize {
		text = norm.NFC.String(text)
	}
	text = strings.ToLower(text)

	return strings.FieldsFunc(text, func(r rune) bool {
		return !t.isWordRune(r)
	})
}

// IsWordRune accepts letters, digits, combining marks and the underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// IsASCIIWordRune accepts only [A-Za-z0-9_].
func IsASCIIWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

var defaultTokenizer = NewWordTokenizer()

// Tokenize splits text with the default tokenizer.
func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}
