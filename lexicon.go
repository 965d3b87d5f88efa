package reviewlens

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnknownAspect is returned when an external lexicon names an aspect that
// is not part of the built-in aspect table.
var ErrUnknownAspect = errors.New("unknown aspect")

// Lexicon holds the word tables used for scoring. A Lexicon is never
// modified after construction and may be shared between goroutines.
type Lexicon struct {
	positive     map[string]struct{}
	negative     map[string]struct{}
	intensifiers map[string]struct{}
	negations    map[string]struct{}
	aspects      []AspectKeywords
}

// AspectKeywords lists the words that signal a mention of an aspect.
type AspectKeywords struct {
	Aspect   Aspect
	Keywords []string
}

// ExternalLexicon is the JSON structure of a lexicon extension file. Words
// are added to the built-in tables; aspects must already exist.
type ExternalLexicon struct {
	Positive     []string            `json:"positive,omitempty"`
	Negative     []string            `json:"negative,omitempty"`
	Intensifiers []string            `json:"intensifiers,omitempty"`
	Negations    []string            `json:"negations,omitempty"`
	Aspects      map[Aspect][]string `json:"aspects,omitempty"`
}

var defaultLexicon = newEnglishLexicon()

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// LexiconFromFile reads a JSON lexicon extension and merges it with the
// built-in tables.
func LexiconFromFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening lexicon file: %w", err)
	}
	defer f.Close()

	return LexiconFromReader(f)
}

// LexiconFromReader decodes a JSON lexicon extension from r and merges it
// with the built-in tables. The built-in lexicon is left untouched.
func LexiconFromReader(r io.Reader) (*Lexicon, error) {
	var external ExternalLexicon
	if err := json.NewDecoder(r).Decode(&external); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	return defaultLexicon.merge(external)
}

// merge returns a copy of sl extended with the external tables.
func (sl *Lexicon) merge(ext ExternalLexicon) (*Lexicon, error) {
	for aspect := range ext.Aspects {
		if !sl.hasAspect(aspect) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAspect, aspect)
		}
	}

	merged := &Lexicon{
		positive:     union(sl.positive, ext.Positive),
		negative:     union(sl.negative, ext.Negative),
		intensifiers: union(sl.intensifiers, ext.Intensifiers),
		negations:    union(sl.negations, ext.Negations),
		aspects:      make([]AspectKeywords, 0, len(sl.aspects)),
	}

	for _, entry := range sl.aspects {
		keywords := append([]string(nil), entry.Keywords...)
		seen := toSet(keywords)
		for _, kw := range ext.Aspects[entry.Aspect] {
			kw = normalizeWord(kw)
			if kw == "" {
				continue
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
		}
		merged.aspects = append(merged.aspects, AspectKeywords{Aspect: entry.Aspect, Keywords: keywords})
	}

	return merged, nil
}

func (sl *Lexicon) hasAspect(aspect Aspect) bool {
	for _, entry := range sl.aspects {
		if entry.Aspect == aspect {
			return true
		}
	}
	return false
}

// IsPositive reports whether word carries positive polarity.
func (sl *Lexicon) IsPositive(word string) bool {
	_, ok := sl.positive[word]
	return ok
}

// IsNegative reports whether word carries negative polarity.
func (sl *Lexicon) IsNegative(word string) bool {
	_, ok := sl.negative[word]
	return ok
}

// IsIntensifier reports whether word amplifies the word that follows it.
func (sl *Lexicon) IsIntensifier(word string) bool {
	_, ok := sl.intensifiers[word]
	return ok
}

// IsNegation reports whether word flips the next sentiment word.
func (sl *Lexicon) IsNegation(word string) bool {
	_, ok := sl.negations[word]
	return ok
}

// Aspects returns the aspect table in its fixed order.
func (sl *Lexicon) Aspects() []AspectKeywords {
	out := make([]AspectKeywords, len(sl.aspects))
	for i, entry := range sl.aspects {
		out[i] = AspectKeywords{
			Aspect:   entry.Aspect,
			Keywords: append([]string(nil), entry.Keywords...),
		}
	}
	return out
}

// Size returns the number of polarity words in the lexicon.
func (sl *Lexicon) Size() int {
	return len(sl.positive) + len(sl.negative)
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func union(base map[string]struct{}, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(extra))
	for w := range base {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		if w = normalizeWord(w); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// newEnglishLexicon builds the built-in English tables. Some words appear in
// more than one table ("never" is both negative and a negation); negations
// are checked first during scoring.
func newEnglishLexicon() *Lexicon {
	return &Lexicon{
		positive: toSet([]string{
			"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome", "perfect",
			"love", "loved", "loving", "best", "beautiful", "brilliant", "outstanding", "superb",
			"exceptional", "impressive", "quality", "recommend", "recommended", "happy", "satisfied",
			"delighted", "pleased", "nice", "fine", "solid", "reliable", "sturdy", "durable",
			"fast", "quick", "efficient", "helpful", "friendly", "professional", "polite", "kind",
			"comfortable", "smooth", "easy", "simple", "convenient", "affordable", "worth",
			"value", "fresh", "clean", "neat", "pretty", "gorgeous", "stunning", "elegant",
		}),
		negative: toSet([]string{
			"bad", "terrible", "awful", "horrible", "poor", "worst", "disappointing", "disappointed",
			"hate", "hated", "dislike", "ugly", "broken", "defective", "damaged", "faulty",
			"useless", "worthless", "waste", "overpriced", "expensive", "cheap", "flimsy", "fragile",
			"slow", "delayed", "late", "never", "rude", "unprofessional", "unhelpful", "difficult",
			"hard", "complicated", "confusing", "uncomfortable", "rough", "dirty", "messy",
			"wrong", "incorrect", "missing", "incomplete", "fake", "counterfeit", "scam", "fraud",
		}),
		intensifiers: toSet([]string{
			"very", "extremely", "really", "absolutely", "totally", "completely", "highly", "super",
		}),
		negations: toSet([]string{
			"not", "no", "never", "neither", "nobody", "nothing", "nowhere", "hardly", "barely", "scarcely",
		}),
		aspects: []AspectKeywords{
			{ProductQuality, []string{"quality", "product", "material", "build", "construction", "durable", "sturdy", "flimsy", "cheap", "premium"}},
			{Delivery, []string{"delivery", "shipping", "delivered", "shipped", "arrived", "package", "packaging", "box", "late", "delayed", "fast", "quick"}},
			{CustomerService, []string{"service", "support", "staff", "representative", "help", "helpful", "response", "customer", "friendly", "rude"}},
			{Price, []string{"price", "cost", "expensive", "cheap", "affordable", "value", "worth", "overpriced", "money"}},
			{Usability, []string{"easy", "simple", "difficult", "hard", "complicated", "use", "setup", "install", "intuitive", "confusing"}},
		},
	}
}
