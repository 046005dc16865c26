package skill

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Option func(*Extractor)

// WithWordBoundaries makes the extractor ignore hits that are embedded inside a
// longer token ("java" inside "javascript"). Off by default.
func WithWordBoundaries(on bool) Option {
	return func(x *Extractor) {
		x.wordBoundaries = on
	}
}

type Extractor struct {
	taxonomy       *Taxonomy
	wordBoundaries bool
}

func NewExtractor(t *Taxonomy, opts ...Option) *Extractor {
	if t == nil {
		t = DefaultTaxonomy()
	}
	x := &Extractor{taxonomy: t}
	for _, opt := range opts {
		if opt != nil {
			opt(x)
		}
	}
	return x
}

func (x *Extractor) Taxonomy() *Taxonomy {
	if x == nil {
		return nil
	}
	return x.taxonomy
}

func (x *Extractor) WordBoundaries() bool {
	return x != nil && x.wordBoundaries
}

// Hit describes one canonical skill found in a text. Bounded is false when every
// occurrence of every term sat inside a longer word.
type Hit struct {
	Skill    string `json:"skill"`
	Category string `json:"category"`
	Term     string `json:"term"`
	Bounded  bool   `json:"bounded"`
}

// ExtractHits returns one hit per canonical skill in taxonomy order.
func (x *Extractor) ExtractHits(text string) []Hit {
	out := make([]Hit, 0)
	if x == nil || x.taxonomy == nil {
		return out
	}
	lower := Normalize(text)
	if lower == "" {
		return out
	}

	index := map[string]int{}
	for _, c := range x.taxonomy.categories {
		for _, e := range c.Entries {
			key := Normalize(e.Name)
			if key == "" {
				continue
			}
			for _, term := range e.Terms() {
				t := Normalize(term)
				if t == "" {
					continue
				}
				found, bounded := scan(lower, t)
				if !found {
					continue
				}
				if x.wordBoundaries && !bounded {
					continue
				}
				if i, ok := index[key]; ok {
					if bounded && !out[i].Bounded {
						out[i].Bounded = true
						out[i].Term = term
					}
					continue
				}
				index[key] = len(out)
				out = append(out, Hit{Skill: e.Name, Category: c.Name, Term: term, Bounded: bounded})
			}
		}
	}
	return out
}

// Extract returns the deduplicated canonical skill names found in text.
func (x *Extractor) Extract(text string) []string {
	hits := x.ExtractHits(text)
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Skill)
	}
	return out
}

// Embedded lists skills that were only found inside longer words.
func Embedded(hits []Hit) []string {
	out := make([]string, 0)
	for _, h := range hits {
		if !h.Bounded {
			out = append(out, h.Skill)
		}
	}
	return out
}

func scan(text, term string) (found bool, bounded bool) {
	from := 0
	for from <= len(text) {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return found, bounded
		}
		start := from + i
		end := start + len(term)
		found = true
		if isBoundary(text, start, end) {
			return true, true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return found, bounded
}

func isBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
