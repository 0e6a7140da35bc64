// Package analytics computes word frequencies over page text, used for
// the per-page keyword summary.
package analytics

import (
	"sort"
	"strings"
	"unicode"
)

type Analytics struct{}

// stopwords are skipped during frequency analysis. The list covers the
// most common English function words plus web chrome noise.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"been": {}, "between": {}, "but": {}, "by": {}, "can": {}, "for": {},
	"from": {}, "had": {}, "has": {}, "have": {}, "he": {}, "her": {},
	"his": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "may": {}, "more": {}, "most": {}, "no": {}, "not": {},
	"occurred": {}, "of": {}, "on": {}, "one": {}, "or": {}, "other": {},
	"over": {}, "she": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "to": {}, "under": {}, "up": {}, "was": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "will": {}, "with": {}, "within": {}, "would": {},

	// Common page chrome.
	"edit": {}, "retrieved": {}, "article": {}, "page": {}, "link": {},
	"links": {}, "citation": {}, "references": {}, "wikipedia": {},
}

// IsStopword reports whether a word is filtered from frequency results.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency returns a frequency map of the non-stopword tokens in
// text. Tokens are lowercased and trimmed of surrounding punctuation.
func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if word == "" || IsStopword(word) {
			continue
		}
		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the n most frequent non-stopword tokens in text,
// most frequent first.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for word, count := range frequencies {
		counts = append(counts, wordCount{word, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}
	if limit < 0 {
		limit = 0
	}

	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = counts[i].Word
	}
	return top
}
