// Package skills normalizes free-form skill and keyword input into canonical token lists.
package skills

import (
	"strings"
)

// MaxTokens caps how many distinct tokens a single input can produce.
const MaxTokens = 30

// delimiters switch the tokenizer from whitespace splitting to list splitting.
const delimiters = ",;\n"

// Tokenize splits raw skill input into distinct, trimmed tokens.
//
// Input containing a comma, semicolon or newline is treated as a list, so
// multi-word skills such as "Machine Learning" survive. Anything else is
// split on whitespace. Duplicates are dropped case-insensitively, keeping
// the first spelling seen, and at most MaxTokens tokens are returned.
func Tokenize(input string) []string {
	var parts []string
	if strings.ContainsAny(input, delimiters) {
		parts = strings.FieldsFunc(input, isDelimiter)
	} else {
		parts = strings.Fields(input)
	}
	return Normalize(parts)
}

// Normalize applies Tokenize's cleanup to an already split list: whitespace
// is collapsed, empty entries are dropped, and duplicates are removed
// case-insensitively in first-seen order, capped at MaxTokens.
func Normalize(parts []string) []string {
	set := newOrderedSet(min(len(parts), MaxTokens))
	for _, p := range parts {
		token := collapseWhitespace(p)
		if token == "" {
			continue
		}
		set.add(token)
		if set.size() >= MaxTokens {
			break
		}
	}
	return set.values()
}

// Lower returns the lower-cased form of every token, keeping order.
func Lower(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(t)
	}
	return out
}

func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}

// collapseWhitespace trims s and replaces each internal whitespace run with one space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// orderedSet keeps the first spelling of each case-insensitive key in insertion order.
type orderedSet struct {
	index map[string]int // lower-cased key -> position in order
	order []string
}

func newOrderedSet(capacity int) *orderedSet {
	return &orderedSet{
		index: make(map[string]int, capacity),
		order: make([]string, 0, capacity),
	}
}

func (s *orderedSet) add(token string) {
	key := strings.ToLower(token)
	if _, seen := s.index[key]; seen {
		return
	}
	s.index[key] = len(s.order)
	s.order = append(s.order, token)
}

func (s *orderedSet) size() int {
	return len(s.order)
}

func (s *orderedSet) values() []string {
	return s.order
}
