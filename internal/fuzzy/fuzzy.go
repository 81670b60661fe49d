// Package fuzzy scores how closely a typed query resembles a candidate string
// and picks the best candidate out of a list.
//
// Scores are integers in [0, 100]. Both sides are normalized first: lowercased,
// every non-alphanumeric rune turned into a space, and trimmed. The score is the
// best of a whole-string edit similarity and, when the lengths differ enough, a
// discounted best-window similarity of the shorter string inside the longer one.
package fuzzy

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	sfuzzy "github.com/sahilm/fuzzy"
)

// DefaultThreshold is the cutoff used when none is configured. A candidate
// must score strictly above it to be returned.
const DefaultThreshold = 0

// Partial matches are discounted by how lopsided the two lengths are.
const (
	partialMinRatio  = 1.5
	partialWideRatio = 8.0
	partialScale     = 0.9
	partialWideScale = 0.6
)

// Match is the winning candidate of ExtractOne
type Match struct {
	Str   string
	Index int
	Score int
}

// Score returns the similarity of choice to query in [0, 100]
func Score(query, choice string) int {
	a, b := normalize(query), normalize(choice)
	if a == "" || b == "" {
		return 0
	}

	base := ratio(a, b)

	shorter, longer := a, b
	if utf8.RuneCountInString(a) > utf8.RuneCountInString(b) {
		shorter, longer = b, a
	}
	lr := float64(utf8.RuneCountInString(longer)) / float64(utf8.RuneCountInString(shorter))
	if lr < partialMinRatio {
		return base
	}

	scale := partialScale
	if lr >= partialWideRatio {
		scale = partialWideScale
	}
	partial := int(math.Round(float64(partialRatio(shorter, longer)) * scale))

	return max(base, partial)
}

// ExtractOne returns the best scoring choice. Choices are scored in order and
// the first one reaching the highest score wins. The match must score
// strictly above cutoff.
func ExtractOne(query string, choices []string, cutoff int) (Match, bool) {
	best := Match{Index: -1, Score: -1}
	for i, choice := range choices {
		s := Score(query, choice)
		if s > best.Score {
			best = Match{Str: choice, Index: i, Score: s}
		}
	}
	if best.Index < 0 || best.Score <= cutoff {
		return Match{}, false
	}
	return best, true
}

// Filter keeps the choices that contain pattern as a subsequence, best first.
// An empty pattern keeps every choice in its original order.
func Filter(pattern string, choices []string) []string {
	if pattern == "" {
		out := make([]string, len(choices))
		copy(out, choices)
		return out
	}

	matches := sfuzzy.Find(pattern, choices)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// ratio is the edit similarity of two non-empty strings
func ratio(a, b string) int {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(d)/float64(longest))))
}

// partialRatio slides shorter over every same-length window of longer
func partialRatio(shorter, longer string) int {
	s := []rune(shorter)
	l := []rune(longer)

	best := 0
	for i := 0; i+len(s) <= len(l); i++ {
		r := ratio(shorter, string(l[i:i+len(s)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}
