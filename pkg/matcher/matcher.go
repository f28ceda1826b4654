// Package matcher ranks catalog items against a free-text query. The ranking
// strategy is pluggable: the baseline is unscored substring matching, and an
// embedding-similarity strategy can replace it without touching the catalog
// or the rendering contract, as long as it keeps the ordering guarantees
// below.
package matcher

import (
	"sort"
	"strings"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/entity"
)

// Match references one matched catalog item. Score semantics belong to the
// strategy that produced the match.
type Match struct {
	Item  *entity.RetrievableItem
	Score float64
}

// Strategy turns a query and a corpus into an ordered match list. Contracts
// every implementation must keep:
//   - an empty or whitespace-only query yields no matches, never the whole
//     catalog;
//   - matches are totally ordered by descending score;
//   - equal scores fall back to corpus (catalog insertion) order, so repeated
//     calls with the same inputs produce identical output.
type Strategy interface {
	Match(query string, corpus []entity.RetrievableItem) []Match
}

// Substring is the baseline strategy: case-insensitive substring match over
// title, snippet, and source label. Every match scores 1.0, so ordering is
// catalog order.
type Substring struct{}

func NewSubstring() Substring {
	return Substring{}
}

func (Substring) Match(query string, corpus []entity.RetrievableItem) []Match {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	var matches []Match
	for i := range corpus {
		item := &corpus[i]
		if strings.Contains(Normalize(item.Title), q) ||
			strings.Contains(Normalize(item.Snippet), q) ||
			strings.Contains(Normalize(item.SourceLabel), q) {
			matches = append(matches, Match{Item: item, Score: 1.0})
		}
	}
	return matches
}

// Normalize maps text to the canonical form used for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Rank orders scored matches by descending score. The sort is stable, so
// equal scores keep corpus order. Substring output is already ranked; scoring
// strategies call this after scoring.
func Rank(matches []Match) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
