package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/entity"
)

func testCorpus() []entity.RetrievableItem {
	return []entity.RetrievableItem{
		{Id: "c1", Modality: entity.ModalityPaper, Title: "Pneumonia Review", Snippet: "Empiric therapy choices.", SourceLabel: "PubMed"},
		{Id: "c2", Modality: entity.ModalityPaper, Title: "CT Protocol", Snippet: "Contrast timing.", SourceLabel: "PubMed"},
		{Id: "c3", Modality: entity.ModalityCase, Title: "ICU Admission", Snippet: "Fever and cough, suspected pneumonia.", SourceLabel: "MIMIC-IV"},
		{Id: "c4", Modality: entity.ModalityImage, Title: "Chest Film Series", Snippet: "Frontal radiographs.", SourceLabel: "NIH ChestX-ray14"},
	}
}

func TestSubstringMatch(t *testing.T) {
	strategy := NewSubstring()
	corpus := testCorpus()

	tests := []struct {
		name    string
		query   string
		wantIds []string
	}{
		{
			name:    "empty query yields nothing",
			query:   "",
			wantIds: nil,
		},
		{
			name:    "whitespace-only query yields nothing",
			query:   "   \t\n  ",
			wantIds: nil,
		},
		{
			name:    "title match",
			query:   "pneumonia",
			wantIds: []string{"c1", "c3"},
		},
		{
			name:    "case-insensitive",
			query:   "PNEUMONIA",
			wantIds: []string{"c1", "c3"},
		},
		{
			name:    "snippet match",
			query:   "contrast",
			wantIds: []string{"c2"},
		},
		{
			name:    "source label match",
			query:   "mimic",
			wantIds: []string{"c3"},
		},
		{
			name:    "no match",
			query:   "cardiology",
			wantIds: nil,
		},
		{
			name:    "query shared across fields keeps catalog order",
			query:   "pubmed",
			wantIds: []string{"c1", "c2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := strategy.Match(tt.query, corpus)

			gotIds := make([]string, 0, len(matches))
			for _, m := range matches {
				gotIds = append(gotIds, m.Item.Id)
			}
			if tt.wantIds == nil {
				assert.Empty(t, gotIds)
			} else {
				assert.Equal(t, tt.wantIds, gotIds)
			}
		})
	}
}

func TestSubstringMatchDeterministic(t *testing.T) {
	strategy := NewSubstring()
	corpus := testCorpus()

	first := strategy.Match("pneumonia", corpus)
	for i := 0; i < 10; i++ {
		again := strategy.Match("pneumonia", corpus)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].Item.Id, again[j].Item.Id)
		}
	}
}

func TestSubstringMatchScoresEqual(t *testing.T) {
	matches := NewSubstring().Match("pubmed", testCorpus())
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, 1.0, m.Score)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	corpus := testCorpus()

	// Equal scores must keep corpus order; higher scores move up.
	matches := []Match{
		{Item: &corpus[0], Score: 0.5},
		{Item: &corpus[1], Score: 0.9},
		{Item: &corpus[2], Score: 0.5},
	}
	ranked := Rank(matches)

	require.Len(t, ranked, 3)
	assert.Equal(t, "c2", ranked[0].Item.Id)
	assert.Equal(t, "c1", ranked[1].Item.Id)
	assert.Equal(t, "c3", ranked[2].Item.Id)
}
