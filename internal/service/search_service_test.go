package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharan022005/medic-query-knowledge-assistant/internal/entity"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/memory"
	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/matcher"
)

func newSearchFixture() ISearchService {
	catalog := memory.NewCatalogRepository([]entity.RetrievableItem{
		{Id: "r1", Modality: entity.ModalityPaper, Title: "Pneumonia Review", Snippet: "Empiric therapy.", SourceLabel: "PubMed"},
		{Id: "r2", Modality: entity.ModalityPaper, Title: "CT Protocol", Snippet: "Contrast timing.", SourceLabel: "PubMed"},
	})
	return NewSearchService(catalog, matcher.NewSubstring(), nopLogger{})
}

func TestSearchMapsMatchesToResults(t *testing.T) {
	svc := newSearchFixture()

	res, err := svc.Search(context.Background(), "pneumonia")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)

	got := res.Results[0]
	assert.Equal(t, "r1", got.Id)
	assert.Equal(t, "paper", got.Type)
	assert.Equal(t, "Pneumonia Review", got.Title)
	assert.Equal(t, "Empiric therapy.", got.Snippet)
	assert.Equal(t, "PubMed", got.Source)
}

func TestSearchEmptyQueryYieldsEmptyResults(t *testing.T) {
	svc := newSearchFixture()

	res, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	// Empty result, never nil: the endpoint must answer {"results": []}.
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
}

func TestSearchSeededCatalog(t *testing.T) {
	svc := NewSearchService(memory.NewSeededCatalogRepository(), matcher.NewSubstring(), nopLogger{})

	res, err := svc.Search(context.Background(), "mimic")
	require.NoError(t, err)
	require.NotEmpty(t, res.Results)
	for _, r := range res.Results {
		assert.Equal(t, "MIMIC-IV", r.Source)
	}
}
