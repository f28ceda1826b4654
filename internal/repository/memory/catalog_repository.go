package memory

import (
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/entity"
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/repository/contract"
)

// CatalogRepository holds the retrievable catalog in memory. The catalog is
// populated once and never mutated; listing order is seed order.
type CatalogRepository struct {
	items []entity.RetrievableItem
}

var _ contract.CatalogRepository = &CatalogRepository{}

func NewCatalogRepository(items []entity.RetrievableItem) *CatalogRepository {
	return &CatalogRepository{items: items}
}

// NewSeededCatalogRepository builds the demo catalog spanning patient cases,
// literature, and imaging references.
func NewSeededCatalogRepository() *CatalogRepository {
	return NewCatalogRepository([]entity.RetrievableItem{
		{
			Id:          "r1",
			Modality:    entity.ModalityCase,
			Title:       "ICU Patient with Dyspnea and RLL Opacity (MIMIC-IV)",
			Snippet:     "Male, 67, fever and productive cough. Imaging reveals right lower lobe opacity; elevated CRP.",
			SourceLabel: "MIMIC-IV",
		},
		{
			Id:          "r2",
			Modality:    entity.ModalityPaper,
			Title:       "Community-Acquired Pneumonia: Diagnosis & Management",
			Snippet:     "This PubMed OA review highlights empiric therapy choices and risk stratification.",
			SourceLabel: "PubMed Open Access",
		},
		{
			Id:          "r3",
			Modality:    entity.ModalityImage,
			Title:       "ChestX-ray14 Similar Pattern Match",
			Snippet:     "Embedding similarity indicates opacity consistent with pneumonia; verify with labs.",
			SourceLabel: "NIH ChestX-ray14",
		},
		{
			Id:          "r4",
			Modality:    entity.ModalityCase,
			Title:       "Post-Operative Sepsis Workup (MIMIC-IV)",
			Snippet:     "Female, 54, tachycardia and hypotension on day 2 after laparotomy. Lactate 4.1; blood cultures pending.",
			SourceLabel: "MIMIC-IV",
		},
		{
			Id:          "r5",
			Modality:    entity.ModalityPaper,
			Title:       "CT Protocol Optimization for Pulmonary Embolism",
			Snippet:     "Comparison of CTPA acquisition protocols with attention to contrast timing and dose reduction.",
			SourceLabel: "PubMed Open Access",
		},
		{
			Id:          "r6",
			Modality:    entity.ModalityImage,
			Title:       "CheXpert Pleural Effusion Reference Series",
			Snippet:     "Curated frontal radiographs with confirmed pleural effusion, graded by severity.",
			SourceLabel: "Stanford CheXpert",
		},
	})
}

func (r *CatalogRepository) AllItems() []entity.RetrievableItem {
	return r.items
}
