package entity

// Modality categorizes a retrievable item.
type Modality string

const (
	ModalityCase  Modality = "case"
	ModalityPaper Modality = "paper"
	ModalityImage Modality = "image"
)

// RetrievableItem is one entry in the read-only result catalog. Ids are
// unique across the whole catalog regardless of modality; all fields are
// immutable after seeding.
type RetrievableItem struct {
	Id          string
	Modality    Modality
	Title       string
	Snippet     string
	SourceLabel string
}
