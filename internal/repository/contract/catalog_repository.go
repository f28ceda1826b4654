package contract

import (
	"github.com/sharan022005/medic-query-knowledge-assistant/internal/entity"
)

// CatalogRepository is the read-only result store. AllItems returns the
// catalog in a deterministic order (seed order); the returned slice must not
// be mutated.
type CatalogRepository interface {
	AllItems() []entity.RetrievableItem
}
