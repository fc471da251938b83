package catalog

import (
	"errors"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Store is the catalog collaborator: it supplies the Product instances the
// cart and checkout operate on. Construction and cataloging policy live
// behind this interface, outside the checkout core.
type Store interface {
	// Add registers a product under its ID, overwriting any previous entry.
	Add(product *domain.Product) error

	// Get returns the live product instance. Stock mutations on the returned
	// product are visible to every holder of the same instance.
	Get(id int64) (*domain.Product, error)

	// List returns all products ordered by ID.
	List() []*domain.Product
}
