package catalog

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	// List returns categories ordered by display order, then name.
	List(ctx context.Context, activeOnly bool) ([]*Category, error)
	UpdateDisplayOrder(ctx context.Context, id string, displayOrder int) error
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	CategoryID string
	Query      string
	ActiveOnly bool
	Offset     int
	Limit      int
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	// GetByIDs returns the products found, keyed by ID. Missing IDs are absent.
	GetByIDs(ctx context.Context, ids []string) (map[string]*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
}
