package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/localshop/storefront/internal/shared/biztime"
	"github.com/localshop/storefront/internal/shared/id"
)

type Category struct {
	id           string
	name         string
	slug         string
	description  string
	displayOrder int
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCategory(name, slug, description string, displayOrder int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if displayOrder < 0 {
		return nil, fmt.Errorf("display order cannot be negative")
	}
	if slug == "" {
		slug = Slugify(name)
	}

	now := biztime.NowUTC()
	return &Category{
		id:           id.NewUUID(),
		name:         name,
		slug:         slug,
		description:  description,
		displayOrder: displayOrder,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (c *Category) ID() string {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Slug() string {
	return c.slug
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) DisplayOrder() int {
	return c.displayOrder
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

type CategoryReconstructParams struct {
	ID           string
	Name         string
	Slug         string
	Description  string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructCategory(params CategoryReconstructParams) *Category {
	return &Category{
		id:           params.ID,
		name:         params.Name,
		slug:         params.Slug,
		description:  params.Description,
		displayOrder: params.DisplayOrder,
		isActive:     params.IsActive,
		createdAt:    params.CreatedAt,
		updatedAt:    params.UpdatedAt,
	}
}

// DisplayOrderUpdate moves one category to a new position.
type DisplayOrderUpdate struct {
	CategoryID   string
	DisplayOrder int
}

// ValidateReorder rejects empty batches, negative positions and a category
// listed twice.
func ValidateReorder(updates []DisplayOrderUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	seen := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		if u.CategoryID == "" {
			return fmt.Errorf("category ID is required")
		}
		if u.DisplayOrder < 0 {
			return fmt.Errorf("display order for %s cannot be negative", u.CategoryID)
		}
		if _, dup := seen[u.CategoryID]; dup {
			return fmt.Errorf("category %s listed more than once", u.CategoryID)
		}
		seen[u.CategoryID] = struct{}{}
	}
	return nil
}
