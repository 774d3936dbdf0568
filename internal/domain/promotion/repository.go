package promotion

import "context"

type Repository interface {
	Create(ctx context.Context, promotion *Promotion) error
	// GetByCode looks up a normalized code; ErrPromotionNotFound when absent.
	GetByCode(ctx context.Context, code string) (*Promotion, error)
	List(ctx context.Context, offset, limit int) ([]*Promotion, int64, error)
	// ConsumeUsage increments used_count only while the limit allows it and
	// reports whether a use was taken.
	ConsumeUsage(ctx context.Context, id string) (bool, error)
}
