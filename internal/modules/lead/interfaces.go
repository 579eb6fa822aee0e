package lead

import (
	"context"

	"leadcrm/internal/domain"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *domain.Lead) error
	Count(ctx context.Context, f domain.Filter) (int64, error)
	Find(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Lead, error)
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
}
