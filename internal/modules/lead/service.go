package lead

import (
	"context"
	"errors"

	"leadcrm/internal/domain"
	"leadcrm/internal/pkg/validator"

	"gorm.io/gorm"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service contains the lead business logic
type Service struct {
	leads LeadRepositoryInterface
}

func NewService(leads LeadRepositoryInterface) *Service {
	return &Service{leads: leads}
}

func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	lead := req.toDomain()
	if errs := validator.Validate(lead); errs != nil {
		return nil, ErrInvalidData
	}

	exists, err := s.leads.ExistsByEmail(ctx, lead.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return lead, nil
}

// List runs a filter expression with pagination. Pages past the end come
// back as an empty data slice, not an error.
func (s *Service) List(ctx context.Context, f domain.Filter, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := s.leads.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	leads, err := s.leads.Find(ctx, f, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []domain.Lead{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ListResult{
		Data:       leads,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// Update merges the partial request into the stored record and
// re-validates the whole lead before saving.
func (s *Service) Update(ctx context.Context, id string, req UpdateLeadRequest) (*domain.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	req.applyTo(lead)

	if errs := validator.Validate(lead); errs != nil {
		return nil, ErrInvalidData
	}

	if req.Email != nil {
		exists, err := s.leads.ExistsByEmail(ctx, lead.Email, lead.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrInvalidData
		}
	}

	if err := s.leads.Update(ctx, lead); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInvalidData
		}
		return nil, err
	}

	return lead, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return err
	}
	return nil
}
