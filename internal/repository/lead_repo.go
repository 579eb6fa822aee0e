package repository

import (
	"context"
	"strings"

	"leadcrm/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// applyFilter translates a filter expression into WHERE clauses. Field
// names come from the fixed schema in the builder, never from raw input,
// so interpolating the column name is safe.
func applyFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	for field, pred := range f {
		switch p := pred.(type) {
		case domain.Equals:
			q = q.Where(field+" = ?", p.Value)
		case domain.Contains:
			q = q.Where("LOWER("+field+") LIKE ?", "%"+strings.ToLower(p.Value)+"%")
		case domain.In:
			q = q.Where(field+" IN ?", p.Values)
		case domain.GreaterThan:
			q = q.Where(field+" > ?", p.Value)
		case domain.LessThan:
			q = q.Where(field+" < ?", p.Value)
		case domain.Range:
			if p.Min != nil {
				op := " > ?"
				if p.MinIncl {
					op = " >= ?"
				}
				q = q.Where(field+op, p.Min)
			}
			if p.Max != nil {
				op := " < ?"
				if p.MaxIncl {
					op = " <= ?"
				}
				q = q.Where(field+op, p.Max)
			}
		case domain.None:
			q = q.Where("1 = 0")
		}
	}
	return q
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	var total int64
	q := applyFilter(r.db.WithContext(ctx).Model(&domain.Lead{}), f)
	err := q.Count(&total).Error
	return total, err
}

// Find returns a page of leads, newest first. The id tie-break keeps the
// order stable when created_at collides.
func (r *LeadRepository) Find(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Lead, error) {
	leads := make([]domain.Lead, 0, limit)
	q := applyFilter(r.db.WithContext(ctx).Model(&domain.Lead{}), f)
	err := q.
		Order("created_at DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&leads).Error
	return leads, err
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var lead domain.Lead
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&lead)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &lead, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Lead{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByEmail reports whether another lead already holds the email.
// Matching is case-sensitive on purpose. excludeID skips the lead being
// updated.
func (r *LeadRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
