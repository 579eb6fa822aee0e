package lead

import (
	"time"

	"leadcrm/internal/domain"
)

type CreateLeadRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	City      string `json:"city"`
	State     string `json:"state"`

	Source domain.LeadSource `json:"source"`
	Status domain.LeadStatus `json:"status"`

	Score     float64 `json:"score"`
	LeadValue float64 `json:"lead_value"`

	LastActivityAt *time.Time `json:"last_activity_at"`
	IsQualified    bool       `json:"is_qualified"`
}

func (r CreateLeadRequest) toDomain() *domain.Lead {
	return &domain.Lead{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Company:        r.Company,
		City:           r.City,
		State:          r.State,
		Source:         r.Source,
		Status:         r.Status,
		Score:          r.Score,
		LeadValue:      r.LeadValue,
		LastActivityAt: r.LastActivityAt,
		IsQualified:    r.IsQualified,
	}
}

// UpdateLeadRequest carries a partial update: nil means "leave as is".
type UpdateLeadRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	City      *string `json:"city"`
	State     *string `json:"state"`

	Source *domain.LeadSource `json:"source"`
	Status *domain.LeadStatus `json:"status"`

	Score     *float64 `json:"score"`
	LeadValue *float64 `json:"lead_value"`

	LastActivityAt *time.Time `json:"last_activity_at"`
	IsQualified    *bool      `json:"is_qualified"`
}

func (r UpdateLeadRequest) applyTo(lead *domain.Lead) {
	if r.FirstName != nil {
		lead.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		lead.LastName = *r.LastName
	}
	if r.Email != nil {
		lead.Email = *r.Email
	}
	if r.Phone != nil {
		lead.Phone = *r.Phone
	}
	if r.Company != nil {
		lead.Company = *r.Company
	}
	if r.City != nil {
		lead.City = *r.City
	}
	if r.State != nil {
		lead.State = *r.State
	}
	if r.Source != nil {
		lead.Source = *r.Source
	}
	if r.Status != nil {
		lead.Status = *r.Status
	}
	if r.Score != nil {
		lead.Score = *r.Score
	}
	if r.LeadValue != nil {
		lead.LeadValue = *r.LeadValue
	}
	if r.LastActivityAt != nil {
		lead.LastActivityAt = r.LastActivityAt
	}
	if r.IsQualified != nil {
		lead.IsQualified = *r.IsQualified
	}
}

// ListResult is the paginated list envelope.
type ListResult struct {
	Data       []domain.Lead `json:"data"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
}
