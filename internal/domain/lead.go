package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadSource tells where a lead came from
type LeadSource string

const (
	SourceWebsite     LeadSource = "website"
	SourceFacebookAds LeadSource = "facebook_ads"
	SourceGoogleAds   LeadSource = "google_ads"
	SourceReferral    LeadSource = "referral"
	SourceEvents      LeadSource = "events"
	SourceOther       LeadSource = "other"
)

// LeadStatus represents the lead pipeline stage
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusLost      LeadStatus = "lost"
	StatusWon       LeadStatus = "won"
)

// Lead is a sales prospect record
type Lead struct {
	ID        string `gorm:"column:id;primaryKey" json:"id"`
	FirstName string `gorm:"column:first_name" json:"first_name" validate:"required"`
	LastName  string `gorm:"column:last_name" json:"last_name" validate:"required"`
	Email     string `gorm:"column:email;uniqueIndex" json:"email" validate:"required"`
	Phone     string `gorm:"column:phone" json:"phone,omitempty"`
	Company   string `gorm:"column:company" json:"company,omitempty"`
	City      string `gorm:"column:city" json:"city,omitempty"`
	State     string `gorm:"column:state" json:"state,omitempty"`

	Source LeadSource `gorm:"column:source" json:"source" validate:"required,oneof=website facebook_ads google_ads referral events other"`
	Status LeadStatus `gorm:"column:status" json:"status" validate:"required,oneof=new contacted qualified lost won"`

	Score     float64 `gorm:"column:score" json:"score" validate:"min=0,max=100"`
	LeadValue float64 `gorm:"column:lead_value" json:"lead_value"`

	LastActivityAt *time.Time `gorm:"column:last_activity_at" json:"last_activity_at,omitempty"`
	IsQualified    bool       `gorm:"column:is_qualified" json:"is_qualified"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// BeforeCreate assigns an opaque identifier so the store's native key
// never leaks into the API surface.
func (l *Lead) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// IsWon returns true once the lead converted
func (l *Lead) IsWon() bool {
	return l.Status == StatusWon
}
