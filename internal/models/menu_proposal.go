package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

// WeeklyMenuProposal: yemekhane sorumlusunun (manager) önerdiği günlük menü.
// Admin onaylayınca WeeklyMenu tablosuna kopyalanır.
type WeeklyMenuProposal struct {
	ID        uint   `gorm:"primaryKey"`
	DayOfWeek string `gorm:"size:10;index;not null"`

	BreakfastMain string          `gorm:"size:100"`
	BreakfastCost decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`

	LunchMain          string          `gorm:"size:100"`
	LunchCost          decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	LunchContainsBeef  bool            `gorm:"not null;default:false"`
	LunchContainsFish  bool            `gorm:"not null;default:false"`
	LunchAlternate     string          `gorm:"size:100"`
	LunchCostAlternate decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`

	DinnerMain          string          `gorm:"size:100"`
	DinnerCost          decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	DinnerContainsBeef  bool            `gorm:"not null;default:false"`
	DinnerContainsFish  bool            `gorm:"not null;default:false"`
	DinnerAlternate     string          `gorm:"size:100"`
	DinnerCostAlternate decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`

	CreatedByID uint `gorm:"index;not null"`
	CreatedBy   User `gorm:"foreignKey:CreatedByID"`

	Status       ProposalStatus `gorm:"size:10;not null;default:'pending'"`
	LinkedMenuID *uint

	CreatedAt time.Time
	UpdatedAt time.Time
}
