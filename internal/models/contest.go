package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contest capacity state. JoinedTeams only moves under a row lock taken by the
// contest repository, paired with a successful entry-fee debit.
type Contest struct {
	ID          uint            `gorm:"primarykey"`
	MatchRef    string          `gorm:"not null;index"`
	Name        string          `gorm:"not null"`
	EntryFee    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MaxTeams    int             `gorm:"not null"`
	JoinedTeams int             `gorm:"not null;default:0"`
	Active      bool            `gorm:"not null;default:true"`
	PrizeTiers  JSON            `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PrizeTier is one payout band of a contest's prize breakup. Tiers are
// ordered and non-overlapping over ranks 1..MaxTeams.
type PrizeTier struct {
	FromRank int             `json:"from_rank"`
	ToRank   int             `json:"to_rank"`
	Payout   decimal.Decimal `json:"payout"`
}

// SlotsLeft reports remaining capacity.
func (c *Contest) SlotsLeft() int {
	return c.MaxTeams - c.JoinedTeams
}
