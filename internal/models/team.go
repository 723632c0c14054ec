package models

import "time"

// RosterSize is the number of players a team fields.
const RosterSize = 11

// Player roles within a roster.
const (
	PlayerRoleBatsman      = "batsman"
	PlayerRoleBowler       = "bowler"
	PlayerRoleAllRounder   = "all_rounder"
	PlayerRoleWicketKeeper = "wicket_keeper"
)

// TeamPlayer is one roster entry.
type TeamPlayer struct {
	PlayerID string `json:"player_id"`
	Role     string `json:"role"`
}

// Team is created exactly once by a successful join transaction. TotalPoints
// is written by the external scoring feed; rank is never persisted here, the
// leaderboard projection derives it on demand.
type Team struct {
	ID            string `gorm:"primarykey"`
	AccountID     uint   `gorm:"not null;index:idx_teams_account_contest"`
	ContestID     uint   `gorm:"not null;index:idx_teams_account_contest;index"`
	Players       JSON   `gorm:"type:jsonb;not null"`
	CaptainID     string `gorm:"not null"`
	ViceCaptainID string `gorm:"not null"`
	TotalPoints   int    `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
