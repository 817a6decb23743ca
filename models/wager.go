package models

import "gorm.io/gorm"

const (
	StatusPending    = "pending"
	StatusPaid       = "paid"
	StatusRegistered = "registered"
)

type Wager struct {
	gorm.Model
	ID         uint    `gorm:"primaryKey" json:"id"`
	PoolID     uint    `json:"poolId"`
	Pool       Pool    `gorm:"foreignKey:PoolID" json:"-"`
	BettorName string  `json:"bettorName"`
	Game1      string  `json:"game1"`
	Game2      string  `json:"game2"`
	Note       *string `json:"note"`
	Paid       bool    `gorm:"default:false" json:"paid"`
	Registered bool    `gorm:"default:false" json:"registered"`
	Status     string  `gorm:"default:pending" json:"status"`
}

// WagerStatus derives the status tag from the flag pair. The flags are the
// source of truth; the stored status column is a projection of them and is
// rewritten on every transition.
func WagerStatus(paid, registered bool) string {
	switch {
	case paid && registered:
		return StatusRegistered
	case paid:
		return StatusPaid
	default:
		return StatusPending
	}
}
