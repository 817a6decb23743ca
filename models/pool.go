package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Pool struct {
	gorm.Model
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Lottery      string          `json:"lottery"`
	Contest      int             `json:"contest"`
	QuotaCount   int             `json:"quotaCount"`
	QuotaPrice   decimal.Decimal `gorm:"type:decimal(10,2)" json:"quotaPrice"`
	Open         bool            `gorm:"default:true" json:"open"`
	Result       *string         `json:"result"`
	WhatsappLink string          `json:"whatsappLink"`
	PixKey       *string         `json:"pixKey"`
}
