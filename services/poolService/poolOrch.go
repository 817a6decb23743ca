package poolService

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"megaBolaoApp/models"
	"megaBolaoApp/services/common"
)

// PoolConfig carries the admin-editable pool settings.
type PoolConfig struct {
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Lottery      string          `json:"lottery"`
	Contest      int             `json:"contest"`
	QuotaCount   int             `json:"quotaCount"`
	QuotaPrice   decimal.Decimal `json:"quotaPrice"`
	WhatsappLink string          `json:"whatsappLink"`
	PixKey       *string         `json:"pixKey"`
}

func CreatePool(db *gorm.DB, cfg PoolConfig) (*models.Pool, error) {
	pool := models.Pool{
		Title:        cfg.Title,
		Subtitle:     cfg.Subtitle,
		Lottery:      cfg.Lottery,
		Contest:      cfg.Contest,
		QuotaCount:   cfg.QuotaCount,
		QuotaPrice:   cfg.QuotaPrice,
		WhatsappLink: cfg.WhatsappLink,
		PixKey:       cfg.PixKey,
		Open:         true,
	}
	if err := db.Create(&pool).Error; err != nil {
		return nil, err
	}
	return &pool, nil
}

func GetPool(db *gorm.DB, poolID uint) (*models.Pool, error) {
	var pool models.Pool
	err := db.First(&pool, "id = ?", poolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// ActivePool returns the most recently created pool. The deployment runs a
// single pool at a time, so "the pool" is always the newest row; callers pass
// its id explicitly into every other operation.
func ActivePool(db *gorm.DB) (*models.Pool, error) {
	var pool models.Pool
	err := db.Order("id desc").First(&pool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func UpdateConfig(db *gorm.DB, poolID uint, cfg PoolConfig) (*models.Pool, error) {
	pool, err := GetPool(db, poolID)
	if err != nil {
		return nil, err
	}

	err = db.Model(pool).Updates(map[string]interface{}{
		"title":         cfg.Title,
		"subtitle":      cfg.Subtitle,
		"lottery":       cfg.Lottery,
		"contest":       cfg.Contest,
		"quota_count":   cfg.QuotaCount,
		"quota_price":   cfg.QuotaPrice,
		"whatsapp_link": cfg.WhatsappLink,
		"pix_key":       cfg.PixKey,
	}).Error
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// ClosePool moves an open pool to closed. The transition is allowed only when
// every wager of the pool is registered; a pool with no wagers closes
// vacuously.
func ClosePool(db *gorm.DB, poolID uint) (*models.Pool, error) {
	pool, err := GetPool(db, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.Open {
		return nil, common.ErrPoolClosed
	}

	var unregistered int64
	err = db.Model(&models.Wager{}).
		Where("pool_id = ? AND status <> ?", pool.ID, models.StatusRegistered).
		Count(&unregistered).Error
	if err != nil {
		return nil, err
	}
	if unregistered > 0 {
		return nil, &common.UnregisteredWagersError{Count: int(unregistered)}
	}

	if err := db.Model(pool).Updates(map[string]interface{}{"open": false}).Error; err != nil {
		return nil, err
	}
	pool.Open = false
	return pool, nil
}

// ReopenPool moves a pool back to open and discards any recorded draw result.
// Both columns go out in a single update so no reader ever sees an open pool
// that still carries a result. Destructive; callers confirm with the user
// first.
func ReopenPool(db *gorm.DB, poolID uint) (*models.Pool, error) {
	pool, err := GetPool(db, poolID)
	if err != nil {
		return nil, err
	}

	err = db.Model(pool).Updates(map[string]interface{}{
		"open":   true,
		"result": nil,
	}).Error
	if err != nil {
		return nil, err
	}
	pool.Open = true
	pool.Result = nil
	return pool, nil
}

// SetResult records the drawn numbers on a closed pool. The input must match
// ResultPattern and is stored verbatim; parsing into integers happens at
// settlement time. The format check runs before the state check so a
// malformed result is rejected regardless of pool state.
func SetResult(db *gorm.DB, poolID uint, result string) (*models.Pool, error) {
	if !common.ResultPattern.MatchString(result) {
		return nil, common.ErrInvalidResultFormat
	}

	pool, err := GetPool(db, poolID)
	if err != nil {
		return nil, err
	}
	if pool.Open {
		return nil, common.ErrPoolOpen
	}

	if err := db.Model(pool).Updates(map[string]interface{}{"result": result}).Error; err != nil {
		return nil, err
	}
	pool.Result = &result
	return pool, nil
}
