package scheduler_jobs

import (
	"errors"

	"github.com/google/logger"
	"gorm.io/gorm"

	"megaBolaoApp/models"
	"megaBolaoApp/services/common"
	"megaBolaoApp/services/poolService"
)

// CheckPendingPayments logs how many wagers of the active pool still need to
// be paid or registered, so the organizer can chase people before trying to
// close the pool. Nothing to do when no pool exists or it is already closed.
func CheckPendingPayments(db *gorm.DB) error {
	pool, err := poolService.ActivePool(db)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !pool.Open {
		return nil
	}

	var unpaid, unregistered int64
	err = db.Model(&models.Wager{}).
		Where("pool_id = ? AND paid = ?", pool.ID, false).
		Count(&unpaid).Error
	if err != nil {
		return err
	}
	err = db.Model(&models.Wager{}).
		Where("pool_id = ? AND status <> ?", pool.ID, models.StatusRegistered).
		Count(&unregistered).Error
	if err != nil {
		return err
	}

	if unpaid == 0 && unregistered == 0 {
		logger.Infof("pool %d (%s): all wagers paid and registered", pool.ID, pool.Title)
		return nil
	}
	logger.Infof("pool %d (%s): %d wager(s) unpaid, %d not registered", pool.ID, pool.Title, unpaid, unregistered)
	return nil
}
