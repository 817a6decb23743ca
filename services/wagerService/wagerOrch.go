package wagerService

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"gorm.io/gorm"

	"megaBolaoApp/models"
	"megaBolaoApp/services/common"
	"megaBolaoApp/services/poolService"
)

// CreateWager validates and persists a new wager on an open pool.
// Check order: bettor name, game 1 size, game 2 size, game contents, pool
// state. New wagers always start unpaid and unregistered.
func CreateWager(db *gorm.DB, poolID uint, bettorName string, game1, game2 []int, note string) (*models.Wager, error) {
	bettorName = strings.TrimSpace(bettorName)
	if bettorName == "" {
		return nil, common.ErrEmptyName
	}
	if len(game1) != common.GameSize {
		return nil, &common.InvalidGameSizeError{Game: 1}
	}
	if len(game2) != common.GameSize {
		return nil, &common.InvalidGameSizeError{Game: 2}
	}
	// The selection widget guarantees distinct in-range numbers; the API is
	// not behind it, so enforce that here too.
	if !validGameNumbers(game1) {
		return nil, &common.InvalidGameNumbersError{Game: 1}
	}
	if !validGameNumbers(game2) {
		return nil, &common.InvalidGameNumbersError{Game: 2}
	}

	pool, err := poolService.GetPool(db, poolID)
	if err != nil {
		return nil, err
	}
	if !pool.Open {
		return nil, common.ErrPoolClosed
	}

	wager := models.Wager{
		PoolID:     pool.ID,
		BettorName: bettorName,
		Game1:      common.FormatGame(game1),
		Game2:      common.FormatGame(game2),
		Note:       trimNote(note),
		Paid:       false,
		Registered: false,
		Status:     models.StatusPending,
	}
	if err := db.Create(&wager).Error; err != nil {
		return nil, err
	}
	return &wager, nil
}

// ListWagers returns the pool's wagers newest first. This is also the order
// settlement ties resolve in.
func ListWagers(db *gorm.DB, poolID uint) ([]models.Wager, error) {
	var wagers []models.Wager
	err := db.Where("pool_id = ?", poolID).Order("created_at desc").Find(&wagers).Error
	if err != nil {
		return nil, err
	}
	return wagers, nil
}

func GetWager(db *gorm.DB, wagerID uint) (*models.Wager, error) {
	var wager models.Wager
	err := db.First(&wager, "id = ?", wagerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wager, nil
}

// MarkPaid flips the paid flag. Unsetting it also demotes a registered wager
// back to pending. Marking an already-paid wager paid again is a no-op.
// All status changes are blocked once the pool is closed.
func MarkPaid(db *gorm.DB, wagerID uint, paid bool) (*models.Wager, error) {
	wager, err := GetWager(db, wagerID)
	if err != nil {
		return nil, err
	}
	if err := requireOpenPool(db, wager.PoolID); err != nil {
		return nil, err
	}

	wager.Paid = paid
	if !paid {
		wager.Registered = false
	}
	return saveStatus(db, wager)
}

// MarkRegistered flips the registered flag. A wager can only be registered
// after it is paid; registering an already-registered wager is a no-op.
func MarkRegistered(db *gorm.DB, wagerID uint, registered bool) (*models.Wager, error) {
	wager, err := GetWager(db, wagerID)
	if err != nil {
		return nil, err
	}
	if err := requireOpenPool(db, wager.PoolID); err != nil {
		return nil, err
	}
	if registered && !wager.Paid {
		return nil, common.ErrNotPaid
	}

	wager.Registered = registered
	return saveStatus(db, wager)
}

// DeleteWager removes a wager. Allowed only while the pool is open and the
// wager has not been paid; a closed pool takes precedence when both hold.
func DeleteWager(db *gorm.DB, wagerID uint) error {
	wager, err := GetWager(db, wagerID)
	if err != nil {
		return err
	}
	if err := requireOpenPool(db, wager.PoolID); err != nil {
		return err
	}
	if wager.Paid {
		return common.ErrWagerAlreadyPaid
	}

	return db.Delete(wager).Error
}

// QuickPick draws GameSize distinct uniform numbers from 1..MaxNumber,
// sorted ascending.
func QuickPick() []int {
	picked := make(map[int]bool)
	var nums []int
	for len(nums) < common.GameSize {
		n := rand.Intn(common.MaxNumber) + 1
		if picked[n] {
			continue
		}
		picked[n] = true
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

func validGameNumbers(game []int) bool {
	seen := make(map[int]bool)
	for _, n := range game {
		if n < 1 || n > common.MaxNumber || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

func trimNote(note string) *string {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}
	if runes := []rune(note); len(runes) > common.NoteMaxLen {
		note = string(runes[:common.NoteMaxLen])
	}
	return &note
}

func requireOpenPool(db *gorm.DB, poolID uint) error {
	pool, err := poolService.GetPool(db, poolID)
	if err != nil {
		return err
	}
	if !pool.Open {
		return common.ErrPoolClosed
	}
	return nil
}

// saveStatus writes the flags and the derived status tag in one update so the
// pair can never be observed inconsistent.
func saveStatus(db *gorm.DB, wager *models.Wager) (*models.Wager, error) {
	wager.Status = models.WagerStatus(wager.Paid, wager.Registered)
	err := db.Model(wager).Updates(map[string]interface{}{
		"paid":       wager.Paid,
		"registered": wager.Registered,
		"status":     wager.Status,
	}).Error
	if err != nil {
		return nil, err
	}
	return wager, nil
}
