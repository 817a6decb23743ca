package settleService

import (
	"sort"

	"gorm.io/gorm"

	"megaBolaoApp/models"
	"megaBolaoApp/services/common"
	"megaBolaoApp/services/poolService"
	"megaBolaoApp/services/wagerService"
)

// Settle scores every wager against the draw result and returns them ranked
// by best game, highest first. The sort is stable, so wagers with the same
// match count keep the order they were passed in. Pure function of its
// inputs; calling it twice on the same snapshot yields identical output.
func Settle(result string, wagers []models.Wager) []models.SettledWager {
	draw := make(map[int]bool)
	for _, n := range common.ParseNumbers(result, "-") {
		draw[n] = true
	}

	settled := make([]models.SettledWager, 0, len(wagers))
	for _, wager := range wagers {
		hits1 := matchNumbers(common.ParseNumbers(wager.Game1, ","), draw)
		hits2 := matchNumbers(common.ParseNumbers(wager.Game2, ","), draw)

		total := len(hits1)
		if len(hits2) > total {
			total = len(hits2)
		}

		settled = append(settled, models.SettledWager{
			Wager:        wager,
			Game1Matches: len(hits1),
			Game2Matches: len(hits2),
			Game1Hits:    hits1,
			Game2Hits:    hits2,
			TotalMatches: total,
			Won:          len(hits1) >= common.WinThreshold || len(hits2) >= common.WinThreshold,
		})
	}

	sort.SliceStable(settled, func(i, j int) bool {
		return settled[i].TotalMatches > settled[j].TotalMatches
	})
	return settled
}

// SettlePool loads the pool's recorded result and its wagers (newest first)
// and settles them. Fails with ErrNoResult until a result has been recorded.
func SettlePool(db *gorm.DB, poolID uint) (*models.Pool, []models.SettledWager, error) {
	pool, err := poolService.GetPool(db, poolID)
	if err != nil {
		return nil, nil, err
	}
	if pool.Result == nil {
		return nil, nil, common.ErrNoResult
	}

	wagers, err := wagerService.ListWagers(db, pool.ID)
	if err != nil {
		return nil, nil, err
	}
	return pool, Settle(*pool.Result, wagers), nil
}

// matchNumbers returns the distinct game numbers present in the draw set, in
// the order the game lists them. A number repeated in a malformed game still
// counts once.
func matchNumbers(game []int, draw map[int]bool) []int {
	counted := make(map[int]bool)
	hits := make([]int, 0, len(game))
	for _, n := range game {
		if draw[n] && !counted[n] {
			counted[n] = true
			hits = append(hits, n)
		}
	}
	return hits
}
